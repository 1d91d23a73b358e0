package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"growsphere/database"
	planRepoImp "growsphere/pkg/plan/repositoryImp"
	plantRepoImp "growsphere/pkg/plant/repositoryImp"
	plantSvcImp "growsphere/pkg/plant/serviceImp"
	kvRepoImp "growsphere/pkg/store/repositoryImp"
)

func newPlantsCmd(dbPath *string) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "plants",
		Short: "List the plant catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(*dbPath)
			if err != nil {
				return err
			}
			defer database.Close(db)

			kv := kvRepoImp.New(db)
			svc := plantSvcImp.NewPlantService(plantRepoImp.New(kv), planRepoImp.New(kv))
			plants, err := svc.List(query)
			if err != nil {
				return fmt.Errorf("list plants: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(plants) == 0 {
				fmt.Fprintln(out, hintStyle.Render("No plants found."))
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tMONTHS\tSOURCE")
			for _, p := range plants {
				src := "custom"
				if p.Default {
					src = "default"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.ID, p.Name, p.GrowthPeriod, src)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&query, "q", "", "filter by name")
	return cmd
}
