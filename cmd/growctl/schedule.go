package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"growsphere/pkg/plan/types"
	"growsphere/pkg/schedule"
)

func newScheduleCmd() *cobra.Command {
	var (
		months int
		start  string
		xlsx   string
		title  string
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the week-by-week farming calendar for a growth period",
		RunE: func(cmd *cobra.Command, args []string) error {
			if months > schedule.MaxGrowthPeriodMonths {
				return fmt.Errorf("%w: at most %d months", schedule.ErrInvalidGrowthPeriod, schedule.MaxGrowthPeriodMonths)
			}
			plan, err := schedule.Generate(months, start)
			if err != nil {
				return err
			}
			if xlsx != "" {
				f, err := os.Create(xlsx)
				if err != nil {
					return fmt.Errorf("create %s: %w", xlsx, err)
				}
				defer f.Close()
				if err := schedule.ExportXLSX(f, title, plan); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hintStyle.Render("wrote "+xlsx))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), renderPlan(title, plan))
			return nil
		},
	}
	cmd.Flags().IntVar(&months, "months", 3, "growth period in months")
	cmd.Flags().StringVar(&start, "start", "January", "farming start month")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "write the calendar to this spreadsheet instead of printing")
	cmd.Flags().StringVar(&title, "title", "Farming calendar", "calendar title")
	return cmd
}

func renderPlan(title string, plan types.CalendarPlan) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d months from %s)", title, plan.GrowthPeriodMonths, plan.StartMonth)))
	b.WriteString("\n")
	for _, m := range plan.Months {
		b.WriteString(monthStyle.Render(fmt.Sprintf("Month %d - %s", m.Number, m.Label)))
		b.WriteString("\n")
		if len(m.Activities) == 0 {
			b.WriteString(hintStyle.Render("  no scheduled activities"))
			b.WriteString("\n")
		}
		for _, a := range m.Activities {
			b.WriteString("  " + weekStyle.Render(fmt.Sprintf("week %d", a.Week)) + a.Title + "\n")
		}
	}
	b.WriteString(hintStyle.Render("daily watering: " + strings.Join(plan.DailyReminders, ", ")))
	b.WriteString("\n")
	return b.String()
}
