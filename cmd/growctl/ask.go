package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"growsphere/pkg/ai"
	"growsphere/pkg/sim"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the garden assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := ai.LoadResponses()
			if err != nil {
				return err
			}
			answer, err := ai.NewMock(book, sim.Latency{}).Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), boxStyle.Render(answer))
			return nil
		},
	}
}
