package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	accent = lipgloss.Color("#5FAF5F")
	subtle = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)
	monthStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	weekStyle  = lipgloss.NewStyle().Foreground(subtle).Width(9)
	hintStyle  = lipgloss.NewStyle().Foreground(subtle)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AF5F5F"))
)

func newRootCmd() *cobra.Command {
	var dbPath string
	root := &cobra.Command{
		Use:           "growctl",
		Short:         "Operator tools for the growsphere garden planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "growsphere.db", "path to the local store")

	root.AddCommand(newScheduleCmd(), newPlantsCmd(&dbPath), newAskCmd())
	return root
}
