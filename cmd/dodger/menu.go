package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the stage select screen",
	Long: `Start in interactive mode at the stage select screen.

Use arrow keys or j/k to pick a stage, Enter to play it and Tab for the
scoreboard. Leaving a game (B/Esc when paused or after game over) brings
you back here.

Examples:
  dodger menu
  dodger menu --fps 30
  dodger menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLocal("")
	},
}
