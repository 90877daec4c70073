package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-dodger/internal/games/dodger"
	"github.com/vovakirdan/rhythm-dodger/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available stages",
	Long:  `Shows every stage registered in the game.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	stages := registry.List()
	if len(stages) == 0 {
		fmt.Println("No stages available.")
		return
	}

	fmt.Println("Available stages:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range stages {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "About")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, s := range stages {
		about := ""
		if stage, err := dodger.ParseStage(s.ID); err == nil {
			about = stage.Blurb()
		}
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, s.ID, s.Title, about)
	}

	fmt.Println()
	fmt.Println("Run 'dodger play <id>' to play a stage.")
}
