package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-dodger/internal/platform/tui"
	"github.com/vovakirdan/rhythm-dodger/internal/registry"
	"github.com/vovakirdan/rhythm-dodger/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [stage]",
	Short: "Show high scores for a stage",
	Long: `Display the top runs and the best score for a stage.

With --tui, opens the interactive scoreboard for every stage instead.

Examples:
  dodger scores classic
  dodger scores beach --limit 20
  dodger scores --tui
  dodger scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history and best score of the stage")
}

func runScores(_ *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg.Log)

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresTUI {
		rc := runtimeConfig(cfg)
		return tui.RunScoreboard(store, logger, rc.ScreenW, rc.ScreenH)
	}

	if len(args) == 0 {
		return fmt.Errorf("missing stage (run 'dodger list' to see available stages)")
	}
	stageID := args[0]
	if !registry.Exists(stageID) {
		return fmt.Errorf("unknown stage %q (run 'dodger list' to see available stages)", stageID)
	}
	game, err := registry.Create(stageID)
	if err != nil {
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(stageID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(stageID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dodger play %s' to set the first high score!\n", stageID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Run", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "---", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, entry.Score, shortID(entry.RunID), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.BestScore(stageID)
	if err != nil {
		logger.Warn("could not read best score", "stage", stageID, "error", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
