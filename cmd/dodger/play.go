package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-dodger/internal/platform/tui"
	"github.com/vovakirdan/rhythm-dodger/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <stage>",
	Short: "Play a stage",
	Long: `Start playing the specified stage.

Controls:
  WASD/Arrows  - Move (hold, or rely on key repeat)
  P            - Pause
  B/Esc        - Back to stage select (when paused or game over)
  Any move key - Restart after game over (R works too)
  Ctrl+S       - Save a screenshot to ~/.dodger/screenshots
  Q/Ctrl+C     - Quit

Examples:
  dodger play classic
  dodger play beach --fps 30
  dodger play classic --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	stageID := args[0]
	if !registry.Exists(stageID) {
		return fmt.Errorf("unknown stage %q (available: %s)", stageID, strings.Join(registry.IDs(), ", "))
	}
	return runLocal(stageID)
}

// runLocal runs a session in this terminal, optionally opening a stage
// straight away.
func runLocal(stageID string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logFile := openLogFile(cfg.Log.File)
	defer logFile.Close()
	logger := newLogger(logFile, cfg.Log)
	logger.Debug("config loaded", "source", source)

	store := openStore(cfg.Storage.DBPath, logger)
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(tui.SessionOptions{
		Store:  store,
		Logger: logger,
		Config: runtimeConfig(cfg),
		Hold:   cfg.Input.Hold(),
		Stage:  stageID,
	})
}
