// dodger is a terminal falling-blocks game: steer a square down four lanes
// and dodge what falls, on the Classic or Beach stage.
//
// Usage:
//
//	dodger list              - List available stages
//	dodger play <stage>      - Play a stage directly
//	dodger menu              - Start at the stage select screen
//	dodger serve             - Start SSH server for remote play
//	dodger scores <stage>    - Show high scores for a stage
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default from config: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.dodger/scores.db)
//	--config <path>   - Use a specific config file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
	"github.com/vovakirdan/rhythm-dodger/internal/core"
	_ "github.com/vovakirdan/rhythm-dodger/internal/games/dodger" // registers the stages
	"github.com/vovakirdan/rhythm-dodger/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Rhythm Dodger - dodge falling blocks in your terminal",
	Long: `Rhythm Dodger is a falling-blocks arcade game for the terminal.
Blocks fall down four lanes; steer your square around them for as long as
you can. Each stage has its own blocks and its own rules.

Available commands:
  list     - Show all stages
  play     - Play a stage directly
  menu     - Stage select screen
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  dodger list
  dodger play classic
  dodger menu
  dodger serve --ssh :2222
  dodger scores beach`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, "", err
	}

	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = config.DataPath("scores.db")
	}
	if cfg.Log.File == "" {
		cfg.Log.File = config.DataPath("dodger.log")
	}

	return cfg, source, cfg.Validate()
}

// newLogger creates the structured logger writing to w.
func newLogger(w io.Writer, cfg config.LogConfig) *log.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodger",
		Level:           level,
	})
}

// openLogFile opens the log file for the alt-screen commands, where stderr
// would tear the display. Falls back to discarding output.
func openLogFile(path string) io.WriteCloser {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			return f
		}
	}
	return nopCloser{io.Discard}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openStore opens the score database. Failure is logged and play goes on
// without persistence.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the game runtime config for the local terminal.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  cfg.Display.TickRate,
		Seed:      flagSeed,
		ShowTrail: cfg.Display.ShowTrail,
	}
}
