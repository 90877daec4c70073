package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-dodger/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session starting at the stage select
screen. Scores are stored per server (all users share the scoreboard).

Flags override the ssh section of the config file. The host key is
generated on first start if it does not exist.

Examples:
  dodger serve                           # Listen on :2222
  dodger serve --ssh :23234              # Listen on port 23234
  dodger serve --host-key ./host_key     # Use a specific host key
  dodger serve --db ./scores.db          # Use a specific database

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger := newLogger(os.Stderr, cfg.Log)
	logger.Info("config loaded", "source", source)

	store := openStore(cfg.Storage.DBPath, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		IdleTimeout: cfg.SSH.IdleTimeout(),
		TickRate:    cfg.Display.TickRate,
		Seed:        flagSeed,
		ShowTrail:   cfg.Display.ShowTrail,
		Hold:        cfg.Input.Hold(),
	}, store, logger)
	if err != nil {
		return err
	}

	return server.ListenAndServe()
}
