package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			TickRate:  60,
			ShowTrail: true,
		},
		Input: InputConfig{
			HoldMs: 150,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:            ":2222",
			HostKey:            ".ssh/dodger_ed25519",
			IdleTimeoutMinutes: 30,
		},
	}
}
