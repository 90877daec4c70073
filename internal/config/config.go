// Package config provides YAML-based configuration loading for the
// dodger terminal platform. Gameplay rules are compiled in and are not
// configurable here; this covers display, input, storage, logging and the
// SSH server.
package config

import (
	"fmt"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// DisplayConfig controls the render loop.
type DisplayConfig struct {
	TickRate  int  `yaml:"tick_rate"`  // simulation ticks per second
	ShowTrail bool `yaml:"show_trail"` // draw the trail behind the player
}

// InputConfig controls how key presses become held directions.
type InputConfig struct {
	// HoldMs is how long a direction counts as held after its last press.
	// Terminals report presses and auto-repeats, never releases.
	HoldMs int `yaml:"hold_ms"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // empty means ~/.dodger/scores.db
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty means ~/.dodger/dodger.log
}

// SSHConfig configures the multi-session SSH server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Hold returns the input hold window as a duration.
func (c InputConfig) Hold() time.Duration {
	return time.Duration(c.HoldMs) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	if c.Display.TickRate < 1 || c.Display.TickRate > 240 {
		return fmt.Errorf("config: display.tick_rate must be between 1 and 240, got %d", c.Display.TickRate)
	}
	if c.Input.HoldMs < 0 {
		return fmt.Errorf("config: input.hold_ms must not be negative, got %d", c.Input.HoldMs)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh.idle_timeout_minutes must not be negative, got %d", c.SSH.IdleTimeoutMinutes)
	}
	return nil
}
