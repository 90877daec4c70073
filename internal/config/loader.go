package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in each search directory.
const FileName = "dodger.yaml"

// SourceEmbedded marks a config that came from the built-in defaults.
const SourceEmbedded = "embedded"

// Load reads the application configuration.
// Search order: customPath -> ~/.dodger/configs/dodger.yaml -> ./configs/dodger.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its
// default. The returned source names where the config came from.
func Load(customPath string) (cfg Config, source string, err error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err = parse(data)
		if err != nil {
			return cfg, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{filepath.Join("configs", FileName)}
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err = parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse overlays YAML onto the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Dir returns the per-user data directory (~/.dodger), or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodger")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// DataPath resolves a file under the data directory, falling back to the
// working directory when home is unavailable.
func DataPath(name string) string {
	dir := Dir()
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
