package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file searched for from the working directory upward
const FileName = "configcheck.yaml"

// DefaultConfigPath is the document checked when no settings file overrides it
const DefaultConfigPath = "appwrite.config.json"

// Settings holds configuration for the configcheck command.
// Loaded from configcheck.yaml if present.
type Settings struct {
	// ConfigPath is the JSON document to check.
	ConfigPath string `yaml:"configPath"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`

	// SeqURL enables shipping logs to Seq when set.
	SeqURL string `yaml:"seqURL"`
}

// Defaults returns the settings used when no file is found
func Defaults() Settings {
	return Settings{
		ConfigPath: DefaultConfigPath,
		LogLevel:   "info",
	}
}

// Load searches for configcheck.yaml starting from dir and walking up to the
// filesystem root. Returns defaults if not found.
// A relative configPath is resolved against the settings file's directory.
func Load(dir string) (Settings, string, error) {
	cfg := Defaults()

	path := findFile(dir)
	if path == "" {
		return cfg, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, path, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, path, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if cfg.ConfigPath == "" {
		cfg.ConfigPath = DefaultConfigPath
	}
	if !filepath.IsAbs(cfg.ConfigPath) {
		cfg.ConfigPath = filepath.Join(filepath.Dir(path), cfg.ConfigPath)
	}

	return cfg, path, nil
}

// findFile searches for configcheck.yaml walking up from dir.
func findFile(dir string) string {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
}
