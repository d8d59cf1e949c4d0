package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultInsightsTemplate renders the insights narrative. Users can replace
// it by dropping their own mustache template in ~/.config/cogito/insights.txt.
const DefaultInsightsTemplate = `On the {{longest_date}} you recorded your longest day! ({{longest_hours}}h)

You spent a total of {{days_spent}} days focusing on what's important to you.

{{above_average_pct}}% of your days were above average.`

type Config struct {
	DatabasePath     string
	Theme            string // "light" or "dark"
	InsightsTemplate string
}

type tomlConfig struct {
	DatabasePath string `toml:"database_path"`
	Theme        string `toml:"theme"`
}

// Dir returns the config directory, ~/.config/cogito.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "cogito")
}

// Load reads config from ~/.config/cogito/. Missing files mean defaults.
func Load() (*Config, error) {
	configDir := Dir()
	cfg := &Config{
		DatabasePath:     filepath.Join(configDir, "cogito.db"),
		Theme:            "light",
		InsightsTemplate: DefaultInsightsTemplate,
	}

	tomlPath := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		var tc tomlConfig
		if _, err := toml.DecodeFile(tomlPath, &tc); err == nil {
			if tc.DatabasePath != "" {
				cfg.DatabasePath = tc.DatabasePath
			}
			if tc.Theme != "" {
				cfg.Theme = tc.Theme
			}
		}
	}

	// If a custom insights template exists, use it
	if data, err := os.ReadFile(filepath.Join(configDir, "insights.txt")); err == nil {
		cfg.InsightsTemplate = string(data)
	}

	return cfg, nil
}
