// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Chart   ChartConfig   `toml:"chart"`
	Palette PaletteConfig `toml:"palette"`
}

// ChartConfig maps chart-related settings.
type ChartConfig struct {
	Width    *float64 `toml:"width"`
	Height   *float64 `toml:"height"`
	ShowAxis *bool    `toml:"show-axis"`
}

// PaletteConfig maps palette-related settings.
type PaletteConfig struct {
	Colors []string `toml:"colors"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
