// path: internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"
)

// Config holds all server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Game   GameConfig   `yaml:"game"`
	View   ViewConfig   `yaml:"view"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// GameConfig holds engine settings.
type GameConfig struct {
	Dimensions     int  `yaml:"dimensions"`
	Fatigue        bool `yaml:"fatigue"`
	RestrictToView bool `yaml:"restrict_to_view"`
}

// ViewConfig holds the default render window extent.
type ViewConfig struct {
	WindowMin int `yaml:"window_min"`
	WindowMax int `yaml:"window_max"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Game:   GameConfig{Dimensions: shared.MinDimensions, Fatigue: true},
		View:   ViewConfig{WindowMin: -7, WindowMax: 0},
	}
}

// Load reads configuration from a YAML file, filling defaults for anything
// left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Game.Dimensions < shared.MinDimensions || cfg.Game.Dimensions > shared.MaxDimensions {
		return nil, fmt.Errorf("game.dimensions %d outside %d-%d", cfg.Game.Dimensions, shared.MinDimensions, shared.MaxDimensions)
	}
	if cfg.View.WindowMin > cfg.View.WindowMax {
		return nil, fmt.Errorf("view.window_min %d above view.window_max %d", cfg.View.WindowMin, cfg.View.WindowMax)
	}
	return cfg, nil
}
