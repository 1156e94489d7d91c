// Package config handles game configuration loading.
package config

import (
	"errors"
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/input"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config holds all game settings.
type Config struct {
	Display DisplayConfig       `yaml:"display"`
	Game    GameConfig          `yaml:"game"`
	Keys    map[string][]string `yaml:"keys"`
	Logging LoggingConfig       `yaml:"logging"`
}

type DisplayConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	HUDHeight int     `yaml:"hud_height"`
	Scale     float64 `yaml:"scale"`
	Title     string  `yaml:"title"`
	TPS       int     `yaml:"tps"`
}

type GameConfig struct {
	Level     string `yaml:"level"`
	Debug     bool   `yaml:"debug"`
	HotReload bool   `yaml:"hot_reload"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the classic 853x480 play field.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:     common.BaseWidth,
			Height:    common.BaseHeight,
			HUDHeight: common.HUDHeight,
			Scale:     1,
			Title:     "Platformer",
			TPS:       60,
		},
		Game: GameConfig{
			Level: "tutorial",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	d := c.Display
	if d.Width <= 0 || d.Height <= 0 || d.HUDHeight <= 0 {
		return fmt.Errorf("%w: display %dx%d hud %d", ErrInvalidConfig, d.Width, d.Height, d.HUDHeight)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("%w: scale %v", ErrInvalidConfig, d.Scale)
	}
	if d.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, d.TPS)
	}
	if c.Game.Level == "" {
		return fmt.Errorf("%w: empty level name", ErrInvalidConfig)
	}
	if _, err := c.Bindings(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Bindings returns the key bindings with config overrides applied.
func (c *Config) Bindings() (input.Bindings, error) {
	return input.ParseBindings(c.Keys)
}
