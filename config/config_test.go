package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/platformer/input"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Display.Width != 853 || cfg.Display.Height != 480 || cfg.Display.HUDHeight != 200 {
		t.Fatalf("display = %+v", cfg.Display)
	}
	if cfg.Display.TPS != 60 || cfg.Game.Level != "tutorial" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadFromFileMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
display:
  scale: 2
game:
  level: custom
keys:
  jump: [W]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if cfg.Display.Scale != 2 || cfg.Game.Level != "custom" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Display.Width != 853 {
		t.Fatalf("unset values should keep defaults, width = %d", cfg.Display.Width)
	}
	b, err := cfg.Bindings()
	if err != nil {
		t.Fatalf("Bindings: %v", err)
	}
	if len(b[input.ActionJump]) != 1 || b[input.ActionJump][0] != "W" {
		t.Fatalf("jump = %v", b[input.ActionJump])
	}
}

func TestApplyFlags(t *testing.T) {
	reset := func() {
		*flagLevel, *flagDebug, *flagScale, *flagLogLevel, *flagLogFile = "", false, 0, "", ""
	}
	t.Cleanup(reset)

	*flagLevel = "other"
	*flagDebug = true
	*flagScale = 1.5
	*flagLogFile = "game.log"

	cfg := Default()
	applyFlags(cfg)
	if cfg.Game.Level != "other" || !cfg.Game.Debug || !cfg.Game.HotReload {
		t.Fatalf("game = %+v", cfg.Game)
	}
	if cfg.Display.Scale != 1.5 || cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "game.log" {
		t.Fatalf("cfg = %+v", cfg)
	}

	// An explicit log level wins over -debug.
	*flagLogLevel = "warn"
	applyFlags(cfg)
	if cfg.Logging.Level != "warn" {
		t.Fatalf("log level = %q", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero_width", func(c *Config) { c.Display.Width = 0 }},
		{"negative_hud", func(c *Config) { c.Display.HUDHeight = -1 }},
		{"zero_hud", func(c *Config) { c.Display.HUDHeight = 0 }},
		{"zero_scale", func(c *Config) { c.Display.Scale = 0 }},
		{"zero_tps", func(c *Config) { c.Display.TPS = 0 }},
		{"no_level", func(c *Config) { c.Game.Level = "" }},
		{"bad_binding", func(c *Config) { c.Keys = map[string][]string{"moonwalk": {"M"}} }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}
