package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagLevel    = flag.String("level", "", "Level to load")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging and hot reload")
	flagScale    = flag.Float64("scale", 0, "Window scale factor")
	flagLogLevel = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file as well")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagLevel != "" {
		cfg.Game.Level = *flagLevel
	}
	if *flagDebug {
		cfg.Game.Debug = true
		cfg.Game.HotReload = true
		cfg.Logging.Level = "debug"
	}
	if *flagScale > 0 {
		cfg.Display.Scale = *flagScale
	}
	if *flagLogLevel != "" {
		cfg.Logging.Level = *flagLogLevel
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
