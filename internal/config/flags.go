package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagAxis   = flag.String("axis", "", "Mirror axis (x, y or z)")
	flagOut    = flag.String("out", "", "Output directory for mirrored meshes")
)

// ParseFlags parses command-line flags. Call this early in main(),
// before dispatching subcommands.
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagAxis != "" {
		cfg.Mirror.Axis = *flagAxis
	}
	if *flagOut != "" {
		cfg.Output.Directory = *flagOut
	}
}
