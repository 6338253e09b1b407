package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagMap    = flag.String("map", "", "Path to map file (skips the generator)")
	flagSeed   = flag.Int64("seed", 0, "Cave generator seed")
	flagOut    = flag.String("out", "", "OBJ output path")
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
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMap != "" {
		cfg.Map.Path = *flagMap
	}
	if *flagSeed != 0 {
		cfg.Map.Seed = *flagSeed
	}
	if *flagOut != "" {
		cfg.Output.OBJPath = *flagOut
	}
}
