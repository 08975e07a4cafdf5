package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagShape  = flag.String("shape", "", "Base surface: flat or sphere")
	flagTheme  = flag.String("theme", "", "Color theme name")
	flagKernel = flag.String("kernel", "", "Noise kernel: simplex, perlin or cellular")
	flagSeed   = flag.Int64("seed", 0, "Noise seed (0 seeds from the clock)")
	flagDepth  = flag.Int("depth", 0, "Subdivision depth")
	flagOut    = flag.String("out", "", "Output OBJ path")
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
	if *flagShape != "" {
		cfg.Terrain.Shape = *flagShape
	}
	if *flagTheme != "" {
		cfg.Terrain.Theme = *flagTheme
	}
	if *flagKernel != "" {
		cfg.Noise.Kernel = *flagKernel
	}
	if *flagSeed != 0 {
		cfg.Noise.Seed = *flagSeed
	}
	if *flagDepth > 0 {
		cfg.Terrain.MaxDepth = *flagDepth
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
}
