// Package config handles generator configuration loading and management.
package config

import "fmt"

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Noise   NoiseConfig   `yaml:"noise"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds base-surface and theming settings.
type TerrainConfig struct {
	Shape       string  `yaml:"shape"`        // "flat" or "sphere"
	Theme       string  `yaml:"theme"`        // mountain, snow, desert, island
	Segments    int     `yaml:"segments"`     // outer polygon vertices (flat)
	Radius      float32 `yaml:"radius"`       // base polygon radius (flat)
	MaxDepth    int     `yaml:"max_depth"`    // subdivision rounds per base triangle
	RenderScale float32 `yaml:"render_scale"` // emitted position scale (sphere)
	Workers     int     `yaml:"workers"`      // slicing workers; 1 forces sequential, 0 = one per CPU
}

// NoiseConfig holds height-field noise settings.
type NoiseConfig struct {
	Kernel      string  `yaml:"kernel"` // simplex, perlin, cellular
	Seed        int64   `yaml:"seed"`   // 0 seeds from the clock
	Scale       float64 `yaml:"scale"`  // sample-space scale; smaller is sparser
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Amplitude   float64 `yaml:"amplitude"`
	Frequency   float64 `yaml:"frequency"`
}

// OutputConfig holds mesh output settings.
type OutputConfig struct {
	Path string `yaml:"path"` // OBJ file path
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Shape:       "flat",
			Theme:       "mountain",
			Segments:    5,
			Radius:      4,
			MaxDepth:    5,
			RenderScale: 1,
			Workers:     1,
		},
		Noise: NoiseConfig{
			Kernel:      "simplex",
			Seed:        0,
			Scale:       10,
			Octaves:     3,
			Persistence: 0.375,
			Lacunarity:  2.52,
			Amplitude:   1.0,
			Frequency:   0.055,
		},
		Output: OutputConfig{
			Path: "terrain.obj",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would otherwise only fail deep inside a
// build.
func (c *Config) Validate() error {
	switch c.Terrain.Shape {
	case "flat", "sphere":
	default:
		return fmt.Errorf("config: unknown shape %q (want flat or sphere)", c.Terrain.Shape)
	}
	switch c.Noise.Kernel {
	case "simplex", "perlin", "cellular":
	default:
		return fmt.Errorf("config: unknown noise kernel %q", c.Noise.Kernel)
	}
	if c.Terrain.Segments < 3 {
		return fmt.Errorf("config: segments must be at least 3, got %d", c.Terrain.Segments)
	}
	if c.Terrain.Radius <= 0 {
		return fmt.Errorf("config: radius must be positive, got %v", c.Terrain.Radius)
	}
	if c.Terrain.MaxDepth < 0 {
		return fmt.Errorf("config: max_depth must not be negative, got %d", c.Terrain.MaxDepth)
	}
	if c.Noise.Octaves < 1 {
		return fmt.Errorf("config: octaves must be at least 1, got %d", c.Noise.Octaves)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("config: output path must not be empty")
	}
	return nil
}
