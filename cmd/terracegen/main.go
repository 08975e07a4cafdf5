// Package main is the entry point for the terracegen terrain generator.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terracegen/internal/config"
	"github.com/Faultbox/terracegen/internal/logger"
	"github.com/Faultbox/terracegen/internal/mask"
	"github.com/Faultbox/terracegen/internal/noise"
	"github.com/Faultbox/terracegen/internal/shapes"
	"github.com/Faultbox/terracegen/internal/terrain"
	"github.com/Faultbox/terracegen/pkg/objfile"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== terracegen ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	theme, err := terrain.ThemeByName(cfg.Terrain.Theme)
	if err != nil {
		return err
	}

	seed := cfg.Noise.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var (
		emb    terrain.Embedding
		src    terrain.FaceSource
		height terrain.HeightFunc
	)

	switch cfg.Terrain.Shape {
	case "flat":
		kernel, err := noise.Kernel2D(cfg.Noise.Kernel, seed)
		if err != nil {
			return err
		}
		fractal := &noise.Fractal2D{
			Noise:      kernel,
			Octaves:    cfg.Noise.Octaves,
			Gain:       cfg.Noise.Persistence,
			Lacunarity: cfg.Noise.Lacunarity,
			Amplitude:  cfg.Noise.Amplitude,
			Frequency:  cfg.Noise.Frequency,
		}

		var island *mask.Radial
		if theme.Name() == "island" {
			island = mask.NewRadial(cfg.Terrain.Radius)
		}

		emb = terrain.PlanarEmbedding{Radius: cfg.Terrain.Radius}
		src = &shapes.Polygon{
			Segments: cfg.Terrain.Segments,
			Radius:   cfg.Terrain.Radius,
			MaxDepth: cfg.Terrain.MaxDepth,
		}
		height = terrain.PlanarHeight(fractal, cfg.Noise.Scale, island, theme.Floor(), rng)

	case "sphere":
		kernel, err := noise.Kernel3D(cfg.Noise.Kernel, seed)
		if err != nil {
			return err
		}
		fractal := &noise.Fractal3D{
			Noise:      kernel,
			Octaves:    cfg.Noise.Octaves,
			Gain:       cfg.Noise.Persistence,
			Lacunarity: cfg.Noise.Lacunarity,
			Amplitude:  cfg.Noise.Amplitude,
			Frequency:  cfg.Noise.Frequency,
		}

		var island *mask.SphereGradient
		if theme.Name() == "island" {
			layout := mask.LayoutNESW
			if rng.Float64() >= 0.5 {
				layout = mask.LayoutNWSE
			}
			island = mask.NewSphereGradient(layout, shapes.VertexValue, 0.57)
			logger.Sugar.Debugf("island mask layout: %v", layout)
		}

		emb = terrain.SphericalEmbedding{RenderScale: cfg.Terrain.RenderScale}
		src = &shapes.Cubesphere{MaxDepth: cfg.Terrain.MaxDepth}
		height = terrain.SphericalHeight(fractal, cfg.Noise.Scale, island, theme.Floor(), rng)

	default:
		return fmt.Errorf("unknown shape %q", cfg.Terrain.Shape)
	}

	gen := terrain.NewGenerator(emb, theme)

	start := time.Now()
	var buf *terrain.Buffer
	if cfg.Terrain.Workers == 1 {
		buf = gen.Generate(src, height)
	} else {
		buf = gen.GenerateParallel(src, height, cfg.Terrain.Workers)
	}

	logger.Info("terrain generated",
		zap.String("shape", cfg.Terrain.Shape),
		zap.String("theme", theme.Name()),
		zap.Int64("seed", seed),
		zap.Uint32("vertices", buf.VertexCount()),
		zap.Int("triangles", len(buf.Indices())/3),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := objfile.WriteFile(cfg.Output.Path, cfg.Terrain.Shape+"_terraced_terrain", buf.VertexData(), buf.Indices()); err != nil {
		return err
	}
	logger.Info("mesh written", zap.String("path", cfg.Output.Path))

	return nil
}
