package terrain

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terracegen/internal/mask"
	"github.com/Faultbox/terracegen/internal/noise"
)

// seaFloor is the height open water collapses to when an island mask
// swallows the terrain.
const (
	planarSeaFloor    = 0.02
	sphericalSeaFloor = 0.52
)

// PlanarHeight builds the height provider for flat terrain: fractal 2D
// noise over a randomly offset sample space. With an island mask the
// coastline is carved by subtracting the radial gradient; without one the
// terrain is floored at the theme's first threshold so the lowest band
// reads as water.
func PlanarHeight(f *noise.Fractal2D, noiseScale float64, island *mask.Radial, floor float32, rng *rand.Rand) HeightFunc {
	offX := rng.Float64()*2000 - 1000
	offY := rng.Float64()*2000 - 1000

	return func(p mgl32.Vec3) float32 {
		x := (float64(p.X()) + offX) * noiseScale
		y := (float64(p.Y()) + offY) * noiseScale
		h := float32(f.Sample(x, y))

		if island != nil {
			r := island.Gradient(p.X(), p.Y())
			if r >= h {
				return planarSeaFloor
			}
			return h - r
		}
		if h <= floor {
			return floor
		}
		return h
	}
}

// SphericalHeight builds the height provider for spherical terrain:
// fractal 3D noise sampled at the offset, scaled cube vertex. An island
// mask sinks everything outside the two polar gradients to open water; the
// gradient comparison is against h-0.5 because the fractal output is
// already shifted up by 0.5.
func SphericalHeight(f *noise.Fractal3D, noiseScale float64, island *mask.SphereGradient, floor float32, rng *rand.Rand) HeightFunc {
	offset := mgl32.Vec3{
		float32(rng.Float64()*2000 - 1000),
		float32(rng.Float64()*2000 - 1000),
		float32(rng.Float64()*2000 - 1000),
	}
	if island != nil {
		island.Transform(offset, float32(noiseScale))
	}

	return func(p mgl32.Vec3) float32 {
		s := p.Add(offset).Mul(float32(noiseScale))
		h := float32(f.Sample(float64(s.X()), float64(s.Y()), float64(s.Z())))

		if island != nil {
			if center, ok := island.Center(p); ok {
				if grad := island.Gradient(s, center); grad < h-0.5 {
					return h - grad
				}
			}
			return sphericalSeaFloor
		}
		if h < floor {
			return floor
		}
		return h
	}
}
