// Package noise provides the fractal noise kernels terrain height fields
// are sampled from.
package noise

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise2D is a 2D noise kernel returning values in roughly [-1, 1].
type Noise2D func(x, y float64) float64

// Noise3D is a 3D noise kernel returning values in roughly [-1, 1].
type Noise3D func(x, y, z float64) float64

// Simplex2D returns a seeded 2D simplex kernel.
func Simplex2D(seed int64) Noise2D {
	return opensimplex.New(seed).Eval2
}

// Simplex3D returns a seeded 3D simplex kernel.
func Simplex3D(seed int64) Noise3D {
	return opensimplex.New(seed).Eval3
}

// Perlin kernel parameters: smoothness falloff, harmonic scaling and the
// number of internal iterations.
const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 3
)

// Perlin2D returns a seeded 2D Perlin kernel.
func Perlin2D(seed int64) Noise2D {
	return perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed).Noise2D
}

// Perlin3D returns a seeded 3D Perlin kernel.
func Perlin3D(seed int64) Noise3D {
	return perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed).Noise3D
}

// Cellular2D returns a seeded 2D cellular (Worley F1) kernel: the distance
// to the nearest feature point of a hashed unit grid, remapped to [-1, 1].
func Cellular2D(seed int64) Noise2D {
	return func(x, y float64) float64 {
		cx, cy := math.Floor(x), math.Floor(y)
		f1 := math.MaxFloat64

		for dy := -1.0; dy <= 1; dy++ {
			for dx := -1.0; dx <= 1; dx++ {
				gx, gy := cx+dx, cy+dy
				fx := gx + hash2(seed, int64(gx), int64(gy), 0)
				fy := gy + hash2(seed, int64(gx), int64(gy), 1)
				d := math.Hypot(x-fx, y-fy)
				if d < f1 {
					f1 = d
				}
			}
		}
		return clampUnit(f1)*2 - 1
	}
}

// Cellular3D returns a seeded 3D cellular (Worley F1) kernel.
func Cellular3D(seed int64) Noise3D {
	return func(x, y, z float64) float64 {
		cx, cy, cz := math.Floor(x), math.Floor(y), math.Floor(z)
		f1 := math.MaxFloat64

		for dz := -1.0; dz <= 1; dz++ {
			for dy := -1.0; dy <= 1; dy++ {
				for dx := -1.0; dx <= 1; dx++ {
					gx, gy, gz := cx+dx, cy+dy, cz+dz
					fx := gx + hash3(seed, int64(gx), int64(gy), int64(gz), 0)
					fy := gy + hash3(seed, int64(gx), int64(gy), int64(gz), 1)
					fz := gz + hash3(seed, int64(gx), int64(gy), int64(gz), 2)
					dxp, dyp, dzp := x-fx, y-fy, z-fz
					d := math.Sqrt(dxp*dxp + dyp*dyp + dzp*dzp)
					if d < f1 {
						f1 = d
					}
				}
			}
		}
		return clampUnit(f1)*2 - 1
	}
}

// Kernel2D resolves a kernel by its configuration name.
func Kernel2D(name string, seed int64) (Noise2D, error) {
	switch name {
	case "simplex":
		return Simplex2D(seed), nil
	case "perlin":
		return Perlin2D(seed), nil
	case "cellular":
		return Cellular2D(seed), nil
	}
	return nil, fmt.Errorf("noise: unknown kernel %q", name)
}

// Kernel3D resolves a kernel by its configuration name.
func Kernel3D(name string, seed int64) (Noise3D, error) {
	switch name {
	case "simplex":
		return Simplex3D(seed), nil
	case "perlin":
		return Perlin3D(seed), nil
	case "cellular":
		return Cellular3D(seed), nil
	}
	return nil, fmt.Errorf("noise: unknown kernel %q", name)
}

// hash2 places one feature point coordinate in [0, 1) for a 2D grid cell.
func hash2(seed, x, y, axis int64) float64 {
	return splitmix(uint64(seed) ^ uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(axis)*0x165667B19E3779F9)
}

// hash3 places one feature point coordinate in [0, 1) for a 3D grid cell.
func hash3(seed, x, y, z, axis int64) float64 {
	return splitmix(uint64(seed) ^ uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(z)*0x27D4EB2F165667C5 ^ uint64(axis)*0x165667B19E3779F9)
}

// splitmix finalizes a 64-bit hash into a float in [0, 1).
func splitmix(u uint64) float64 {
	u ^= u >> 30
	u *= 0xBF58476D1CE4E5B9
	u ^= u >> 27
	u *= 0x94D049BB133111EB
	u ^= u >> 31
	return float64(u>>11) / (1 << 53)
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
