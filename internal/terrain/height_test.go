package terrain

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/terracegen/internal/mask"
	"github.com/Faultbox/terracegen/internal/noise"
)

func flatFractal(v float64) *noise.Fractal2D {
	return &noise.Fractal2D{
		Noise:      func(x, y float64) float64 { return v },
		Octaves:    1,
		Gain:       0.5,
		Lacunarity: 2,
		Amplitude:  1,
		Frequency:  0.1,
	}
}

func TestPlanarHeightFloor(t *testing.T) {
	// Kernel value -1 samples to 0, well under the floor.
	h := PlanarHeight(flatFractal(-1), 10, nil, 0.3, rand.New(rand.NewSource(1)))

	if got := h(mgl32.Vec3{1, 2, 0}); got != 0.3 {
		t.Errorf("height below floor = %v, want clamped 0.3", got)
	}

	// Kernel value 1 samples to 1, above the floor.
	h = PlanarHeight(flatFractal(1), 10, nil, 0.3, rand.New(rand.NewSource(1)))
	if got := h(mgl32.Vec3{1, 2, 0}); got != 1 {
		t.Errorf("height above floor = %v, want 1", got)
	}
}

func TestPlanarHeightIslandCarving(t *testing.T) {
	island := mask.NewRadial(4)
	h := PlanarHeight(flatFractal(0), 10, island, 0, rand.New(rand.NewSource(1)))

	// Noise samples to 0.5 everywhere; the center keeps its height minus
	// the gradient, the rim drowns at the sea floor.
	if got := h(mgl32.Vec3{0, 0, 0}); got != 0.5 {
		t.Errorf("center height = %v, want 0.5", got)
	}
	if got := h(mgl32.Vec3{4, 0, 0}); got != planarSeaFloor {
		t.Errorf("rim height = %v, want sea floor %v", got, float32(planarSeaFloor))
	}

	mid := h(mgl32.Vec3{1, 0, 0})
	if mid <= planarSeaFloor || mid >= 0.5 {
		t.Errorf("carved height = %v, want between sea floor and 0.5", mid)
	}
}

func TestSphericalHeightDeterministic(t *testing.T) {
	fractal := func() *noise.Fractal3D {
		return &noise.Fractal3D{
			Noise:      noise.Simplex3D(11),
			Octaves:    3,
			Gain:       0.375,
			Lacunarity: 2.52,
			Amplitude:  1,
			Frequency:  0.055,
		}
	}

	a := SphericalHeight(fractal(), 15, nil, 0.58, rand.New(rand.NewSource(9)))
	b := SphericalHeight(fractal(), 15, nil, 0.58, rand.New(rand.NewSource(9)))

	for _, p := range []mgl32.Vec3{{1, 0, 0}, {0.5, -0.5, 1}, {-1, 1, -1}} {
		ha, hb := a(p), b(p)
		if ha != hb {
			t.Errorf("same seed diverged at %v: %v vs %v", p, ha, hb)
		}
		if ha < 0.58 {
			t.Errorf("height %v below floor 0.58", ha)
		}
	}
}

func TestSphericalHeightIslandOpenWater(t *testing.T) {
	fractal := &noise.Fractal3D{
		Noise:      func(x, y, z float64) float64 { return 0 },
		Octaves:    1,
		Gain:       0.5,
		Lacunarity: 2,
		Amplitude:  1,
		Frequency:  0.1,
	}
	island := mask.NewSphereGradient(mask.LayoutNESW, 1, 0.57)
	h := SphericalHeight(fractal, 10, island, 0, rand.New(rand.NewSource(3)))

	// Noise samples to 0.5 flat, so no gradient is ever under h-0.5 and
	// everything collapses to open water.
	for _, p := range []mgl32.Vec3{{1, 1, 1}, {0, 0, 1}, {0.5, 0.5, 0}} {
		if got := h(p); got != sphericalSeaFloor {
			t.Errorf("height at %v = %v, want open water %v", p, got, float32(sphericalSeaFloor))
		}
	}
}
