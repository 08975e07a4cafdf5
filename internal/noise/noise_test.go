package noise

import (
	"math"
	"testing"
)

func TestKernelResolution(t *testing.T) {
	for _, name := range []string{"simplex", "perlin", "cellular"} {
		if _, err := Kernel2D(name, 42); err != nil {
			t.Errorf("Kernel2D(%q): %v", name, err)
		}
		if _, err := Kernel3D(name, 42); err != nil {
			t.Errorf("Kernel3D(%q): %v", name, err)
		}
	}
	if _, err := Kernel2D("value", 42); err == nil {
		t.Error("expected error for unknown 2D kernel")
	}
	if _, err := Kernel3D("value", 42); err == nil {
		t.Error("expected error for unknown 3D kernel")
	}
}

func TestKernelsDeterministic(t *testing.T) {
	for _, name := range []string{"simplex", "perlin", "cellular"} {
		t.Run(name, func(t *testing.T) {
			a, _ := Kernel2D(name, 7)
			b, _ := Kernel2D(name, 7)
			for i := 0; i < 50; i++ {
				x, y := float64(i)*0.37, float64(i)*0.73
				if a(x, y) != b(x, y) {
					t.Fatalf("same seed diverged at (%v, %v)", x, y)
				}
			}
		})
	}
}

func TestCellularRange(t *testing.T) {
	n2 := Cellular2D(3)
	n3 := Cellular3D(3)
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.211
		y := float64(i) * 0.137
		z := float64(i) * 0.093
		if v := n2(x, y); v < -1 || v > 1 {
			t.Fatalf("Cellular2D(%v, %v) = %v outside [-1, 1]", x, y, v)
		}
		if v := n3(x, y, z); v < -1 || v > 1 {
			t.Fatalf("Cellular3D = %v outside [-1, 1]", v)
		}
	}
}

func TestFractal2DSampleRange(t *testing.T) {
	f := &Fractal2D{
		Noise:      Simplex2D(99),
		Octaves:    3,
		Gain:       0.375,
		Lacunarity: 2.52,
		Amplitude:  1.0,
		Frequency:  0.055,
	}
	for i := 0; i < 500; i++ {
		x := float64(i) * 1.7
		y := float64(i) * 0.9
		if v := f.Sample(x, y); v < 0 || v > 1 {
			t.Fatalf("Sample(%v, %v) = %v outside [0, 1]", x, y, v)
		}
	}
}

func TestFractal3DSampleRange(t *testing.T) {
	f := &Fractal3D{
		Noise:      Perlin3D(99),
		Octaves:    4,
		Gain:       0.375,
		Lacunarity: 2.52,
		Amplitude:  1.0,
		Frequency:  0.055,
	}
	for i := 0; i < 500; i++ {
		x := float64(i) * 1.3
		y := float64(i) * 0.6
		z := float64(i) * 0.4
		if v := f.Sample(x, y, z); v < 0 || v > 1 {
			t.Fatalf("Sample = %v outside [0, 1]", v)
		}
	}
}

// More octaves must not change the output midpoint: zero input noise stays
// at the 0.5 shift.
func TestFractalZeroKernel(t *testing.T) {
	f := &Fractal2D{
		Noise:      func(x, y float64) float64 { return 0 },
		Octaves:    5,
		Gain:       0.5,
		Lacunarity: 2,
		Amplitude:  1,
		Frequency:  0.1,
	}
	if v := f.Sample(12, 34); math.Abs(v-0.5) > 1e-12 {
		t.Errorf("zero kernel sample = %v, want 0.5", v)
	}
}
