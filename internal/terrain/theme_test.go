package terrain

import (
	"math"
	"testing"
)

func TestNewThemeValidation(t *testing.T) {
	layer := func(thresh float32) LayerSpec {
		return LayerSpec{Color: [4]uint8{10, 20, 30, 255}, Threshold: thresh}
	}

	t.Run("wrong layer count", func(t *testing.T) {
		_, err := NewTheme("short", []LayerSpec{layer(0.1), layer(0.2)})
		if err == nil {
			t.Fatal("expected error for 2 layers")
		}
	})

	t.Run("non-increasing thresholds", func(t *testing.T) {
		_, err := NewTheme("bad", []LayerSpec{
			layer(0.1), layer(0.3), layer(0.3), layer(0.4), layer(0.5), layer(0),
		})
		if err == nil {
			t.Fatal("expected error for equal thresholds")
		}
	})

	t.Run("final threshold unbounded", func(t *testing.T) {
		theme, err := NewTheme("ok", []LayerSpec{
			layer(0.1), layer(0.2), layer(0.3), layer(0.4), layer(0.5), layer(0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsInf(float64(theme.layers[NumLayers-1].Threshold), 1) {
			t.Errorf("final threshold %v, want +Inf", theme.layers[NumLayers-1].Threshold)
		}
	})
}

func TestThemeColorBands(t *testing.T) {
	theme, err := ThemeByName("island")
	if err != nil {
		t.Fatalf("island theme: %v", err)
	}

	tests := []struct {
		z    float32
		want int // expected layer index
	}{
		{-0.5, 0},
		{0.0, 0}, // boundary inclusive
		{0.01, 1},
		{0.15, 1},
		{0.2, 2},
		{0.3, 3},
		{0.4, 3},
		{0.9, 4},
		{0.96, 4},
		{0.97, 5},
		{100, 5}, // unbounded final band
	}
	for _, tt := range tests {
		got := theme.Color(tt.z)
		want := theme.layers[tt.want].Color
		if got != want {
			t.Errorf("Color(%v) = %v, want layer %d (%v)", tt.z, got, tt.want, want)
		}
	}
}

// Band selection must be monotonic in z.
func TestThemeColorMonotonic(t *testing.T) {
	theme, err := ThemeByName("mountain")
	if err != nil {
		t.Fatalf("mountain theme: %v", err)
	}

	bandIndex := func(z float32) int {
		c := theme.Color(z)
		for i, layer := range theme.layers {
			if layer.Color == c {
				return i
			}
		}
		t.Fatalf("Color(%v) not a layer color", z)
		return -1
	}

	prev := -1
	for z := float32(-0.2); z < 1.5; z += 0.01 {
		idx := bandIndex(z)
		if idx < prev {
			t.Fatalf("band index decreased at z=%v: %d -> %d", z, prev, idx)
		}
		prev = idx
	}
}

func TestColorNormalization(t *testing.T) {
	theme, err := ThemeByName("mountain")
	if err != nil {
		t.Fatalf("mountain theme: %v", err)
	}

	// 25/255 rounded to two decimals.
	if got := theme.layers[0].Color[0]; got != 0.1 {
		t.Errorf("normalized red %v, want 0.1", got)
	}
	if got := theme.layers[0].Color[3]; got != 1.0 {
		t.Errorf("normalized alpha %v, want 1.0", got)
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"mountain", "Snow", "DESERT", "island"} {
		if _, err := ThemeByName(name); err != nil {
			t.Errorf("ThemeByName(%q): %v", name, err)
		}
	}
	if _, err := ThemeByName("volcano"); err == nil {
		t.Error("expected error for unknown theme")
	}
}
