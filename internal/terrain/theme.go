package terrain

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// NumLayers is the number of color bands every theme carries.
const NumLayers = 6

// LayerSpec declares one theme layer: an 8-bit RGBA color and the upper
// height threshold of its band. The final layer's threshold is ignored and
// treated as unbounded.
type LayerSpec struct {
	Color     [4]uint8
	Threshold float32
}

// Layer is one constructed color band. Color components are normalized to
// the 0-1 range; the final layer's threshold is +Inf.
type Layer struct {
	Color     mgl32.Vec4
	Threshold float32
}

// Theme maps heights to band colors. Thresholds are strictly increasing,
// so Color is total and monotonic over all heights.
type Theme struct {
	name   string
	layers [NumLayers]Layer
}

// NewTheme builds a theme from exactly NumLayers layer specs. Thresholds
// must be strictly increasing up to the final, unbounded layer.
func NewTheme(name string, specs []LayerSpec) (*Theme, error) {
	if len(specs) != NumLayers {
		return nil, fmt.Errorf("terrain: theme %q needs exactly %d layers, got %d", name, NumLayers, len(specs))
	}

	t := &Theme{name: name}
	for i, spec := range specs {
		threshold := spec.Threshold
		if i == NumLayers-1 {
			threshold = float32(math.Inf(1))
		} else if i > 0 && threshold <= t.layers[i-1].Threshold {
			return nil, fmt.Errorf("terrain: theme %q thresholds must be strictly increasing, layer %d (%v) <= layer %d (%v)",
				name, i+1, threshold, i, t.layers[i-1].Threshold)
		}
		t.layers[i] = Layer{Color: normalizeColor(spec.Color), Threshold: threshold}
	}
	return t, nil
}

// Name returns the theme's registry name.
func (t *Theme) Name() string {
	return t.name
}

// Floor returns the first layer's threshold, the height terrain is clamped
// up to so the lowest band reads as sea level.
func (t *Theme) Floor() float32 {
	return t.layers[0].Threshold
}

// Color returns the color of the lowest band whose threshold is at least z.
// The final layer is unbounded, so every height maps to exactly one band.
func (t *Theme) Color(z float32) mgl32.Vec4 {
	for _, layer := range t.layers {
		if z <= layer.Threshold {
			return layer.Color
		}
	}
	return t.layers[NumLayers-1].Color
}

// normalizeColor converts an 8-bit RGBA color to the 0-1 range, rounded to
// two decimals.
func normalizeColor(c [4]uint8) mgl32.Vec4 {
	var out mgl32.Vec4
	for i, v := range c {
		out[i] = float32(math.Round(float64(v)/255*100) / 100)
	}
	return out
}

// Built-in theme layer tables. Construction happens on demand through
// ThemeByName; there is no implicit registration.
var builtinThemes = map[string][]LayerSpec{
	"mountain": {
		{Color: [4]uint8{25, 47, 96, 255}, Threshold: 0.68},   // iron blue
		{Color: [4]uint8{38, 73, 157, 255}, Threshold: 0.73},  // oriental blue
		{Color: [4]uint8{111, 84, 54, 255}, Threshold: 0.75},  // burnt umber
		{Color: [4]uint8{0, 51, 25, 255}, Threshold: 0.88},
		{Color: [4]uint8{0, 102, 49, 255}, Threshold: 1.0},
		{Color: [4]uint8{0, 133, 54, 255}},
	},
	"snow": {
		{Color: [4]uint8{3, 51, 102, 255}, Threshold: 0.58},
		{Color: [4]uint8{38, 73, 157, 255}, Threshold: 0.68},
		{Color: [4]uint8{130, 205, 221, 255}, Threshold: 0.73},
		{Color: [4]uint8{102, 102, 102, 255}, Threshold: 0.88},
		{Color: [4]uint8{51, 51, 51, 255}, Threshold: 0.96},
		{Color: [4]uint8{255, 255, 255, 255}},
	},
	"desert": {
		{Color: [4]uint8{237, 209, 142, 255}, Threshold: 0.52},
		{Color: [4]uint8{237, 210, 143, 255}, Threshold: 0.62},
		{Color: [4]uint8{250, 197, 89, 255}, Threshold: 0.78},
		{Color: [4]uint8{153, 96, 49, 255}, Threshold: 0.88},
		{Color: [4]uint8{108, 53, 36, 255}, Threshold: 1.0},
		{Color: [4]uint8{51, 39, 16, 255}},
	},
	"island": {
		{Color: [4]uint8{0, 104, 183, 255}, Threshold: 0.0},
		{Color: [4]uint8{255, 247, 153, 255}, Threshold: 0.15},
		{Color: [4]uint8{128, 120, 92, 255}, Threshold: 0.22},
		{Color: [4]uint8{0, 102, 46, 255}, Threshold: 0.4},
		{Color: [4]uint8{0, 128, 57, 255}, Threshold: 0.96},
		{Color: [4]uint8{0, 163, 88, 255}},
	},
}

// ThemeByName constructs one of the built-in themes. Lookup is
// case-insensitive.
func ThemeByName(name string) (*Theme, error) {
	key := strings.ToLower(name)
	specs, ok := builtinThemes[key]
	if !ok {
		return nil, fmt.Errorf("terrain: unknown theme %q", name)
	}
	return NewTheme(key, specs)
}

// ThemeNames lists the built-in theme names.
func ThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	return names
}
