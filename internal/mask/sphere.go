package mask

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Layout selects which diagonal of the base cube carries the two island
// centers.
type Layout int

const (
	// LayoutNESW puts the north center at (+1, +1, +1).
	LayoutNESW Layout = iota
	// LayoutNWSE puts the north center at (-1, +1, +1).
	LayoutNWSE
)

// SphereGradient is the spherical island mask: cube vertices are assigned
// to a north or south hemisphere center by face-boundary checks, and the
// falloff is the saturating distance to that center in noise-sample space.
type SphereGradient struct {
	Layout Layout

	// VertValue is the cube half-extent vertex coordinates are classified
	// against; Bound trims the strip along the dividing diagonal.
	VertValue float32
	Bound     float32

	NCenter mgl32.Vec3
	SCenter mgl32.Vec3

	MaxLength    float32
	GradientSize float32
}

// NewSphereGradient builds a mask for a cube of the given half-extent.
func NewSphereGradient(layout Layout, vertValue, bound float32) *SphereGradient {
	north := mgl32.Vec3{1, 1, 1}
	if layout == LayoutNWSE {
		north = mgl32.Vec3{-1, 1, 1}
	}
	return &SphereGradient{
		Layout:       layout,
		VertValue:    vertValue,
		Bound:        bound,
		NCenter:      north.Mul(vertValue),
		SCenter:      north.Mul(-vertValue),
		MaxLength:    100,
		GradientSize: 4,
	}
}

// Transform moves both centers into noise-sample space. Call once per
// build, with the same offset and scale applied to the sampled vertices.
func (g *SphereGradient) Transform(offset mgl32.Vec3, scale float32) {
	g.NCenter = g.NCenter.Add(offset).Mul(scale)
	g.SCenter = g.SCenter.Add(offset).Mul(scale)
}

// Center classifies a cube vertex and returns the hemisphere center that
// drives its falloff. Vertices on the strip between the hemispheres belong
// to neither.
func (g *SphereGradient) Center(v mgl32.Vec3) (mgl32.Vec3, bool) {
	switch g.classify(v) {
	case north:
		return g.NCenter, true
	case south:
		return g.SCenter, true
	}
	return mgl32.Vec3{}, false
}

// Gradient is the distance falloff from center, saturating at 1.
func (g *SphereGradient) Gradient(v, center mgl32.Vec3) float32 {
	d := v.Sub(center).Len() / (float32(math.Sqrt2) * g.MaxLength / g.GradientSize)
	if d >= 1 {
		return 1
	}
	return d
}

type hemisphere int

const (
	neither hemisphere = iota
	north
	south
)

// classify walks the six cube faces. A vertex is north when it sits on a
// face adjacent to the north corner and inside the Bound strip, south for
// the mirror faces.
func (g *SphereGradient) classify(v mgl32.Vec3) hemisphere {
	if g.Layout == LayoutNWSE {
		return g.classifyNWSE(v)
	}
	return g.classifyNESW(v)
}

func (g *SphereGradient) classifyNESW(v mgl32.Vec3) hemisphere {
	vv, b := g.VertValue, g.Bound

	// front, right, top
	if v.X() > -b && closeTo(v.Y(), vv) {
		return north
	}
	if closeTo(v.X(), vv) && v.Y() > -b {
		return north
	}
	if v.X() > -b && v.Y() > -b && closeTo(v.Z(), vv) {
		return north
	}

	// back, left, bottom
	if v.X() < b && closeTo(v.Y(), -vv) {
		return south
	}
	if closeTo(v.X(), -vv) && v.Y() < b {
		return south
	}
	if v.X() < b && v.Y() < b && closeTo(v.Z(), -vv) {
		return south
	}

	return neither
}

func (g *SphereGradient) classifyNWSE(v mgl32.Vec3) hemisphere {
	vv, b := g.VertValue, g.Bound

	// front, left, top
	if v.X() < b && closeTo(v.Y(), vv) {
		return north
	}
	if closeTo(v.X(), -vv) && v.Y() > -b {
		return north
	}
	if v.X() < b && v.Y() > -b && closeTo(v.Z(), vv) {
		return north
	}

	// back, right, bottom
	if v.X() > -b && closeTo(v.Y(), -vv) {
		return south
	}
	if closeTo(v.X(), vv) && v.Y() < b {
		return south
	}
	if v.X() > -b && v.Y() < b && closeTo(v.Z(), -vv) {
		return south
	}

	return neither
}

func closeTo(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 1e-5
}
