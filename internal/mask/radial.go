// Package mask provides the gradient masks that carve island coastlines
// out of a height field.
package mask

import "github.com/go-gl/mathgl/mgl32"

// Radial is a planar falloff mask: 0 at the center rising linearly to 1 at
// Radius and saturating beyond it. Subtracting it from a height field sinks
// terrain toward the rim.
type Radial struct {
	Center mgl32.Vec2
	Radius float32
}

// NewRadial centers a mask of the given radius on the origin.
func NewRadial(radius float32) *Radial {
	return &Radial{Radius: radius}
}

// Gradient returns the mask value at (x, y).
func (m *Radial) Gradient(x, y float32) float32 {
	d := mgl32.Vec2{x, y}.Sub(m.Center).Len() / m.Radius
	if d >= 1 {
		return 1
	}
	return d
}
