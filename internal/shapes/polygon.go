// Package shapes triangulates the base surfaces height fields are sampled
// over: a flat polygon fan for planar terrain and a subdivided cube for
// spherical terrain.
package shapes

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Polygon is a flat regular n-gon in the Z=0 plane, triangulated as a fan
// around its center and refined by recursive midpoint subdivision.
type Polygon struct {
	Segments int     // outer vertices, minimum 3
	Radius   float32 // center to outer vertex
	MaxDepth int     // 4-way subdivision rounds per fan triangle
	Center   mgl32.Vec3
}

// Faces returns the subdivided fan triangles.
func (p *Polygon) Faces() [][3]mgl32.Vec3 {
	step := 360.0 / float64(p.Segments)

	var faces [][3]mgl32.Vec3
	for i := 0; i < p.Segments; i++ {
		pt1 := p.rim(step * float64(i+1))
		pt2 := p.rim(step * float64(i+2))
		faces = append(faces, Subdivide([3]mgl32.Vec3{pt1, pt2, p.Center}, p.MaxDepth)...)
	}
	return faces
}

// rim returns the outer polygon vertex at the given angle in degrees.
func (p *Polygon) rim(theta float64) mgl32.Vec3 {
	rad := theta * math.Pi / 180
	return mgl32.Vec3{
		p.Radius*float32(math.Cos(rad)) + p.Center.X(),
		p.Radius*float32(math.Sin(rad)) + p.Center.Y(),
		0,
	}
}

// Subdivide splits a triangle into four by its edge midpoints, depth
// times, keeping the parent's winding.
func Subdivide(face [3]mgl32.Vec3, depth int) [][3]mgl32.Vec3 {
	if depth <= 0 {
		return [][3]mgl32.Vec3{face}
	}

	m01 := midpoint(face[0], face[1])
	m12 := midpoint(face[1], face[2])
	m20 := midpoint(face[2], face[0])

	out := Subdivide([3]mgl32.Vec3{face[0], m01, m20}, depth-1)
	out = append(out, Subdivide([3]mgl32.Vec3{m01, face[1], m12}, depth-1)...)
	out = append(out, Subdivide([3]mgl32.Vec3{m20, m12, face[2]}, depth-1)...)
	out = append(out, Subdivide([3]mgl32.Vec3{m01, m12, m20}, depth-1)...)
	return out
}

func midpoint(a, b mgl32.Vec3) mgl32.Vec3 {
	return a.Add(b).Mul(0.5)
}
