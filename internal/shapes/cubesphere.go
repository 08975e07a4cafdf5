package shapes

import "github.com/go-gl/mathgl/mgl32"

// VertexValue is the half-extent of the cube a sphere is subdivided on.
// Gradient masks classify cube vertices by comparing coordinates against
// it.
const VertexValue = 1.0

// Cubesphere yields the triangles of a recursively subdivided cube. Faces
// stay on the cube surface; terrain displacement normalizes each vertex
// onto the unit sphere, so the subdivision density is what matters here,
// not the cube shape.
type Cubesphere struct {
	MaxDepth int
}

// The six cube faces as outward-wound corner quads.
var cubeFaces = [6][4]mgl32.Vec3{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},     // top (+Z)
	{{-1, 1, -1}, {1, 1, -1}, {1, -1, -1}, {-1, -1, -1}}, // bottom (-Z)
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},     // front (+Y)
	{{1, -1, 1}, {-1, -1, 1}, {-1, -1, -1}, {1, -1, -1}}, // back (-Y)
	{{1, 1, 1}, {1, -1, 1}, {1, -1, -1}, {1, 1, -1}},     // right (+X)
	{{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1}}, // left (-X)
}

// Faces returns the subdivided cube triangles, two per face quad before
// subdivision.
func (c *Cubesphere) Faces() [][3]mgl32.Vec3 {
	var faces [][3]mgl32.Vec3
	for _, quad := range cubeFaces {
		q := [4]mgl32.Vec3{
			quad[0].Mul(VertexValue),
			quad[1].Mul(VertexValue),
			quad[2].Mul(VertexValue),
			quad[3].Mul(VertexValue),
		}
		faces = append(faces, Subdivide([3]mgl32.Vec3{q[0], q[1], q[2]}, c.MaxDepth)...)
		faces = append(faces, Subdivide([3]mgl32.Vec3{q[2], q[3], q[0]}, c.MaxDepth)...)
	}
	return faces
}
