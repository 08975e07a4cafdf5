// Package terrain builds terraced ("stepped") terrain meshes from a scalar
// height field sampled over a triangulated base surface. Each base triangle
// is sliced at a sequence of discrete height levels and replaced with flat
// roof faces and vertical wall faces, one step per terrace band.
package terrain

import "github.com/go-gl/mathgl/mgl32"

// BandHeight is the vertical extent of one terrace band. Cutting levels are
// spaced by half of one decimal height step and every wall drops by this
// amount to meet the band below.
const BandHeight = 0.05

// HeightedVertex is a displaced base-surface vertex paired with its derived
// scalar height. What the height means depends on the embedding: world Z
// for planar terrain, distance from the origin for spherical terrain.
type HeightedVertex struct {
	Position mgl32.Vec3
	Height   float32
}

// Triangle is one base-surface face, ready for slicing. Vertex order
// matters: the slicer canonicalizes it per cutting level so each case can
// assume fixed vertex roles. The set of three vertices never changes.
type Triangle [3]HeightedVertex

// NewTriangle derives per-vertex heights for three displaced positions
// using the given embedding.
func NewTriangle(emb Embedding, p1, p2, p3 mgl32.Vec3) Triangle {
	return Triangle{
		{Position: p1, Height: emb.Height(p1)},
		{Position: p2, Height: emb.Height(p2)},
		{Position: p3, Height: emb.Height(p3)},
	}
}

// Heights returns the three vertex heights in order.
func (t Triangle) Heights() (float32, float32, float32) {
	return t[0].Height, t[1].Height, t[2].Height
}

// rotate shifts the vertex order cyclically: (v1,v2,v3) -> (v2,v3,v1).
func (t Triangle) rotate() Triangle {
	return Triangle{t[1], t[2], t[0]}
}
