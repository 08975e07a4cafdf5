package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Above classifies a triangle against one cutting level by the number of
// vertices whose height strictly exceeds it.
type Above int

const (
	AboveNone Above = iota
	AboveOne
	AboveTwo
	AboveThree
)

// classify counts the vertices of t strictly above the cutting height h.
func classify(t Triangle, h float32) Above {
	var n Above
	for _, v := range t {
		if v.Height > h {
			n++
		}
	}
	return n
}

// canonicalize reorders t for the given classification so the slicing cases
// can assume fixed vertex roles: with one vertex above the level it moves
// to the v3 slot, with two above the below vertex moves to the v3 slot.
// The vertex set is unchanged.
func canonicalize(t Triangle, c Above, h float32) Triangle {
	switch c {
	case AboveOne:
		if t[0].Height > h {
			return t.rotate()
		}
		if t[1].Height > h {
			return t.rotate().rotate()
		}
	case AboveTwo:
		if t[0].Height <= h {
			return t.rotate()
		}
		if t[1].Height <= h {
			return t.rotate().rotate()
		}
	}
	return t
}

// Slicer runs the meandering-triangles terrace extraction: one base
// triangle in, roof and wall geometry for every crossing terrace level out.
// It is stateless apart from the buffer it appends into, so triangles can
// be sliced in any order or in parallel into separate buffers.
type Slicer struct {
	emb   Embedding
	theme *Theme
}

// NewSlicer pairs an embedding with a theme.
func NewSlicer(emb Embedding, theme *Theme) *Slicer {
	return &Slicer{emb: emb, theme: theme}
}

// Slice cuts t at every terrace level intersecting its height range and
// appends the step geometry to buf. offset is the absolute index of the
// next free vertex slot in buf; Slice returns the number of vertices it
// appended so the caller can advance its running offset.
func (s *Slicer) Slice(t Triangle, offset uint32, buf *Buffer) uint32 {
	h1, h2, h3 := t.Heights()
	dMin := math.Floor(float64(min(h1, h2, h3)) * 10)
	dMax := math.Floor(float64(max(h1, h2, h3)) * 10)

	var appended uint32

	// Levels advance in half deci-steps, i.e. BandHeight per level.
	steps := int(dMax-dMin)*2 + 2
	for i := 0; i < steps; i++ {
		h := float32((dMin + 0.5*float64(i)) / 10)

		c := classify(t, h)
		if c == AboveNone {
			// The level clears the whole triangle; a lower level
			// already produced its roof.
			continue
		}
		t = canonicalize(t, c, h)
		h1, h2, h3 = t.Heights()

		current := s.emb.ProjectToLevel(t, h)
		color := s.theme.Color(s.emb.BandIndex(h))

		if c == AboveThree {
			s.roofTriangle([3]mgl32.Vec3{current[0], current[1], current[2]}, color, offset+appended, buf)
			appended += 3
			continue
		}

		below := s.emb.ProjectToLevelBelow(t, h)

		// Edge points where the cutting plane crosses the v1-v3 and
		// v2-v3 edges, on both the current level and the level below.
		t1 := interp(h1, h3, h)
		t2 := interp(h2, h3, h)
		c1 := lerp(current[0], current[2], t1)
		c2 := lerp(current[1], current[2], t2)
		b1 := lerp(below[0], below[2], t1)
		b2 := lerp(below[1], below[2], t2)

		switch c {
		case AboveTwo:
			s.roofQuad([4]mgl32.Vec3{current[0], current[1], c2, c1}, color, offset+appended, buf)
			appended += 4
			s.wallQuad([4]mgl32.Vec3{c1, c2, b2, b1}, color, offset+appended, buf)
			appended += 4

		case AboveOne:
			s.roofTriangle([3]mgl32.Vec3{current[2], c1, c2}, color, offset+appended, buf)
			appended += 3
			s.wallQuad([4]mgl32.Vec3{c2, c1, b1, b2}, color, offset+appended, buf)
			appended += 4
		}
	}

	return appended
}

// roofTriangle emits one flat top face.
func (s *Slicer) roofTriangle(pts [3]mgl32.Vec3, color mgl32.Vec4, base uint32, buf *Buffer) {
	for _, p := range pts {
		pos, normal, uv := s.emb.VertexAttributes(p, mgl32.Vec3{}, false)
		buf.AppendVertex(pos, color, normal, uv)
	}
	buf.AppendTriangle(base, base+1, base+2)
}

// roofQuad emits the flat part of one step as a fan-split quad.
func (s *Slicer) roofQuad(pts [4]mgl32.Vec3, color mgl32.Vec4, base uint32, buf *Buffer) {
	for _, p := range pts {
		pos, normal, uv := s.emb.VertexAttributes(p, mgl32.Vec3{}, false)
		buf.AppendVertex(pos, color, normal, uv)
	}
	buf.AppendTriangle(base, base+1, base+2)
	buf.AppendTriangle(base+2, base+3, base)
}

// wallQuad emits the vertical face connecting one step to the band below.
// All four vertices share the quad normal so the seam between the two
// split triangles stays invisible.
func (s *Slicer) wallQuad(pts [4]mgl32.Vec3, color mgl32.Vec4, base uint32, buf *Buffer) {
	normal := quadNormal(pts)
	for _, p := range pts {
		pos, n, uv := s.emb.VertexAttributes(p, normal, true)
		buf.AppendVertex(pos, color, n, uv)
	}
	buf.AppendTriangle(base, base+1, base+3)
	buf.AppendTriangle(base+1, base+2, base+3)
}

// quadNormal splits the coplanar quad into its two triangles, takes each
// triangle's cross product and averages them. A zero-area quad (a vertex
// sitting exactly on the cutting level collapses both edge points) has no
// orientation and gets the zero normal instead of NaN.
func quadNormal(q [4]mgl32.Vec3) mgl32.Vec3 {
	e1 := q[1].Sub(q[0])
	e2 := q[3].Sub(q[0])
	e3 := q[3].Sub(q[2])
	e4 := q[1].Sub(q[2])

	total := e2.Cross(e1).Add(e4.Cross(e3))
	if total.Len() == 0 {
		return mgl32.Vec3{}
	}
	return total.Mul(0.5).Normalize()
}

// interp returns the interpolation parameter along the edge from the
// vertex at height ha to the vertex at height hb for cutting height h.
// A degenerate edge (equal heights) collapses to the first endpoint.
func interp(ha, hb, h float32) float32 {
	denom := ha - hb
	if denom == 0 {
		return 0
	}
	return (ha - h) / denom
}

// lerp interpolates between two points.
func lerp(start, end mgl32.Vec3, t float32) mgl32.Vec3 {
	return start.Add(end.Sub(start).Mul(t))
}
