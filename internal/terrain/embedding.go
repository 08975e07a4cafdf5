package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Embedding converts abstract height into 3D geometry for one coordinate
// scheme. The slicer is written once against this interface; planar and
// spherical terrain differ only in projection math and in their normal and
// UV policy.
type Embedding interface {
	// Displace moves a base-surface vertex to its terrain position for the
	// given height sample.
	Displace(base mgl32.Vec3, h float32) mgl32.Vec3

	// Height extracts the scalar height of a displaced vertex.
	Height(p mgl32.Vec3) float32

	// ProjectToLevel returns the triangle's corners projected onto the
	// cutting level h.
	ProjectToLevel(t Triangle, h float32) [3]mgl32.Vec3

	// ProjectToLevelBelow projects onto the level one band beneath h,
	// where the wall geometry bottoms out.
	ProjectToLevelBelow(t Triangle, h float32) [3]mgl32.Vec3

	// BandIndex maps a cutting height to the scalar handed to Theme.Color.
	BandIndex(h float32) float32

	// VertexAttributes produces the emitted position, normal and UV for
	// one projected point. wallNormal is the precomputed quad normal,
	// consulted only when wall is true.
	VertexAttributes(p, wallNormal mgl32.Vec3, wall bool) (pos, normal mgl32.Vec3, uv mgl32.Vec2)
}

// PlanarEmbedding treats height as the world Z coordinate: levels are
// horizontal planes and roofs always face straight up.
type PlanarEmbedding struct {
	// Radius of the base polygon, used to map XY onto the 0-1 UV square.
	Radius float32
}

func (e PlanarEmbedding) Displace(base mgl32.Vec3, h float32) mgl32.Vec3 {
	return mgl32.Vec3{base.X(), base.Y(), h}
}

func (e PlanarEmbedding) Height(p mgl32.Vec3) float32 {
	return p.Z()
}

func (e PlanarEmbedding) ProjectToLevel(t Triangle, h float32) [3]mgl32.Vec3 {
	var out [3]mgl32.Vec3
	for i, v := range t {
		out[i] = mgl32.Vec3{v.Position.X(), v.Position.Y(), h}
	}
	return out
}

func (e PlanarEmbedding) ProjectToLevelBelow(t Triangle, h float32) [3]mgl32.Vec3 {
	return e.ProjectToLevel(t, h-BandHeight)
}

func (e PlanarEmbedding) BandIndex(h float32) float32 {
	return h
}

func (e PlanarEmbedding) VertexAttributes(p, wallNormal mgl32.Vec3, wall bool) (mgl32.Vec3, mgl32.Vec3, mgl32.Vec2) {
	normal := mgl32.Vec3{0, 0, 1}
	if wall {
		normal = wallNormal
	}
	uv := mgl32.Vec2{
		0.5 + p.X()/e.Radius*0.5,
		0.5 + p.Y()/e.Radius*0.5,
	}
	return p, normal, uv
}

// SphericalEmbedding treats height as the distance from the origin: levels
// are concentric shells and points are rescaled along their own direction
// vector. Heights are defined relative to the unit sphere, so band colors
// are shifted by the unit radius.
type SphericalEmbedding struct {
	// RenderScale scales emitted positions; heights are unaffected.
	RenderScale float32
}

func (e SphericalEmbedding) Displace(base mgl32.Vec3, h float32) mgl32.Vec3 {
	return base.Normalize().Mul(1 + h)
}

func (e SphericalEmbedding) Height(p mgl32.Vec3) float32 {
	return p.Len()
}

func (e SphericalEmbedding) ProjectToLevel(t Triangle, h float32) [3]mgl32.Vec3 {
	var out [3]mgl32.Vec3
	for i, v := range t {
		out[i] = v.Position.Mul(h / v.Height)
	}
	return out
}

func (e SphericalEmbedding) ProjectToLevelBelow(t Triangle, h float32) [3]mgl32.Vec3 {
	return e.ProjectToLevel(t, h-BandHeight)
}

func (e SphericalEmbedding) BandIndex(h float32) float32 {
	return h - 1
}

func (e SphericalEmbedding) VertexAttributes(p, wallNormal mgl32.Vec3, wall bool) (mgl32.Vec3, mgl32.Vec3, mgl32.Vec2) {
	dir := p.Normalize()
	normal := dir
	if wall {
		normal = wallNormal
	}
	return p.Mul(e.RenderScale), normal, sphereUV(dir)
}

// sphereUV maps a unit direction to equirectangular texture coordinates.
func sphereUV(dir mgl32.Vec3) mgl32.Vec2 {
	u := 0.5 + float32(math.Atan2(float64(dir.Y()), float64(dir.X())))/(2*math.Pi)
	v := 0.5 + float32(math.Asin(float64(mgl32.Clamp(dir.Z(), -1, 1))))/math.Pi
	return mgl32.Vec2{u, v}
}
