package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of floats per vertex record: position (3),
// RGBA color (4), normal (3), UV (2).
const VertexStride = 12

// Buffer is the append-only accumulator for mesh data. Vertex attributes
// are interleaved into a flat float stream and triangles reference them by
// absolute index. Records are never mutated or removed after emission; the
// buffer is handed to the consumer whole.
type Buffer struct {
	data    []float32
	indices []uint32
	count   uint32
}

// NewBuffer returns an empty accumulator.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// AppendVertex appends one vertex record.
func (b *Buffer) AppendVertex(pos mgl32.Vec3, color mgl32.Vec4, normal mgl32.Vec3, uv mgl32.Vec2) {
	b.data = append(b.data,
		pos.X(), pos.Y(), pos.Z(),
		color.X(), color.Y(), color.Z(), color.W(),
		normal.X(), normal.Y(), normal.Z(),
		uv.X(), uv.Y(),
	)
	b.count++
}

// AppendTriangle appends one triangle as three absolute vertex indices.
// An index referencing a slot that has not been appended yet means the
// caller's offset bookkeeping is broken; that is a bug, not an input
// error, so it panics rather than emit corrupt geometry.
func (b *Buffer) AppendTriangle(i0, i1, i2 uint32) {
	if i0 >= b.count || i1 >= b.count || i2 >= b.count {
		panic(fmt.Sprintf("terrain: triangle indices (%d, %d, %d) out of range for %d vertices", i0, i1, i2, b.count))
	}
	b.indices = append(b.indices, i0, i1, i2)
}

// VertexCount returns the number of vertex records appended so far.
func (b *Buffer) VertexCount() uint32 {
	return b.count
}

// VertexData returns the interleaved attribute stream, VertexStride floats
// per vertex.
func (b *Buffer) VertexData() []float32 {
	return b.data
}

// Indices returns the triangle-list index stream.
func (b *Buffer) Indices() []uint32 {
	return b.indices
}

// Merge appends all of other's records to b, rewriting other's indices by
// b's current vertex count. This is how independently sliced buffers are
// concatenated after parallel generation.
func (b *Buffer) Merge(other *Buffer) {
	base := b.count
	b.data = append(b.data, other.data...)
	b.count += other.count
	for _, idx := range other.indices {
		b.indices = append(b.indices, base+idx)
	}
}
