package terrain

import (
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// HeightFunc derives the scalar height of one base-surface vertex. It is
// queried exactly once per vertex and must be pure for the duration of one
// build.
type HeightFunc func(p mgl32.Vec3) float32

// FaceSource supplies the base triangles to slice.
type FaceSource interface {
	Faces() [][3]mgl32.Vec3
}

// Generator drives terrace extraction over a whole base surface.
type Generator struct {
	emb    Embedding
	slicer *Slicer
}

// NewGenerator builds a generator for one embedding and theme.
func NewGenerator(emb Embedding, theme *Theme) *Generator {
	return &Generator{emb: emb, slicer: NewSlicer(emb, theme)}
}

// Generate slices every base face in order and returns the finished
// buffers. Ownership of the returned buffer passes to the caller.
func (g *Generator) Generate(src FaceSource, height HeightFunc) *Buffer {
	buf := NewBuffer()
	var offset uint32
	for _, face := range src.Faces() {
		offset += g.slicer.Slice(g.buildTriangle(face, height), offset, buf)
	}
	return buf
}

// GenerateParallel slices faces across a worker pool. Each worker fills a
// local buffer whose indices count from zero; the locals are then merged
// in face order, which rewrites their indices by the cumulative vertex
// offset. The result is identical to Generate. workers <= 0 means one per
// CPU.
func (g *Generator) GenerateParallel(src FaceSource, height HeightFunc, workers int) *Buffer {
	faces := src.Faces()
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	const chunkSize = 256
	chunks := (len(faces) + chunkSize - 1) / chunkSize
	locals := make([]*Buffer, chunks)

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	for ci := 0; ci < chunks; ci++ {
		ci := ci
		start := ci * chunkSize
		end := min(start+chunkSize, len(faces))

		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()

			local := NewBuffer()
			var offset uint32
			for _, face := range faces[start:end] {
				offset += g.slicer.Slice(g.buildTriangle(face, height), offset, local)
			}
			locals[ci] = local
		})
	}
	wg.Wait()

	merged := NewBuffer()
	for _, local := range locals {
		merged.Merge(local)
	}
	return merged
}

// buildTriangle queries the height provider once per vertex, displaces the
// face through the embedding and derives the heights the slicer works on.
func (g *Generator) buildTriangle(face [3]mgl32.Vec3, height HeightFunc) Triangle {
	var t Triangle
	for i, p := range face {
		displaced := g.emb.Displace(p, height(p))
		t[i] = HeightedVertex{Position: displaced, Height: g.emb.Height(displaced)}
	}
	return t
}
