// Package objfile writes triangle meshes as Wavefront OBJ text.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Stride is the number of floats per vertex record in the interleaved
// stream: position (3), RGBA color (4), normal (3), UV (2).
const Stride = 12

// Write writes an interleaved vertex stream and a triangle-list index
// stream as OBJ. Vertex colors ride along on the "v" lines, the extension
// most viewers accept; alpha has no OBJ representation and is dropped.
func Write(w io.Writer, name string, vertexData []float32, indices []uint32) error {
	if len(vertexData)%Stride != 0 {
		return fmt.Errorf("objfile: vertex data length %d is not a multiple of %d", len(vertexData), Stride)
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("objfile: index count %d is not a multiple of 3", len(indices))
	}

	count := uint32(len(vertexData) / Stride)
	for _, idx := range indices {
		if idx >= count {
			return fmt.Errorf("objfile: index %d out of range for %d vertices", idx, count)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)

	for i := uint32(0); i < count; i++ {
		rec := vertexData[i*Stride : (i+1)*Stride]
		fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", rec[0], rec[1], rec[2], rec[3], rec[4], rec[5])
	}
	for i := uint32(0); i < count; i++ {
		rec := vertexData[i*Stride : (i+1)*Stride]
		fmt.Fprintf(bw, "vt %g %g\n", rec[10], rec[11])
	}
	for i := uint32(0); i < count; i++ {
		rec := vertexData[i*Stride : (i+1)*Stride]
		fmt.Fprintf(bw, "vn %g %g %g\n", rec[7], rec[8], rec[9])
	}

	// OBJ indices are 1-based.
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i]+1, indices[i+1]+1, indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

// WriteFile writes the mesh to a file, creating or truncating it.
func WriteFile(path, name string, vertexData []float32, indices []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objfile: creating %s: %w", path, err)
	}
	if err := Write(f, name, vertexData, indices); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
