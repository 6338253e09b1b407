// Package obj writes meshes as Wavefront OBJ, the interchange format most
// modeling and navmesh tools accept.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cavekit/cavemesh/pkg/math"
)

// NamedMesh is one OBJ object: a name plus its vertex/index buffers.
// Indices are triangle triples into Vertices.
type NamedMesh struct {
	Name     string
	Vertices []math.Vec3
	Indices  []uint32
}

// Write emits the meshes as one OBJ document. Vertex indices are 1-based in
// OBJ and global across objects, so each object's faces are offset by the
// vertices written before it.
func Write(w io.Writer, meshes ...NamedMesh) error {
	bw := bufio.NewWriter(w)

	offset := 1
	for _, m := range meshes {
		if len(m.Indices)%3 != 0 {
			return fmt.Errorf("object %q: index count %d not a multiple of 3", m.Name, len(m.Indices))
		}
		for i, idx := range m.Indices {
			if int(idx) >= len(m.Vertices) {
				return fmt.Errorf("object %q: index %d at position %d out of range (%d vertices)",
					m.Name, idx, i, len(m.Vertices))
			}
		}

		if _, err := fmt.Fprintf(bw, "o %s\n", m.Name); err != nil {
			return err
		}
		for _, v := range m.Vertices {
			if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
				return err
			}
		}
		for i := 0; i+2 < len(m.Indices); i += 3 {
			_, err := fmt.Fprintf(bw, "f %d %d %d\n",
				offset+int(m.Indices[i]),
				offset+int(m.Indices[i+1]),
				offset+int(m.Indices[i+2]))
			if err != nil {
				return err
			}
		}
		offset += len(m.Vertices)
	}
	return bw.Flush()
}

// WriteFile writes the meshes to an OBJ file on disk.
func WriteFile(path string, meshes ...NamedMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating obj file: %w", err)
	}
	if err := Write(f, meshes...); err != nil {
		f.Close()
		return fmt.Errorf("writing obj file: %w", err)
	}
	return f.Close()
}
