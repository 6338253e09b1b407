package meshgen

import (
	"fmt"

	"github.com/cavekit/cavemesh/pkg/math"
)

// Mesh is one vertex/index buffer pair ready for upload. Indices are only
// valid within the same mesh. Bounds doubles as the collision proxy.
type Mesh struct {
	Vertices []math.Vec3
	Indices  []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max math.Vec3
}

func boundsOf(vertices []math.Vec3) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		if v.X < b.Min.X {
			b.Min.X = v.X
		}
		if v.Y < b.Min.Y {
			b.Min.Y = v.Y
		}
		if v.Z < b.Min.Z {
			b.Min.Z = v.Z
		}
		if v.X > b.Max.X {
			b.Max.X = v.X
		}
		if v.Y > b.Max.Y {
			b.Max.Y = v.Y
		}
		if v.Z > b.Max.Z {
			b.Max.Z = v.Z
		}
	}
	return b
}

// Result holds the three independent meshes of one generation pass plus the
// traced boundary loops (closed vertex-index sequences into Top).
type Result struct {
	Top      Mesh
	Walls    Mesh
	Floor    Mesh
	Outlines [][]int
}

// Generate runs the full pipeline: lattice, marching-squares triangulation,
// outline tracing, then top/wall/floor assembly. It is a pure function of
// its inputs; calling it twice with the same grid and parameters produces
// identical buffers. All working state is local to the call.
func Generate(grid Grid, cellSize, wallHeight float32) (*Result, error) {
	w, h := grid.Size()
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrGridTooSmall, w, h)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadCellSize, cellSize)
	}
	if wallHeight <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadWallHeight, wallHeight)
	}

	b := newBuilder(buildLattice(grid, cellSize))
	if err := b.triangulate(); err != nil {
		return nil, fmt.Errorf("triangulating: %w", err)
	}
	b.traceOutlines()

	res := &Result{
		Top:      b.buildTop(),
		Walls:    b.buildWalls(wallHeight),
		Floor:    buildFloor(w, h, cellSize, wallHeight),
		Outlines: b.outlines,
	}
	return res, nil
}

// buildTop assembles the registry vertices and all emitted triangles into
// the walkable surface mesh.
func (b *builder) buildTop() Mesh {
	vertices := make([]math.Vec3, len(b.vertices))
	copy(vertices, b.vertices)

	indices := make([]uint32, 0, 3*len(b.triangles))
	for _, t := range b.triangles {
		indices = append(indices, uint32(t.A), uint32(t.B), uint32(t.C))
	}
	return Mesh{Vertices: vertices, Indices: indices, Bounds: boundsOf(vertices)}
}

// buildWalls extrudes every outline edge down by wallHeight. Each edge gets
// its own four vertices; panels deliberately share nothing so each keeps an
// independent seam for later secondary-UV generation. Winding faces the
// open interior. The duplicated closing vertex of each outline means plain
// consecutive pairing covers the whole loop.
func (b *builder) buildWalls(wallHeight float32) Mesh {
	var vertices []math.Vec3
	var indices []uint32

	drop := math.Vec3{Y: -wallHeight}
	for _, outline := range b.outlines {
		for i := 0; i < len(outline)-1; i++ {
			start := uint32(len(vertices))
			topA := b.vertices[outline[i]]
			topB := b.vertices[outline[i+1]]
			// top left, top right, bottom left, bottom right
			vertices = append(vertices,
				topA,
				topB,
				topA.Add(drop),
				topB.Add(drop),
			)
			indices = append(indices,
				start, start+2, start+3,
				start+3, start+1, start,
			)
		}
	}
	return Mesh{Vertices: vertices, Indices: indices, Bounds: boundsOf(vertices)}
}

// buildFloor emits the flat slab under the whole grid: a perfect rectangle
// regardless of wall layout, sitting at the wall bottoms.
func buildFloor(gridW, gridH int, cellSize, wallHeight float32) Mesh {
	halfW := float32(gridW) * cellSize / 2
	halfH := float32(gridH) * cellSize / 2
	y := -wallHeight

	vertices := []math.Vec3{
		{X: -halfW, Y: y, Z: -halfH},
		{X: halfW, Y: y, Z: -halfH},
		{X: halfW, Y: y, Z: halfH},
		{X: -halfW, Y: y, Z: halfH},
	}
	indices := []uint32{0, 3, 2, 0, 2, 1} // facing up
	return Mesh{Vertices: vertices, Indices: indices, Bounds: boundsOf(vertices)}
}
