package meshgen

import (
	"fmt"

	"github.com/cavekit/cavemesh/pkg/math"
)

// Triangle holds three vertex indices. The stored order fixes the winding;
// membership tests ignore it.
type Triangle struct {
	A, B, C int
}

// Contains reports whether the triangle references the vertex index.
func (t Triangle) Contains(v int) bool {
	return v == t.A || v == t.B || v == t.C
}

// pointTable maps a square configuration to the ordered point list it
// triangulates as a fan. One active corner gives the corner plus its two
// midpoints; two adjacent corners a quad; three corners a pentagon. The
// saddle configurations 5 and 10 always expand to the full hexagon rather
// than picking a diagonal split; levels depend on that topology.
var pointTable = [16][]int{
	0:  {},
	1:  {centreLeft, centreBottom, bottomLeft},
	2:  {bottomRight, centreBottom, centreRight},
	4:  {topRight, centreRight, centreTop},
	8:  {topLeft, centreTop, centreLeft},
	3:  {centreRight, bottomRight, bottomLeft, centreLeft},
	6:  {centreTop, topRight, bottomRight, centreBottom},
	9:  {topLeft, centreTop, centreBottom, bottomLeft},
	12: {topLeft, topRight, centreRight, centreLeft},
	5:  {centreTop, topRight, centreRight, centreBottom, bottomLeft, centreLeft},
	10: {topLeft, centreTop, centreRight, bottomRight, centreBottom, centreLeft},
	7:  {centreTop, topRight, bottomRight, bottomLeft, centreLeft},
	11: {topLeft, centreTop, centreRight, bottomRight, bottomLeft},
	13: {topLeft, topRight, centreRight, centreBottom, bottomLeft},
	14: {topLeft, topRight, bottomRight, centreBottom, centreLeft},
	15: {topLeft, topRight, bottomRight, bottomLeft},
}

// builder holds the working state of one generation pass: the vertex
// registry, triangle list, per-vertex triangle adjacency, and the checked
// set shared between triangulation and outline tracing. All of it is
// discarded when the pass completes.
type builder struct {
	lat       *lattice
	vertices  []math.Vec3
	index     map[nodeRef]int // registry: presence means the node has a vertex
	triangles []Triangle
	adjacency map[int][]Triangle
	checked   map[int]bool
	outlines  [][]int
}

func newBuilder(lat *lattice) *builder {
	return &builder{
		lat:       lat,
		index:     make(map[nodeRef]int),
		adjacency: make(map[int][]Triangle),
		checked:   make(map[int]bool),
	}
}

// triangulate walks every square in row-major order and emits its fan.
func (b *builder) triangulate() error {
	for i := range b.lat.squares {
		if err := b.triangulateSquare(&b.lat.squares[i]); err != nil {
			return fmt.Errorf("square %d: %w", i, err)
		}
	}
	return nil
}

func (b *builder) triangulateSquare(s *square) error {
	if s.config < 0 || s.config > 15 {
		return fmt.Errorf("configuration %d out of range", s.config)
	}

	points := pointTable[s.config]
	idx := make([]int, len(points))
	for i, p := range points {
		idx[i] = b.registerVertex(s.nodes[p])
	}
	for i := 2; i < len(idx); i++ {
		b.addTriangle(idx[0], idx[i-1], idx[i])
	}

	// A fully solid square can never contribute a boundary edge; its corners
	// are excluded from outline tracing up front.
	if s.config == 15 {
		for _, p := range points {
			b.checked[b.index[s.nodes[p]]] = true
		}
	}
	return nil
}

// registerVertex returns the vertex index for a node, assigning one on first
// use. Assignment is idempotent: once a node has an index it keeps it.
func (b *builder) registerVertex(n nodeRef) int {
	if i, ok := b.index[n]; ok {
		return i
	}
	i := len(b.vertices)
	b.vertices = append(b.vertices, b.lat.pos[n])
	b.index[n] = i
	return i
}

func (b *builder) addTriangle(a, c, d int) {
	t := Triangle{A: a, B: c, C: d}
	b.triangles = append(b.triangles, t)
	b.adjacency[a] = append(b.adjacency[a], t)
	b.adjacency[c] = append(b.adjacency[c], t)
	b.adjacency[d] = append(b.adjacency[d], t)
}
