package meshgen

// traceOutlines collects every boundary loop of the triangulated surface.
// A boundary edge is a vertex pair that co-occurs in exactly one triangle.
// Vertices are visited in ascending index order and neighbors scanned in
// adjacency insertion order, so identical input always yields identical
// outlines. Each outline is closed explicitly: its first index is repeated
// at the end.
func (b *builder) traceOutlines() {
	for v := 0; v < len(b.vertices); v++ {
		if b.checked[v] {
			continue
		}
		next, ok := b.boundaryNeighbor(v)
		if !ok {
			continue
		}

		b.checked[v] = true
		outline := []int{v}
		cur := next
		for {
			outline = append(outline, cur)
			b.checked[cur] = true
			n, ok := b.boundaryNeighbor(cur)
			if !ok {
				break
			}
			cur = n
		}
		outline = append(outline, v)
		b.outlines = append(b.outlines, outline)
	}
}

// boundaryNeighbor finds the first unchecked vertex that shares a boundary
// edge with v.
func (b *builder) boundaryNeighbor(v int) (int, bool) {
	for _, tri := range b.adjacency[v] {
		for _, w := range [3]int{tri.A, tri.B, tri.C} {
			if w == v || b.checked[w] {
				continue
			}
			if b.isBoundaryEdge(v, w) {
				return w, true
			}
		}
	}
	return 0, false
}

// isBoundaryEdge reports whether the edge (a, b) belongs to exactly one
// triangle. Every triangle touching the edge also touches a, so scanning a's
// adjacency list sees them all.
func (b *builder) isBoundaryEdge(a, c int) bool {
	shared := 0
	for _, tri := range b.adjacency[a] {
		if tri.Contains(c) {
			shared++
			if shared > 1 {
				return false
			}
		}
	}
	return shared == 1
}
