package meshgen

import (
	"errors"
	"testing"
)

// mustGrid builds a BoolGrid from rows of '#' (wall) and '.' (open).
// Row 0 is grid row y=0.
func mustGrid(t *testing.T, rows ...string) BoolGrid {
	t.Helper()
	cells := make([][]bool, len(rows))
	for y, r := range rows {
		row := make([]bool, len(r))
		for x, c := range r {
			row[x] = c == '#'
		}
		cells[y] = row
	}
	g, err := NewBoolGrid(cells)
	if err != nil {
		t.Fatalf("NewBoolGrid failed: %v", err)
	}
	return g
}

func TestNewBoolGrid_Ragged(t *testing.T) {
	_, err := NewBoolGrid([][]bool{{true, true}, {true}})
	if !errors.Is(err, ErrRaggedGrid) {
		t.Errorf("expected ErrRaggedGrid, got %v", err)
	}
}

func TestNewBoolGrid_TooSmall(t *testing.T) {
	_, err := NewBoolGrid([][]bool{{true, true}})
	if !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("expected ErrGridTooSmall for 1 row, got %v", err)
	}

	_, err = NewBoolGrid([][]bool{{true}, {true}})
	if !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("expected ErrGridTooSmall for width 1, got %v", err)
	}
}

func TestBuildLattice_SquareCount(t *testing.T) {
	g := mustGrid(t,
		"....",
		"....",
		"....",
	)
	lat := buildLattice(g, 1)
	if len(lat.squares) != 6 {
		t.Errorf("expected 6 squares for 4x3 grid, got %d", len(lat.squares))
	}
}

func TestBuildLattice_Degenerate(t *testing.T) {
	// The lattice builder itself tolerates sub-2x2 grids; only Generate
	// rejects them.
	lat := buildLattice(BoolGrid{{true, false, true}}, 1)
	if len(lat.squares) != 0 {
		t.Errorf("expected 0 squares for 3x1 grid, got %d", len(lat.squares))
	}
}

func TestBuildLattice_CenteredAtOrigin(t *testing.T) {
	g := mustGrid(t,
		"..",
		"..",
	)
	lat := buildLattice(g, 2)

	// 2x2 grid with cell size 2: extent 4, corner (0,0) at -2+0+1 = -1.
	p := lat.pos[lat.corner(0, 0)]
	if p.X != -1 || p.Y != 0 || p.Z != -1 {
		t.Errorf("corner (0,0) at %+v, expected (-1,0,-1)", p)
	}
	q := lat.pos[lat.corner(1, 1)]
	if q.X != 1 || q.Z != 1 {
		t.Errorf("corner (1,1) at %+v, expected (1,0,1)", q)
	}
}

func TestBuildLattice_MidpointOffsets(t *testing.T) {
	g := mustGrid(t,
		"..",
		"..",
	)
	lat := buildLattice(g, 2)

	c := lat.pos[lat.corner(0, 0)]
	above := lat.pos[lat.above(0, 0)]
	right := lat.pos[lat.right(0, 0)]

	if above.X != c.X || above.Z != c.Z+1 {
		t.Errorf("above midpoint at %+v for corner %+v", above, c)
	}
	if right.X != c.X+1 || right.Z != c.Z {
		t.Errorf("right midpoint at %+v for corner %+v", right, c)
	}
}

func TestBuildLattice_NeighborSquaresShareNodes(t *testing.T) {
	g := mustGrid(t,
		"...",
		"...",
		"...",
	)
	lat := buildLattice(g, 1)

	// 2x2 squares, row-major. Horizontal neighbors share a corner pair and
	// the midpoint between them.
	left := lat.squares[0]  // bottom-left control node (0,0)
	right := lat.squares[1] // bottom-left control node (1,0)

	if left.nodes[topRight] != right.nodes[topLeft] {
		t.Error("horizontal neighbors must share the top corner")
	}
	if left.nodes[bottomRight] != right.nodes[bottomLeft] {
		t.Error("horizontal neighbors must share the bottom corner")
	}
	if left.nodes[centreRight] != right.nodes[centreLeft] {
		t.Error("horizontal neighbors must share the midpoint between them")
	}

	// Vertical neighbors likewise.
	lower := lat.squares[0] // (0,0)
	upper := lat.squares[2] // (0,1)
	if lower.nodes[topLeft] != upper.nodes[bottomLeft] ||
		lower.nodes[topRight] != upper.nodes[bottomRight] {
		t.Error("vertical neighbors must share corners")
	}
	if lower.nodes[centreTop] != upper.nodes[centreBottom] {
		t.Error("vertical neighbors must share the midpoint between them")
	}
}

func TestSquareConfiguration(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"all open", []string{"..", ".."}, 0},
		{"all wall", []string{"##", "##"}, 15},
		// Row 0 is the bottom of the square (y=0), row 1 the top.
		{"bottom left only", []string{"#.", ".."}, 1},
		{"bottom right only", []string{".#", ".."}, 2},
		{"top right only", []string{"..", ".#"}, 4},
		{"top left only", []string{"..", "#."}, 8},
		{"bottom edge", []string{"##", ".."}, 3},
		{"top edge", []string{"..", "##"}, 12},
		{"saddle", []string{"#.", ".#"}, 5},
		{"anti-saddle", []string{".#", "#."}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat := buildLattice(mustGrid(t, tt.rows...), 1)
			if len(lat.squares) != 1 {
				t.Fatalf("expected 1 square, got %d", len(lat.squares))
			}
			if got := lat.squares[0].config; got != tt.want {
				t.Errorf("configuration = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPointTable_Shape(t *testing.T) {
	wantLen := map[int]int{
		0: 0,
		1: 3, 2: 3, 4: 3, 8: 3,
		3: 4, 6: 4, 9: 4, 12: 4, 15: 4,
		5: 6, 10: 6,
		7: 5, 11: 5, 13: 5, 14: 5,
	}
	for cfg := 0; cfg < 16; cfg++ {
		if got := len(pointTable[cfg]); got != wantLen[cfg] {
			t.Errorf("config %d: %d points, want %d", cfg, got, wantLen[cfg])
		}
	}
}
