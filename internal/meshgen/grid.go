// Package meshgen converts a 2D occupancy grid into renderable 3D meshes:
// a marching-squares top surface over the wall cells, vertical wall strips
// along every open/wall boundary loop, and a flat floor slab.
package meshgen

import (
	"errors"
	"fmt"
)

// Input validation errors.
var (
	ErrGridTooSmall  = errors.New("grid must be at least 2x2")
	ErrRaggedGrid    = errors.New("ragged grid: all rows must have equal width")
	ErrBadCellSize   = errors.New("cell size must be positive")
	ErrBadWallHeight = errors.New("wall height must be positive")
)

// Grid is a rectangular occupancy grid. Wall reports whether the cell at
// (x, y) is solid. Implementations must be rectangular: Wall must be defined
// for all 0 <= x < w, 0 <= y < h.
type Grid interface {
	Size() (w, h int)
	Wall(x, y int) bool
}

// BoolGrid adapts a row-major [][]bool to the Grid interface.
// Construct with NewBoolGrid to get rectangularity checking.
type BoolGrid [][]bool

// NewBoolGrid validates that rows form a rectangle of at least 2x2 cells.
func NewBoolGrid(rows [][]bool) (BoolGrid, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: got %d rows", ErrGridTooSmall, len(rows))
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d",
				ErrRaggedGrid, i, len(row), width)
		}
	}
	if width < 2 {
		return nil, fmt.Errorf("%w: got width %d", ErrGridTooSmall, width)
	}
	return BoolGrid(rows), nil
}

// Size returns the grid dimensions.
func (g BoolGrid) Size() (w, h int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g[0]), len(g)
}

// Wall reports whether the cell at (x, y) is solid.
func (g BoolGrid) Wall(x, y int) bool {
	return g[y][x]
}
