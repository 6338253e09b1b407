package meshgen

import (
	"github.com/cavekit/cavemesh/pkg/math"
)

// nodeRef addresses a node in the lattice arena. Neighboring squares that
// touch the same lattice feature hold the same ref, so vertex deduplication
// falls out of ref equality rather than shared object identity.
type nodeRef int

// Point slots of a square, used by the triangulation table.
const (
	topLeft = iota
	topRight
	bottomRight
	bottomLeft
	centreTop
	centreRight
	centreBottom
	centreLeft
	squarePoints // number of slots
)

// square is one 2x2 block of control nodes plus the four midpoints between
// them. config is the 4-bit marching-squares code, fixed at construction:
// 8*topLeft + 4*topRight + 2*bottomRight + 1*bottomLeft.
type square struct {
	nodes  [squarePoints]nodeRef
	config int
}

// lattice owns every node of the map in three flat arrays of w*h entries:
// one control node per grid cell, plus the midpoint node "above" it (+Z) and
// the one to its "right" (+X). Midpoints half a cell beyond the last row and
// column are allocated but never referenced by any square.
type lattice struct {
	w, h    int
	pos     []math.Vec3 // 3*w*h positions, indexed by nodeRef
	active  []bool      // w*h control-node flags
	squares []square    // (w-1)*(h-1), row-major
}

func (l *lattice) corner(x, y int) nodeRef { return nodeRef(y*l.w + x) }
func (l *lattice) above(x, y int) nodeRef  { return nodeRef(l.w*l.h + y*l.w + x) }
func (l *lattice) right(x, y int) nodeRef  { return nodeRef(2*l.w*l.h + y*l.w + x) }

// buildLattice lays out control nodes centered at the origin on the XZ plane
// and derives one square per 2x2 block of control nodes. A grid smaller than
// 2x2 yields zero squares; callers that consider that an error must validate
// before calling.
func buildLattice(grid Grid, cellSize float32) *lattice {
	w, h := grid.Size()
	l := &lattice{
		w:      w,
		h:      h,
		pos:    make([]math.Vec3, 3*w*h),
		active: make([]bool, w*h),
	}

	halfW := float32(w) * cellSize / 2
	halfH := float32(h) * cellSize / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := math.Vec3{
				X: -halfW + float32(x)*cellSize + cellSize/2,
				Y: 0,
				Z: -halfH + float32(y)*cellSize + cellSize/2,
			}
			l.pos[l.corner(x, y)] = p
			l.pos[l.above(x, y)] = math.Vec3{X: p.X, Y: 0, Z: p.Z + cellSize/2}
			l.pos[l.right(x, y)] = math.Vec3{X: p.X + cellSize/2, Y: 0, Z: p.Z}
			l.active[l.corner(x, y)] = grid.Wall(x, y)
		}
	}

	if w < 2 || h < 2 {
		return l
	}

	l.squares = make([]square, 0, (w-1)*(h-1))
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			l.squares = append(l.squares, l.makeSquare(x, y))
		}
	}
	return l
}

// makeSquare assembles the square whose bottom-left control node is (x, y).
// "Top" is the +Z row; midpoints are borrowed from the control nodes that own
// them, never duplicated.
func (l *lattice) makeSquare(x, y int) square {
	var s square
	s.nodes[topLeft] = l.corner(x, y+1)
	s.nodes[topRight] = l.corner(x+1, y+1)
	s.nodes[bottomRight] = l.corner(x+1, y)
	s.nodes[bottomLeft] = l.corner(x, y)
	s.nodes[centreTop] = l.right(x, y+1)
	s.nodes[centreRight] = l.above(x+1, y)
	s.nodes[centreBottom] = l.right(x, y)
	s.nodes[centreLeft] = l.above(x, y)

	if l.active[s.nodes[topLeft]] {
		s.config |= 8
	}
	if l.active[s.nodes[topRight]] {
		s.config |= 4
	}
	if l.active[s.nodes[bottomRight]] {
		s.config |= 2
	}
	if l.active[s.nodes[bottomLeft]] {
		s.config |= 1
	}
	return s
}
