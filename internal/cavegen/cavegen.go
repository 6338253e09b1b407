// Package cavegen produces random cave occupancy grids with cellular
// automata: random fill, neighbor-count smoothing, then flood-fill culling
// of regions too small to matter.
package cavegen

import (
	"fmt"
	"math/rand"
	"time"
)

// Cell values in the produced grid.
const (
	Wall = true
	Open = false
)

// Config controls generation.
type Config struct {
	Width, Height int

	// FillPercent is the chance (0-100) that a cell starts as wall.
	FillPercent int

	// SmoothSteps is the number of automaton passes. Each pass turns a cell
	// into wall when more than 4 of its 8 neighbors are walls, open when
	// fewer than 4 are.
	SmoothSteps int

	// BorderWalls forces the outermost cells to wall before smoothing.
	BorderWalls bool

	// MinRegionSize culls connected wall or open regions with fewer cells
	// than this, so the map has no specks. 0 disables culling.
	MinRegionSize int

	Seed int64 // 0 picks a time-based seed
}

type point struct {
	x, y int
}

// Generate creates a cave grid. Deterministic for a fixed non-zero seed.
func Generate(cfg Config) ([][]bool, error) {
	if cfg.Width < 2 || cfg.Height < 2 {
		return nil, fmt.Errorf("cave must be at least 2x2, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FillPercent < 0 || cfg.FillPercent > 100 {
		return nil, fmt.Errorf("fill percent must be 0-100, got %d", cfg.FillPercent)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := make([][]bool, cfg.Height)
	for y := range grid {
		grid[y] = make([]bool, cfg.Width)
		for x := range grid[y] {
			if cfg.BorderWalls && (x == 0 || y == 0 || x == cfg.Width-1 || y == cfg.Height-1) {
				grid[y][x] = Wall
				continue
			}
			grid[y][x] = rng.Intn(100) < cfg.FillPercent
		}
	}

	for i := 0; i < cfg.SmoothSteps; i++ {
		grid = smooth(grid, cfg.BorderWalls)
	}

	if cfg.MinRegionSize > 0 {
		cullRegions(grid, Wall, cfg.MinRegionSize)
		cullRegions(grid, Open, cfg.MinRegionSize)
	}
	return grid, nil
}

// smooth runs one automaton pass over a copy of the grid, so every cell is
// judged against the same generation.
func smooth(grid [][]bool, borderWalls bool) [][]bool {
	h := len(grid)
	w := len(grid[0])
	next := make([][]bool, h)
	for y := range next {
		next[y] = make([]bool, w)
		for x := range next[y] {
			if borderWalls && (x == 0 || y == 0 || x == w-1 || y == h-1) {
				next[y][x] = Wall
				continue
			}
			switch n := wallNeighbors(grid, x, y); {
			case n > 4:
				next[y][x] = Wall
			case n < 4:
				next[y][x] = Open
			default:
				next[y][x] = grid[y][x]
			}
		}
	}
	return next
}

// wallNeighbors counts walls among the 8 surrounding cells; cells beyond the
// grid count as walls so the map closes toward its edges.
func wallNeighbors(grid [][]bool, cx, cy int) int {
	h := len(grid)
	w := len(grid[0])
	n := 0
	for y := cy - 1; y <= cy+1; y++ {
		for x := cx - 1; x <= cx+1; x++ {
			if x == cx && y == cy {
				continue
			}
			if x < 0 || y < 0 || x >= w || y >= h || grid[y][x] {
				n++
			}
		}
	}
	return n
}

// cullRegions flips every 4-connected region of value cells smaller than
// minSize to the opposite value.
func cullRegions(grid [][]bool, value bool, minSize int) {
	h := len(grid)
	w := len(grid[0])
	visited := make([]bool, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y*w+x] || grid[y][x] != value {
				continue
			}
			region := floodFill(grid, visited, x, y)
			if len(region) < minSize {
				for _, p := range region {
					grid[p.y][p.x] = !value
				}
			}
		}
	}
}

// floodFill collects the 4-connected region containing (sx, sy), marking it
// visited. Iterative on an explicit stack.
func floodFill(grid [][]bool, visited []bool, sx, sy int) []point {
	h := len(grid)
	w := len(grid[0])
	value := grid[sy][sx]

	var region []point
	stack := []point{{sx, sy}}
	visited[sy*w+sx] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, p)

		for _, q := range [4]point{{p.x + 1, p.y}, {p.x - 1, p.y}, {p.x, p.y + 1}, {p.x, p.y - 1}} {
			if q.x < 0 || q.y < 0 || q.x >= w || q.y >= h {
				continue
			}
			if visited[q.y*w+q.x] || grid[q.y][q.x] != value {
				continue
			}
			visited[q.y*w+q.x] = true
			stack = append(stack, q)
		}
	}
	return region
}
