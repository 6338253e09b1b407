// Package mapfile reads and writes text occupancy maps.
//
// A map file holds one row of cells per line, '#' for wall and '.' for open.
// Row 0 of the file is row 0 of the grid.
package mapfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Map format errors.
var (
	ErrEmptyMap    = errors.New("empty map")
	ErrRaggedRow   = errors.New("ragged row: all rows must have equal width")
	ErrBadCell     = errors.New("unknown cell character")
	ErrMapTooSmall = errors.New("map must be at least 2x2")
)

// Cell characters.
const (
	CellWall = '#'
	CellOpen = '.'
)

// Map is a rectangular occupancy grid loaded from a map file.
type Map struct {
	width  int
	height int
	walls  []bool
}

// New creates a map of the given size with all cells open.
// Returns an error if either dimension is below 2.
func New(width, height int) (*Map, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrMapTooSmall, width, height)
	}
	return &Map{
		width:  width,
		height: height,
		walls:  make([]bool, width*height),
	}, nil
}

// Size returns the grid dimensions.
func (m *Map) Size() (w, h int) {
	return m.width, m.height
}

// Wall reports whether the cell at (x, y) is a wall.
// Out-of-bounds cells are treated as walls.
func (m *Map) Wall(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return true
	}
	return m.walls[y*m.width+x]
}

// SetWall sets the wall flag of the cell at (x, y). Out-of-bounds is a no-op.
func (m *Map) SetWall(x, y int, wall bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.walls[y*m.width+x] = wall
}

// CountWalls returns the number of wall cells.
func (m *Map) CountWalls() int {
	n := 0
	for _, w := range m.walls {
		if w {
			n++
		}
	}
	return n
}

// Parse parses a map from raw file bytes.
func Parse(data []byte) (*Map, error) {
	var rows [][]byte
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := bytes.TrimRight(sc.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		row := make([]byte, len(line))
		copy(row, line)
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading map data: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d",
				ErrRaggedRow, i, len(row), width)
		}
	}

	if width < 2 || len(rows) < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrMapTooSmall, width, len(rows))
	}

	m := &Map{
		width:  width,
		height: len(rows),
		walls:  make([]bool, width*len(rows)),
	}
	for y, row := range rows {
		for x, c := range row {
			switch c {
			case CellWall:
				m.walls[y*width+x] = true
			case CellOpen:
				// open is the zero value
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadCell, c, y, x)
			}
		}
	}
	return m, nil
}

// ParseFile parses a map file from disk.
func ParseFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// Write writes the map in text form.
func (m *Map) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := byte(CellOpen)
			if m.walls[y*m.width+x] {
				c = CellWall
			}
			if err := bw.WriteByte(c); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the map to a file on disk.
func (m *Map) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating map file: %w", err)
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing map file: %w", err)
	}
	return f.Close()
}
