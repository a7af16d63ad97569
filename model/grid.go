package model

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	// Dead is the glyph stored for a dead cell
	Dead byte = ' '
	// DefaultParticle is the glyph stored for a live cell unless configured otherwise
	DefaultParticle byte = '*'
)

// Grid is a fixed size rectangle of character cells, indexed as cells[row][col]
type Grid struct {
	height int
	width  int
	cells  [][]byte
}

// New creates a height x width grid with every cell dead
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[New] %dx%d", height, width)
	}
	g := &Grid{}
	g.Reset(height, width)
	return g, nil
}

// FromRows wraps prepared rows without copying them.
// The caller guarantees that every row has the same length.
func FromRows(rows [][]byte) *Grid {
	g := &Grid{height: len(rows), cells: rows}
	if len(rows) > 0 {
		g.width = len(rows[0])
	}
	return g
}

// Embed places src inside a new blank height x width grid according to align.
// Source cells that land outside the destination are dropped.
func Embed(height, width int, src *Grid, align Alignment) (*Grid, error) {
	dst, err := New(height, width)
	if err != nil {
		return nil, errors.Wrap(err, "[Embed] failed to allocate destination")
	}

	startRow, startCol := align.offset(height, width, src.height, src.width)
	for r := range src.height {
		dr := startRow + r
		if dr < 0 || dr >= height {
			continue
		}
		for c := range src.width {
			dc := startCol + c
			if dc < 0 || dc >= width {
				continue
			}
			dst.cells[dr][dc] = src.cells[r][c]
		}
	}
	return dst, nil
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Reset resizes the grid and marks every cell dead, reusing row storage when it fits
func (g *Grid) Reset(height, width int) {
	g.height = height
	g.width = width

	if cap(g.cells) < height {
		g.cells = make([][]byte, height)
	}
	g.cells = g.cells[:height]
	for i := range g.cells {
		if cap(g.cells[i]) < width {
			g.cells[i] = make([]byte, width)
		}
		g.cells[i] = g.cells[i][:width]
	}
	g.Clear()
}

// Clear marks every cell dead
func (g *Grid) Clear() {
	for _, row := range g.cells {
		for i := range row {
			row[i] = Dead
		}
	}
}

// Row returns the mutable row at index i
func (g *Grid) Row(i int) ([]byte, error) {
	if i < 0 || i >= g.height {
		return nil, errors.Wrapf(ErrIndexOutOfBounds, "[Row] row %d of %d", i, g.height)
	}
	return g.cells[i], nil
}

// At returns the cell at (row, col)
func (g *Grid) At(row, col int) (byte, error) {
	if !g.inBounds(row, col) {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "[At] (%d,%d) in %dx%d", row, col, g.height, g.width)
	}
	return g.cells[row][col], nil
}

// Set stores c at (row, col)
func (g *Grid) Set(row, col int, c byte) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrIndexOutOfBounds, "[Set] (%d,%d) in %dx%d", row, col, g.height, g.width)
	}
	g.cells[row][col] = c
	return nil
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Equal reports whether both grids have the same shape and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.cells {
		if !bytes.Equal(g.cells[i], other.cells[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that shares no storage with g
func (g *Grid) Clone() *Grid {
	rows := make([][]byte, g.height)
	for i, row := range g.cells {
		rows[i] = bytes.Clone(row)
	}
	return &Grid{height: g.height, width: g.width, cells: rows}
}

// ReplaceParticle rewrites every non-dead cell to particle
func (g *Grid) ReplaceParticle(particle byte) {
	for _, row := range g.cells {
		for i, c := range row {
			if c != Dead {
				row[i] = particle
			}
		}
	}
}

// LiveNeighbors counts cells equal to particle among the 8 neighbors of (row, col).
// Neighbors past the grid edges are skipped, not wrapped.
func (g *Grid) LiveNeighbors(row, col int, particle byte) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] == particle {
				count++
			}
		}
	}

	return count
}

// CountAlive returns the number of cells equal to particle
func (g *Grid) CountAlive(particle byte) (count int) {
	for _, row := range g.cells {
		count += bytes.Count(row, []byte{particle})
	}
	return
}

// Hash returns an MD5 digest of the grid contents
func (g *Grid) Hash() string {
	h := md5.New()
	for _, row := range g.cells {
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String returns the rows joined by newlines
func (g *Grid) String() string {
	var sb strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}
