package world

import (
	"errors"
	"fmt"
	"strings"
)

// MinDimension is the smallest width or height a maze grid can have:
// a border ring around a single interior lattice point.
const MinDimension = 5

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be odd and at least 5")
	ErrResidualTempWall  = errors.New("grid contains a temporary wall")
	ErrOpenBorder        = errors.New("grid border is not fully walled")
	ErrUnknownCell       = errors.New("grid contains an unknown cell tag")
)

// Grid is a rectangular cell buffer stored row-major: the cell at (row, col)
// lives at index row*width + col, origin top-left.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// CheckDimensions reports whether width x height can hold a stride-2 lattice
// that lines up with the border.
func CheckDimensions(width, height int) error {
	if width < MinDimension || height < MinDimension || width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// NewGrid creates a grid with every cell set to Space
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Index returns the buffer index of a row/col position
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// Position converts a buffer index back to a row/col position
func (g *Grid) Position(idx int) (row, col int) {
	return idx / g.width, idx % g.width
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// IsPlayablePosition checks if a position is inside the 1-cell border ring
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.height-1 && col >= 1 && col < g.width-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

// At returns the cell at the given position.
// Positions outside the grid read as Wall.
func (g *Grid) At(row, col int) Cell {
	if !g.IsValidPosition(row, col) {
		return Wall
	}
	return g.cells[g.Index(row, col)]
}

// Set stores a cell at the given position. Returns false if out of bounds.
func (g *Grid) Set(row, col int, c Cell) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	g.cells[g.Index(row, col)] = c
	return true
}

// BuildPerimeter turns every border cell into a Wall
func (g *Grid) BuildPerimeter() {
	for col := 0; col < g.width; col++ {
		g.Set(0, col, Wall)
		g.Set(g.height-1, col, Wall)
	}
	for row := 0; row < g.height; row++ {
		g.Set(row, 0, Wall)
		g.Set(row, g.width-1, Wall)
	}
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell Cell)) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			fn(row, col, g.cells[g.Index(row, col)])
		}
	}
}

// Bytes returns a copy of the cell buffer encoded one byte per cell
func (g *Grid) Bytes() []byte {
	out := make([]byte, len(g.cells))
	for i, c := range g.cells {
		out[i] = byte(c)
	}
	return out
}

// Equal reports whether both grids have the same dimensions and contents
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Validate checks that the grid is a finished maze: a closed border and no
// generation-only markers.
func (g *Grid) Validate() error {
	if g.width <= 0 || g.height <= 0 || len(g.cells) != g.width*g.height {
		return fmt.Errorf("%w: buffer of %d cells for %dx%d", ErrInvalidDimensions, len(g.cells), g.width, g.height)
	}

	for i, c := range g.cells {
		row, col := g.Position(i)
		switch {
		case !c.IsValid():
			return fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownCell, c, row, col)
		case c == TempWall:
			return fmt.Errorf("%w at (%d,%d)", ErrResidualTempWall, row, col)
		case c != Wall && g.IsOnPerimeter(row, col):
			return fmt.Errorf("%w at (%d,%d)", ErrOpenBorder, row, col)
		}
	}

	return nil
}

// Symbol returns the single rune used for a cell in text output
func Symbol(c Cell) rune {
	switch c {
	case Wall:
		return '#'
	case TempWall:
		return '+'
	case Space:
		return '.'
	default:
		return '?'
	}
}

// String renders the grid one rune per cell, one line per row
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			b.WriteRune(Symbol(g.cells[g.Index(row, col)]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
