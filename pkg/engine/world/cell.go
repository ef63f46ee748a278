// Package world provides the grid primitives the maze generator works on:
// cell tags, cardinal directions and a flat row-major cell buffer.
package world

// Cell is the tag stored in every grid position.
// The numeric values are part of the read interface handed to renderers.
type Cell byte

// Cell tags
const (
	Space    Cell = 0 // passable
	Wall     Cell = 1 // permanent, impassable
	TempWall Cell = 2 // in-progress trail marker, only exists during generation
)

// String returns the string representation of a cell tag
func (c Cell) String() string {
	switch c {
	case Space:
		return "Space"
	case Wall:
		return "Wall"
	case TempWall:
		return "TempWall"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the cell holds one of the known tags
func (c Cell) IsValid() bool {
	return c <= TempWall
}

