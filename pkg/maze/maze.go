/*
Package maze is the entry point for hosts that want a finished maze.

A Maze is generated in one synchronous call and is read-only afterwards.
Cells are exposed as one byte per cell in row-major order, with Space = 0
and Wall = 1; the generation-only TempWall tag never crosses this boundary.

	m := maze.New()
	cells := m.Cells()
	wall := cells[row*m.Width()+col] == 1
*/
package maze

import (
	"fmt"

	"wallmaze/pkg/engine/random"
	"wallmaze/pkg/engine/world"
	"wallmaze/pkg/game/generator"
)

// Maze is a finished, immutable maze
type Maze struct {
	grid *world.Grid
}

// Option configures Generate
type Option func(*generator.WallExtensionGenerator)

// WithStepLimit caps the strides spent on each seed point. A generation that
// hits the cap fails with generator.ErrNotConverged instead of returning a
// partially carved maze.
func WithStepLimit(n int) Option {
	return func(g *generator.WallExtensionGenerator) {
		g.StepLimit = n
	}
}

// New generates a maze of the reference size from a time-seeded source
func New() *Maze {
	return NewWithSource(random.NewTimeSeeded())
}

// NewWithSource generates a maze with generator.DefaultGenerator from src
func NewWithSource(src random.Source) *Maze {
	m, err := FromGenerator(generator.DefaultGenerator, src)
	if err != nil {
		panic("Generated invalid maze: " + err.Error())
	}
	return m
}

// Generate builds a maze of the given size. Width and height must be odd
// and at least 5.
func Generate(width, height int, src random.Source, opts ...Option) (*Maze, error) {
	g := &generator.WallExtensionGenerator{Width: width, Height: height}
	for _, opt := range opts {
		opt(g)
	}

	m, err := FromGenerator(g, src)
	if err != nil {
		return nil, fmt.Errorf("generating %dx%d maze: %w", width, height, err)
	}
	return m, nil
}

// FromGenerator runs gen once and wraps the finished grid
func FromGenerator(gen generator.GridGenerator, src random.Source) (*Maze, error) {
	grid, err := gen.Generate(src)
	if err != nil {
		return nil, err
	}
	return &Maze{grid: grid}, nil
}

// Width returns the number of columns
func (m *Maze) Width() int {
	return m.grid.Width()
}

// Height returns the number of rows
func (m *Maze) Height() int {
	return m.grid.Height()
}

// Cells returns a copy of the cell buffer, indexed by row*Width()+col
func (m *Maze) Cells() []byte {
	return m.grid.Bytes()
}

// At returns the cell at the given position; positions outside the maze read as Wall
func (m *Maze) At(row, col int) world.Cell {
	return m.grid.At(row, col)
}

// IsWall reports whether the cell at the given position blocks movement
func (m *Maze) IsWall(row, col int) bool {
	return m.At(row, col) == world.Wall
}

// ForEachCell iterates over all cells in row-major order
func (m *Maze) ForEachCell(fn func(row, col int, cell world.Cell)) {
	m.grid.ForEachCell(fn)
}

// Equal reports whether two mazes have identical layouts
func (m *Maze) Equal(other *Maze) bool {
	return other != nil && m.grid.Equal(other.grid)
}

// String renders the maze one rune per cell
func (m *Maze) String() string {
	return m.grid.String()
}
