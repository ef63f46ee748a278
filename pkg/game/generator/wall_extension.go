package generator

import (
	"errors"
	"fmt"

	"wallmaze/pkg/engine/random"
	"wallmaze/pkg/engine/world"
)

// Reference maze size. Both are odd so the stride-2 lattice lines up with
// the border on every side.
const (
	DefaultWidth  = 109
	DefaultHeight = 69
)

// strideLength is the distance between two lattice points: every stride
// crosses one doorway cell and lands on the next lattice point.
const strideLength = 2

// ErrNotConverged is returned when a seed point exhausts StepLimit without
// its wall reaching existing structure.
var ErrNotConverged = errors.New("wall extension did not converge")

// WallExtensionGenerator grows walls from every interior lattice point as a
// random walk in 2-cell strides. A walk that reaches existing wall becomes
// permanent; a walk that runs into its own trail is rolled back and retried
// from the same seed. The result is a perfect maze.
type WallExtensionGenerator struct {
	Width  int
	Height int

	// StepLimit caps the strides spent on a single seed point across all of
	// its attempts. Zero leaves the walk unbounded.
	StepLimit int
}

// Name returns the name of this generator
func (g *WallExtensionGenerator) Name() string {
	return "Wall Extension"
}

// Generate carves a new maze, drawing walk directions from src.
// With StepLimit unset it only fails on invalid dimensions.
func (g *WallExtensionGenerator) Generate(src random.Source) (*world.Grid, error) {
	if err := world.CheckDimensions(g.Width, g.Height); err != nil {
		return nil, err
	}

	grid := world.NewGrid(g.Width, g.Height)
	grid.BuildPerimeter()

	for row := 2; row <= g.Height-3; row += strideLength {
		for col := 2; col <= g.Width-3; col += strideLength {
			if err := g.extendFrom(grid, src, row, col); err != nil {
				return nil, err
			}
		}
	}

	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("generated invalid grid: %w", err)
	}

	return grid, nil
}

// extendFrom retries carve attempts from one seed point until one of them
// is established.
func (g *WallExtensionGenerator) extendFrom(grid *world.Grid, src random.Source, row, col int) error {
	steps := 0
	for {
		if grid.At(row, col) == world.Wall {
			return nil
		}

		established, err := g.walk(grid, src, row, col, &steps)
		if err != nil {
			return err
		}
		if established {
			return nil
		}
	}
}

// walk runs one carve attempt. It returns true once the trail has been
// turned into wall and false when the trail hit itself and was reverted.
func (g *WallExtensionGenerator) walk(grid *world.Grid, src random.Source, seedRow, seedCol int, steps *int) (bool, error) {
	grid.Set(seedRow, seedCol, world.TempWall)

	var trail []world.Direction
	row, col := seedRow, seedCol

	for {
		if g.StepLimit > 0 && *steps >= g.StepLimit {
			replayTrail(grid, seedRow, seedCol, trail, world.Space)
			return false, fmt.Errorf("%w: seed (%d,%d) after %d strides", ErrNotConverged, seedRow, seedCol, *steps)
		}
		*steps++

		dir := world.DirectionFromSample(src.Float64())
		trail = append(trail, dir)

		rowDelta, colDelta := dir.Stride(strideLength)
		nextRow, nextCol := row+rowDelta, col+colDelta

		switch grid.At(nextRow, nextCol) {
		case world.Wall:
			replayTrail(grid, seedRow, seedCol, trail, world.Wall)
			return true, nil
		case world.TempWall:
			replayTrail(grid, seedRow, seedCol, trail, world.Space)
			return false, nil
		default:
			grid.Set(nextRow, nextCol, world.TempWall)
			row, col = nextRow, nextCol
		}
	}
}

// replayTrail walks the recorded directions again from the seed and writes
// value into the seed, every doorway cell and every stride endpoint.
// Wall confirms the trail, Space reverts it.
func replayTrail(grid *world.Grid, row, col int, trail []world.Direction, value world.Cell) {
	grid.Set(row, col, value)
	for _, dir := range trail {
		rowDelta, colDelta := dir.Delta()
		grid.Set(row+rowDelta, col+colDelta, value)
		row += rowDelta * strideLength
		col += colDelta * strideLength
		grid.Set(row, col, value)
	}
}
