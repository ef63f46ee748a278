// Package generator tests wall-extension maze generation: border, markers,
// lattice layout, connectivity, determinism and the optional step cap.
package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallmaze/pkg/engine/random"
	"wallmaze/pkg/engine/world"
	"wallmaze/pkg/game/connectivity"
)

func generate(t *testing.T, width, height int, src random.Source) *world.Grid {
	t.Helper()
	g := &WallExtensionGenerator{Width: width, Height: height}
	grid, err := g.Generate(src)
	require.NoError(t, err)
	require.NotNil(t, grid)
	return grid
}

func TestDefaultGenerator_ReferenceSize(t *testing.T) {
	grid, err := DefaultGenerator.Generate(random.NewSeeded(1))
	require.NoError(t, err)
	assert.Equal(t, 109, grid.Width())
	assert.Equal(t, 69, grid.Height())
	assert.Len(t, grid.Bytes(), 109*69)
	assert.Equal(t, "Wall Extension", DefaultGenerator.Name())
}

func TestGenerate_Properties(t *testing.T) {
	sizes := [][2]int{{5, 5}, {7, 5}, {9, 9}, {21, 11}, {109, 69}}

	for _, size := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			grid := generate(t, size[0], size[1], random.NewSeeded(seed))

			grid.ForEachCell(func(row, col int, cell world.Cell) {
				if grid.IsOnPerimeter(row, col) {
					require.Equal(t, world.Wall, cell, "border (%d,%d) size %v seed %d", row, col, size, seed)
				}
				require.NotEqual(t, world.TempWall, cell, "marker left at (%d,%d) size %v seed %d", row, col, size, seed)
			})

			require.NoError(t, connectivity.CheckLattice(grid), "size %v seed %d", size, seed)
			require.NoError(t, connectivity.CheckConnected(grid), "size %v seed %d", size, seed)
			require.NoError(t, connectivity.CheckPerfect(grid), "size %v seed %d", size, seed)
		}
	}
}

func TestGenerate_MinimalGrid(t *testing.T) {
	// The only seed is (2,2) and any stride from it lands on the border.
	expected := map[float64]string{
		0.1: "#####\n#.#.#\n#.#.#\n#...#\n#####\n",
		0.4: "#####\n#...#\n#.###\n#...#\n#####\n",
		0.6: "#####\n#...#\n#.#.#\n#.#.#\n#####\n",
		0.9: "#####\n#...#\n###.#\n#...#\n#####\n",
	}

	for sample, want := range expected {
		counter := random.NewCounter(random.NewReplay(sample))
		grid := generate(t, 5, 5, counter)

		assert.Equal(t, want, grid.String(), "sample %v", sample)
		assert.Equal(t, world.Wall, grid.At(2, 2))
		assert.Equal(t, int64(1), counter.Calls(), "one stride resolves the only seed")
	}
}

func TestGenerate_RevertAndRetry(t *testing.T) {
	// Seed (2,2) walks South, East, North, then West back onto itself and
	// is rolled back; the retry goes North into the border. The other three
	// seeds reach the border in one stride each.
	src := random.NewCounter(random.NewReplay(0.6, 0.3, 0.1, 0.9, 0.1, 0.3, 0.9, 0.6))
	grid := generate(t, 7, 7, src)

	want := "" +
		"#######\n" +
		"#.#...#\n" +
		"#.#.###\n" +
		"#.....#\n" +
		"###.#.#\n" +
		"#...#.#\n" +
		"#######\n"
	assert.Equal(t, want, grid.String())
	assert.Equal(t, int64(8), src.Calls())
}

func TestGenerate_DeterministicUnderReplay(t *testing.T) {
	rec := random.NewRecorder(random.NewSeeded(99))
	first := generate(t, 41, 31, rec)

	second := generate(t, 41, 31, rec.Replay())
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestGenerate_IndependentBuffers(t *testing.T) {
	g := &WallExtensionGenerator{Width: 21, Height: 21}
	src := random.NewSeeded(3)

	first, err := g.Generate(src)
	require.NoError(t, err)
	snapshot := first.Bytes()

	_, err = g.Generate(src)
	require.NoError(t, err)
	assert.Equal(t, snapshot, first.Bytes(), "a later generation must not touch an earlier grid")
}

func TestGenerate_InvalidDimensions(t *testing.T) {
	for _, size := range [][2]int{{3, 3}, {6, 5}, {5, 10}, {0, 7}} {
		g := &WallExtensionGenerator{Width: size[0], Height: size[1]}
		grid, err := g.Generate(random.NewSeeded(1))
		assert.ErrorIs(t, err, world.ErrInvalidDimensions, "size %v", size)
		assert.Nil(t, grid)
	}
}

func TestGenerate_StepLimit(t *testing.T) {
	// South then North forever: every attempt from (2,2) folds back onto
	// its own seed and is reverted.
	g := &WallExtensionGenerator{Width: 9, Height: 9, StepLimit: 50}
	grid, err := g.Generate(random.NewReplay(0.6, 0.1))

	assert.ErrorIs(t, err, ErrNotConverged)
	assert.Nil(t, grid)
}

func TestGenerate_StepLimitNotReached(t *testing.T) {
	g := &WallExtensionGenerator{Width: 21, Height: 15, StepLimit: 1_000_000}
	grid, err := g.Generate(random.NewSeeded(5))
	require.NoError(t, err)
	assert.NoError(t, connectivity.CheckPerfect(grid))
}

func TestReplayTrail_ConfirmAndRevertAreSymmetric(t *testing.T) {
	grid := world.NewGrid(9, 9)
	grid.BuildPerimeter()
	before := grid.Bytes()
	walls := func() int {
		n := 0
		for _, c := range grid.Bytes() {
			if world.Cell(c) == world.Wall {
				n++
			}
		}
		return n
	}
	wallsBefore := walls()

	trail := []world.Direction{world.South, world.East, world.East}
	replayTrail(grid, 2, 2, trail, world.Wall)

	for _, pos := range [][2]int{{2, 2}, {3, 2}, {4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6}} {
		assert.Equal(t, world.Wall, grid.At(pos[0], pos[1]), "pos %v", pos)
	}
	assert.Equal(t, wallsBefore+7, walls())

	replayTrail(grid, 2, 2, trail, world.Space)
	assert.Equal(t, before, grid.Bytes())
}
