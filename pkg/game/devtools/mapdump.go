// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"wallmaze/pkg/engine/world"
	"wallmaze/pkg/game/connectivity"
	"wallmaze/pkg/game/locale"
	"wallmaze/pkg/maze"
)

const mapDumpFilename = "map.txt"

var ErrNoMaze = errors.New("no maze")

// writeMapGrid writes one symbol per cell, one line per row
func writeMapGrid(w io.Writer, m *maze.Maze) {
	for row := 0; row < m.Height(); row++ {
		line := make([]rune, 0, m.Width())
		for col := 0; col < m.Width(); col++ {
			line = append(line, world.Symbol(m.At(row, col)))
		}
		fmt.Fprintln(w, string(line))
	}
}

// checkBorder reports the first border cell that is not a wall
func checkBorder(m *maze.Maze) error {
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			onBorder := row == 0 || col == 0 || row == m.Height()-1 || col == m.Width()-1
			if onBorder && m.At(row, col) != world.Wall {
				return fmt.Errorf("%w: (%d,%d)", world.ErrOpenBorder, row, col)
			}
		}
	}
	return nil
}

// DumpMaze writes a full debug dump of m to w: metadata, legend, the map and
// the result of each structural check. generation numbers the maze within a
// session. The returned error is the first failed check, if any.
func DumpMaze(w io.Writer, m *maze.Maze, generation int) error {
	if m == nil {
		return ErrNoMaze
	}
	report := connectivity.Analyze(m)

	// --- Metadata ---
	fmt.Fprintf(w, "=== %s ===\n", locale.Get("DUMP_HEADER"))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "generation: %d\n", generation)
	fmt.Fprintf(w, "grid_width: %d\n", m.Width())
	fmt.Fprintf(w, "grid_height: %d\n", m.Height())
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(w, "walls: %d\n", report.Walls)
	fmt.Fprintf(w, "spaces: %d\n", report.Spaces)
	fmt.Fprintf(w, "space_components: %d\n", report.Components)
	fmt.Fprintf(w, "space_edges: %d\n", report.Edges)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintf(w, "%c = %s  %c = %s\n",
		world.Symbol(world.Wall), locale.Get("LEGEND_WALL"),
		world.Symbol(world.Space), locale.Get("LEGEND_SPACE"))
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, m)
	fmt.Fprintln(w, "")

	// --- Checks ---
	fmt.Fprintln(w, "--- Checks ---")
	checks := []struct {
		name string
		err  error
	}{
		{"border", checkBorder(m)},
		{"connected", connectivity.CheckConnected(m)},
		{"perfect", connectivity.CheckPerfect(m)},
		{"lattice", connectivity.CheckLattice(m)},
	}
	var first error
	for _, c := range checks {
		if c.err != nil {
			fmt.Fprintf(w, "%s: FAIL (%v)\n", c.name, c.err)
			if first == nil {
				first = c.err
			}
			continue
		}
		fmt.Fprintf(w, "%s: ok\n", c.name)
	}
	return first
}

// DumpMazeToFile writes DumpMaze output to map.txt in the working directory
// and returns its absolute path.
func DumpMazeToFile(m *maze.Maze, generation int) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMaze(f, m, generation); err != nil {
		return absPath, err
	}
	return absPath, nil
}
