// Package connectivity checks the structural properties of a finished maze:
// all open cells reachable from each other, no loops, and walls that hang
// off the border as a forest.
package connectivity

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"wallmaze/pkg/engine/world"
)

var (
	ErrDisconnected  = errors.New("space cells are not connected")
	ErrNotPerfect    = errors.New("space cells contain a loop")
	ErrLatticeBroken = errors.New("wall lattice is malformed")
)

// Grid is the read-only view the checks need.
// Both *world.Grid and *maze.Maze satisfy it.
type Grid interface {
	Width() int
	Height() int
	At(row, col int) world.Cell
}

// Report summarises the structure of a grid
type Report struct {
	Spaces     int // number of Space cells
	Walls      int // number of Wall cells
	Components int // 4-connected components of Space cells
	Edges      int // adjacent Space pairs
}

// Connected reports whether all Space cells form a single component
func (r Report) Connected() bool {
	return r.Components <= 1
}

// Perfect reports whether the Space cells form a tree: connected and
// exactly one path between any two of them.
func (r Report) Perfect() bool {
	return r.Connected() && (r.Spaces == 0 || r.Edges == r.Spaces-1)
}

// Analyze counts cells, components and edges of g
func Analyze(g Grid) Report {
	r := Report{Components: len(Components(g))}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			switch g.At(row, col) {
			case world.Space:
				r.Spaces++
				if col+1 < g.Width() && g.At(row, col+1) == world.Space {
					r.Edges++
				}
				if row+1 < g.Height() && g.At(row+1, col) == world.Space {
					r.Edges++
				}
			case world.Wall:
				r.Walls++
			}
		}
	}
	return r
}

// Components returns every 4-connected group of Space cells as a list of
// row-major indices, in discovery order.
func Components(g Grid) [][]int {
	visited := mapset.New[int]()
	var comps [][]int

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			idx := row*g.Width() + col
			if g.At(row, col) != world.Space || visited.Has(idx) {
				continue
			}
			comps = append(comps, flood(g, row, col, world.Space, &visited))
		}
	}

	return comps
}

// flood collects every cell holding want that is reachable from (row, col)
// through N/E/S/W steps, marking them in visited.
func flood(g Grid, row, col int, want world.Cell, visited *mapset.Set[int]) []int {
	var comp []int
	q := queue.New[int]()

	start := row*g.Width() + col
	visited.Put(start)
	q.Enqueue(start)

	for !q.Empty() {
		idx := q.Dequeue()
		comp = append(comp, idx)
		r, c := idx/g.Width(), idx%g.Width()

		for _, dir := range world.AllDirections() {
			dr, dc := dir.Delta()
			nr, nc := r+dr, c+dc
			if nr < 0 || nr >= g.Height() || nc < 0 || nc >= g.Width() {
				continue
			}
			next := nr*g.Width() + nc
			if g.At(nr, nc) != want || visited.Has(next) {
				continue
			}
			visited.Put(next)
			q.Enqueue(next)
		}
	}

	return comp
}

// CheckConnected returns ErrDisconnected if some Space cell cannot reach another
func CheckConnected(g Grid) error {
	if n := len(Components(g)); n > 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnected, n)
	}
	return nil
}

// CheckPerfect returns an error unless the Space cells form a tree
func CheckPerfect(g Grid) error {
	r := Analyze(g)
	if !r.Connected() {
		return fmt.Errorf("%w: %d components", ErrDisconnected, r.Components)
	}
	if !r.Perfect() {
		return fmt.Errorf("%w: %d edges for %d cells", ErrNotPerfect, r.Edges, r.Spaces)
	}
	return nil
}

// CheckLattice verifies the layout the stride-2 walk leaves behind: every
// even/even cell is Wall, every odd/odd cell is Space, and every wall is
// connected to the border, so no wall trail floats free of the structure it
// was attached to.
func CheckLattice(g Grid) error {
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			cell := g.At(row, col)
			if row%2 == 0 && col%2 == 0 && cell != world.Wall {
				return fmt.Errorf("%w: lattice point (%d,%d) is %v", ErrLatticeBroken, row, col, cell)
			}
			if row%2 == 1 && col%2 == 1 && cell != world.Space {
				return fmt.Errorf("%w: room cell (%d,%d) is %v", ErrLatticeBroken, row, col, cell)
			}
		}
	}

	visited := mapset.New[int]()
	reached := 0
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			onBorder := row == 0 || col == 0 || row == g.Height()-1 || col == g.Width()-1
			idx := row*g.Width() + col
			if !onBorder || g.At(row, col) != world.Wall || visited.Has(idx) {
				continue
			}
			reached += len(flood(g, row, col, world.Wall, &visited))
		}
	}

	if walls := Analyze(g).Walls; reached != walls {
		return fmt.Errorf("%w: %d of %d walls are detached from the border", ErrLatticeBroken, walls-reached, walls)
	}
	return nil
}
