// Package ebiten draws the maze in a window using Ebiten.
package ebiten

const (
	DefaultCellSize = 7
	ticksPerSecond  = 30
)
