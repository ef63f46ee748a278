// Package generator builds finished maze grids.
package generator

import (
	"wallmaze/pkg/engine/random"
	"wallmaze/pkg/engine/world"
)

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(src random.Source) (*world.Grid, error)
	Name() string
}

// Available generators
var (
	WallExtension = &WallExtensionGenerator{Width: DefaultWidth, Height: DefaultHeight}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = WallExtension
