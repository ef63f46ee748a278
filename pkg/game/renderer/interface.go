package renderer

import (
	"wallmaze/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleSpace
	StyleTitle
	StyleAction
	StyleActionShort
	StyleSubtle
)

// Renderer defines the interface for maze rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Name identifies the backend, e.g. "tui"
	Name() string

	// Run shows the session's maze and handles input until the user quits
	Run(s *state.Session) error

	// StyleText applies a style to text and returns the styled string.
	// For TUI this applies ANSI colors, for GUI it may return the text as is.
	StyleText(text string, style TextStyle) string

	// GetViewportSize returns how many maze rows and columns fit on screen
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Run runs the current renderer
func Run(s *state.Session) error {
	if Current == nil {
		return ErrNoRenderer
	}
	return Current.Run(s)
}
