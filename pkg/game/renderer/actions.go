// Package renderer defines the rendering backends' common interface and the
// handling of user actions they share.
package renderer

import (
	"errors"

	"wallmaze/pkg/engine/input"
	"wallmaze/pkg/game/devtools"
	"wallmaze/pkg/game/locale"
	"wallmaze/pkg/game/state"
)

var ErrNoRenderer = errors.New("no renderer selected")

// PanStep is how many cells one scroll action moves the viewport
const PanStep = 4

// Apply performs a user action on the session and reports whether the host
// should stop. viewRows and viewCols give the visible window for scrolling.
func Apply(s *state.Session, action input.Action, viewRows, viewCols int) (quit bool) {
	switch action {
	case input.ActionQuit:
		return true
	case input.ActionRegenerate:
		if err := s.Regenerate(); err != nil {
			s.AddMessage(locale.Get("MAZE_REGENERATE_FAILED", err))
			return false
		}
		s.ClearMessages()
		s.AddMessage(locale.Get("MAZE_REGENERATED"))
	case input.ActionDump:
		path, err := devtools.DumpMazeToFile(s.Maze, s.Generation)
		if err != nil {
			s.AddMessage(locale.Get("MAZE_DUMP_FAILED", err))
			return false
		}
		s.AddMessage(locale.Get("MAZE_DUMPED", path))
	case input.ActionScrollUp:
		s.Pan(-PanStep, 0, viewRows, viewCols)
	case input.ActionScrollDown:
		s.Pan(PanStep, 0, viewRows, viewCols)
	case input.ActionScrollLeft:
		s.Pan(0, -PanStep, viewRows, viewCols)
	case input.ActionScrollRight:
		s.Pan(0, PanStep, viewRows, viewCols)
	default:
		s.AddMessage(locale.Get("UNKNOWN_KEY"))
	}
	return false
}

// StatusLine describes the session in one line: the maze number and size,
// followed by the latest message if there is one.
func StatusLine(s *state.Session) string {
	line := locale.Get("MAZE_INFO", s.Generation, s.Maze.Width(), s.Maze.Height())
	if n := len(s.Messages); n > 0 {
		line += " - " + s.Messages[n-1]
	}
	return line
}
