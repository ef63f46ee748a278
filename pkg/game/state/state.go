// Package state holds what a running host knows about the maze it shows.
package state

import (
	"fmt"

	"wallmaze/pkg/maze"
)

const maxMessages = 5

// Builder produces a freshly generated maze
type Builder func() (*maze.Maze, error)

// Session tracks the maze currently on screen and the viewport over it.
// A regenerated maze replaces the previous instance; instances are never
// mutated in place.
type Session struct {
	Maze       *maze.Maze
	Generation int // number of mazes built in this session

	Messages []string

	// Top-left corner of the visible window, for renderers that cannot show
	// the whole maze at once.
	ViewRow int
	ViewCol int

	build Builder
}

// NewSession builds the first maze with build
func NewSession(build Builder) (*Session, error) {
	s := &Session{
		Messages: make([]string, 0),
		build:    build,
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate replaces the current maze with a new one.
// On failure the current maze stays on screen.
func (s *Session) Regenerate() error {
	m, err := s.build()
	if err != nil {
		return fmt.Errorf("building maze %d: %w", s.Generation+1, err)
	}
	s.Maze = m
	s.Generation++
	s.ViewRow, s.ViewCol = 0, 0
	return nil
}

// Pan moves the viewport by the given offsets, keeping a window of
// viewRows x viewCols inside the maze.
func (s *Session) Pan(rowDelta, colDelta, viewRows, viewCols int) {
	s.ViewRow = clamp(s.ViewRow+rowDelta, 0, s.Maze.Height()-viewRows)
	s.ViewCol = clamp(s.ViewCol+colDelta, 0, s.Maze.Width()-viewCols)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
