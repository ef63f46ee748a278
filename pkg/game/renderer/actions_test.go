package renderer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallmaze/pkg/engine/input"
	"wallmaze/pkg/engine/random"
	"wallmaze/pkg/game/locale"
	"wallmaze/pkg/game/state"
	"wallmaze/pkg/maze"
)

func newSession(t *testing.T) *state.Session {
	t.Helper()
	require.NoError(t, locale.SetLanguage("en"))

	seed := int64(0)
	s, err := state.NewSession(func() (*maze.Maze, error) {
		seed++
		return maze.Generate(21, 15, random.NewSeeded(seed))
	})
	require.NoError(t, err)
	return s
}

func TestApply_Quit(t *testing.T) {
	s := newSession(t)
	assert.True(t, Apply(s, input.ActionQuit, 5, 5))
	assert.Empty(t, s.Messages)
}

func TestApply_Regenerate(t *testing.T) {
	s := newSession(t)
	first := s.Maze
	s.AddMessage("old news")

	assert.False(t, Apply(s, input.ActionRegenerate, 5, 5))
	assert.Equal(t, 2, s.Generation)
	assert.NotSame(t, first, s.Maze)
	assert.Equal(t, []string{locale.Get("MAZE_REGENERATED")}, s.Messages)
}

func TestApply_RegenerateFailureKeepsMaze(t *testing.T) {
	calls := 0
	s, err := state.NewSession(func() (*maze.Maze, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("boom")
		}
		return maze.Generate(7, 7, random.NewSeeded(1))
	})
	require.NoError(t, err)
	first := s.Maze

	assert.False(t, Apply(s, input.ActionRegenerate, 5, 5))
	assert.Same(t, first, s.Maze)
	require.Len(t, s.Messages, 1)
	assert.Contains(t, s.Messages[0], "boom")
}

func TestApply_Scroll(t *testing.T) {
	s := newSession(t)

	Apply(s, input.ActionScrollDown, 5, 5)
	Apply(s, input.ActionScrollRight, 5, 5)
	assert.Equal(t, PanStep, s.ViewRow)
	assert.Equal(t, PanStep, s.ViewCol)

	Apply(s, input.ActionScrollUp, 5, 5)
	Apply(s, input.ActionScrollLeft, 5, 5)
	Apply(s, input.ActionScrollLeft, 5, 5)
	assert.Equal(t, 0, s.ViewRow)
	assert.Equal(t, 0, s.ViewCol)
}

func TestApply_Unknown(t *testing.T) {
	s := newSession(t)
	assert.False(t, Apply(s, input.ActionNone, 5, 5))
	assert.Equal(t, []string{locale.Get("UNKNOWN_KEY")}, s.Messages)
}

func TestRun_NoRenderer(t *testing.T) {
	SetRenderer(nil)
	assert.ErrorIs(t, Run(nil), ErrNoRenderer)
}

func TestApply_Dump(t *testing.T) {
	s := newSession(t)
	dir := t.TempDir()
	t.Chdir(dir)

	assert.False(t, Apply(s, input.ActionDump, 5, 5))

	path := filepath.Join(dir, "map.txt")
	require.FileExists(t, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), s.Maze.String())
	assert.Equal(t, []string{locale.Get("MAZE_DUMPED", path)}, s.Messages)
}

func TestStatusLine(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, "Maze #1 (21x15)", StatusLine(s))

	s.AddMessage("first")
	s.AddMessage("second")
	assert.Equal(t, "Maze #1 (21x15) - second", StatusLine(s))
}

func TestStatusLine_ShowsRegenerateFailure(t *testing.T) {
	calls := 0
	s, err := state.NewSession(func() (*maze.Maze, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("step cap")
		}
		return maze.Generate(7, 7, random.NewSeeded(1))
	})
	require.NoError(t, err)
	require.NoError(t, locale.SetLanguage("en"))

	Apply(s, input.ActionRegenerate, 7, 7)
	line := StatusLine(s)
	assert.True(t, strings.HasPrefix(line, "Maze #1 (7x7) - Could not generate a new maze: "), line)
	assert.Contains(t, line, "step cap")
}
