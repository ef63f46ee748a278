package state

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallmaze/pkg/engine/random"
	"wallmaze/pkg/maze"
)

func seededBuilder(width, height int) Builder {
	var seed int64
	return func() (*maze.Maze, error) {
		seed++
		return maze.Generate(width, height, random.NewSeeded(seed))
	}
}

func TestNewSession_BuildsFirstMaze(t *testing.T) {
	s, err := NewSession(seededBuilder(21, 11))
	require.NoError(t, err)
	require.NotNil(t, s.Maze)
	assert.Equal(t, 1, s.Generation)
	assert.Equal(t, 21, s.Maze.Width())
}

func TestRegenerate_ReplacesInstance(t *testing.T) {
	s, err := NewSession(seededBuilder(21, 11))
	require.NoError(t, err)

	first := s.Maze
	firstCells := first.Cells()

	require.NoError(t, s.Regenerate())
	assert.Equal(t, 2, s.Generation)
	assert.NotSame(t, first, s.Maze)
	assert.Equal(t, firstCells, first.Cells(), "the old maze is left untouched")
}

func TestRegenerate_KeepsMazeOnError(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	s, err := NewSession(func() (*maze.Maze, error) {
		calls++
		if calls > 1 {
			return nil, boom
		}
		return maze.Generate(5, 5, random.NewReplay(0.1))
	})
	require.NoError(t, err)

	kept := s.Maze
	err = s.Regenerate()
	assert.ErrorIs(t, err, boom)
	assert.Same(t, kept, s.Maze)
	assert.Equal(t, 1, s.Generation)
}

func TestNewSession_Error(t *testing.T) {
	_, err := NewSession(func() (*maze.Maze, error) {
		return maze.Generate(4, 4, random.NewSeeded(1))
	})
	assert.Error(t, err)
}

func TestPan_ClampsToMaze(t *testing.T) {
	s, err := NewSession(seededBuilder(21, 11))
	require.NoError(t, err)

	s.Pan(-5, -5, 5, 9)
	assert.Equal(t, 0, s.ViewRow)
	assert.Equal(t, 0, s.ViewCol)

	s.Pan(100, 100, 5, 9)
	assert.Equal(t, 11-5, s.ViewRow)
	assert.Equal(t, 21-9, s.ViewCol)

	// A window larger than the maze pins the view to the origin.
	s.Pan(3, 3, 50, 50)
	assert.Equal(t, 0, s.ViewRow)
	assert.Equal(t, 0, s.ViewCol)
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	s := &Session{}
	for i := 0; i < 8; i++ {
		s.AddMessage(fmt.Sprintf("msg %d", i))
	}
	assert.Equal(t, []string{"msg 3", "msg 4", "msg 5", "msg 6", "msg 7"}, s.Messages)

	s.ClearMessages()
	assert.Empty(t, s.Messages)
}
