package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_Encoding(t *testing.T) {
	assert.Equal(t, byte(0), byte(Space))
	assert.Equal(t, byte(1), byte(Wall))
	assert.Equal(t, byte(2), byte(TempWall))
}

func TestCell_Predicates(t *testing.T) {
	assert.True(t, TempWall.IsValid())
	assert.False(t, Cell(3).IsValid())
	assert.Equal(t, "TempWall", TempWall.String())
}
