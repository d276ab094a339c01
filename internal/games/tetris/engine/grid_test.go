package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = RGB(255, 0, 0)
	blue = RGB(0, 0, 255)
)

func fillRow(g *Grid, y int, c Color) {
	for x := range g.Cols() {
		g.Set(x, y, c)
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(10, 20)
	assert.True(t, g.IsOccupied(-1, 0))
	assert.True(t, g.IsOccupied(10, 0))
	assert.True(t, g.IsOccupied(0, 20))
	assert.False(t, g.IsOccupied(0, 0))
	assert.True(t, g.At(-1, -1).IsEmpty())

	g.Set(99, 99, red) // Ignored
	assert.Equal(t, 0, g.FilledCount())

	g.Set(3, 4, red)
	assert.True(t, g.IsOccupied(3, 4))
	assert.Equal(t, red, g.At(3, 4))
}

func TestRowComplete(t *testing.T) {
	g := NewGrid(10, 20)
	assert.False(t, g.RowComplete(19))
	fillRow(g, 19, red)
	assert.True(t, g.RowComplete(19))
	g.Set(4, 19, Empty)
	assert.False(t, g.RowComplete(19))
	assert.False(t, g.RowComplete(-1))
	assert.False(t, g.RowComplete(20))
}

func TestMoveRowsDownShiftsAndClears(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 19, red)
	g.Set(2, 18, blue)
	g.Set(7, 17, blue)
	g.Set(0, 0, blue)

	var cleared []int
	g.OnRowCleared = func(y int) { cleared = append(cleared, y) }

	before := g.FilledCount()
	g.MoveRowsDown(19)

	assert.Equal(t, before-g.Cols(), g.FilledCount())
	assert.Equal(t, blue, g.At(2, 19), "row 18 should now be row 19")
	assert.Equal(t, blue, g.At(7, 18), "row 17 should now be row 18")
	assert.Equal(t, blue, g.At(0, 1), "row 0 should now be row 1")
	for x := range g.Cols() {
		assert.True(t, g.At(x, 0).IsEmpty(), "row 0 must be empty at x=%d", x)
	}
	assert.Equal(t, []int{0}, cleared)
}

func TestMoveRowsDownTopRow(t *testing.T) {
	g := NewGrid(4, 4)
	fillRow(g, 0, red)
	g.MoveRowsDown(0)
	assert.Equal(t, 0, g.FilledCount())
}

func TestResetSkipsHook(t *testing.T) {
	g := NewGrid(4, 4)
	fillRow(g, 3, red)
	called := false
	g.OnRowCleared = func(int) { called = true }
	g.Reset()
	assert.Equal(t, 0, g.FilledCount())
	assert.False(t, called)
}

func TestGridClone(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(1, 1, red)
	g.OnRowCleared = func(int) {}

	c := g.Clone()
	require.Nil(t, c.OnRowCleared)
	c.Set(2, 2, blue)
	assert.True(t, g.At(2, 2).IsEmpty())
	assert.Equal(t, red, c.At(1, 1))
}
