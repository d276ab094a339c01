package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnCentersWithTopCellOnRowZero(t *testing.T) {
	g := NewGrid(10, 20)
	for _, k := range AllKinds() {
		s := Spawn(k, g.Cols())
		assert.Equal(t, 5, s.Pos.X, "kind %s", k)

		top := g.Rows()
		for _, c := range s.Cells() {
			top = min(top, c.Y)
		}
		assert.Equal(t, 0, top, "kind %s", k)
		assert.False(t, s.IsInvalidState(g), "kind %s spawns invalid on an empty board", k)
	}
}

func TestSpawnFitsNarrowestBoard(t *testing.T) {
	for _, cols := range []int{4, 5} {
		g := NewGrid(cols, 4)
		for _, k := range AllKinds() {
			s := Spawn(k, g.Cols())
			for _, c := range s.Cells() {
				assert.True(t, g.InBounds(c.X, c.Y), "kind %s cell %v off a %d-wide board", k, c, cols)
			}
			assert.False(t, s.IsInvalidState(g), "kind %s spawns invalid on an empty %d-wide board", k, cols)
		}
	}
}

func TestMoveDownBlockedDoesNotMutate(t *testing.T) {
	g := NewGrid(10, 20)
	s := Spawn(KindT, g.Cols()).Dropped(g)
	before := s

	for range 3 {
		assert.False(t, s.MoveDown(g))
		assert.Equal(t, before, s)
	}

	// Blocked by a placed cell instead of the floor.
	g2 := NewGrid(10, 20)
	fillRow(g2, 10, red)
	s2 := Spawn(KindO, g2.Cols()).Dropped(g2)
	for _, c := range s2.Cells() {
		assert.Less(t, c.Y, 10)
	}
	pos := s2.Pos
	assert.False(t, s2.MoveDown(g2))
	assert.Equal(t, pos, s2.Pos)
}

func TestMoveAgainstWalls(t *testing.T) {
	g := NewGrid(10, 20)
	s := Spawn(KindO, g.Cols())

	moves := 0
	for s.MoveLeft(g) {
		moves++
	}
	assert.Equal(t, 5, moves)
	for _, c := range s.Cells() {
		assert.GreaterOrEqual(t, c.X, 0)
	}

	moves = 0
	for s.MoveRight(g) {
		moves++
	}
	assert.Equal(t, 8, moves)
}

func TestRotationHasNoWallKick(t *testing.T) {
	g := NewGrid(10, 20)
	s := Shape{Kind: KindI, Rotation: 1, Pos: P(0, 5)}
	require.False(t, s.IsInvalidState(g))

	before := s
	assert.False(t, s.RotateRight(g), "horizontal I would poke through the left wall")
	assert.Equal(t, before, s)

	s.Pos.X = 4
	assert.True(t, s.RotateRight(g))
	assert.Equal(t, 0, s.Rotation)
}

func TestRotateSquareIsNoop(t *testing.T) {
	g := NewGrid(10, 20)
	s := Spawn(KindO, g.Cols())
	before := s
	assert.True(t, s.RotateLeft(g))
	assert.Equal(t, before, s)
}

func TestMoveReportsResting(t *testing.T) {
	g := NewGrid(10, 20)

	airborne := Spawn(KindT, g.Cols())
	assert.False(t, airborne.Move(g, 2))
	assert.Equal(t, 7, airborne.Pos.X)

	grounded := Spawn(KindT, g.Cols()).Dropped(g)
	assert.True(t, grounded.Move(g, -3))
	assert.Equal(t, 2, grounded.Pos.X)

	// Every other T orientation reaches below the pivot row.
	assert.False(t, grounded.Rotate(g, 1))
	assert.Equal(t, 0, grounded.Rotation)

	// Fully blocked: no step succeeds, so nothing reports resting.
	walled := Spawn(KindT, g.Cols()).Dropped(g)
	for walled.MoveLeft(g) {
	}
	assert.False(t, walled.Move(g, -1))
}

func TestIsInvalidState(t *testing.T) {
	g := NewGrid(10, 20)
	s := Spawn(KindS, g.Cols())
	assert.False(t, s.IsInvalidState(g))

	c := s.Cells()[0]
	g.Set(c.X, c.Y, red)
	assert.True(t, s.IsInvalidState(g))

	s.SetPos(-5)
	assert.True(t, s.IsInvalidState(NewGrid(10, 20)))
}
