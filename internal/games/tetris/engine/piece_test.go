package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetsAreFourDistinctStableCells(t *testing.T) {
	for _, k := range AllKinds() {
		for r := -4; r <= 8; r++ {
			cells := Offsets(k, r)
			seen := make(map[Point]bool, CellsPerPiece)
			for _, c := range cells {
				seen[c] = true
			}
			assert.Len(t, seen, CellsPerPiece, "kind %s rotation %d has overlapping cells", k, r)
			assert.Equal(t, cells, Offsets(k, r), "kind %s rotation %d not stable", k, r)
			assert.Equal(t, cells, Offsets(k, r+k.Orientations()), "kind %s rotation %d not modular", k, r)
		}
	}
}

func TestOrientationCounts(t *testing.T) {
	expected := map[Kind]int{KindI: 2, KindO: 1, KindJ: 4, KindL: 4, KindS: 2, KindZ: 2, KindT: 4}
	for k, n := range expected {
		assert.Equal(t, n, k.Orientations(), "kind %s", k)
	}
}

func TestRotationIsClockwise(t *testing.T) {
	// T points up at rotation 0 and right after one clockwise turn.
	assert.Contains(t, Offsets(KindT, 0), P(0, -1))
	assert.Contains(t, Offsets(KindT, 1), P(1, 0))
	assert.Contains(t, Offsets(KindT, -1), P(-1, 0))

	for _, c := range Offsets(KindI, 1) {
		assert.Equal(t, 0, c.X, "vertical I must sit on the pivot column")
	}
}

func TestKindColorsDistinct(t *testing.T) {
	seen := make(map[Color]Kind)
	for _, k := range AllKinds() {
		c := k.Color()
		require.False(t, c.IsEmpty(), "kind %s has the empty color", k)
		if other, dup := seen[c]; dup {
			t.Errorf("kinds %s and %s share color %v", k, other, c)
		}
		seen[c] = k
	}
}

func TestColorEqualIgnoresAlpha(t *testing.T) {
	a := Color{R: 1, G: 2, B: 3, A: 255}
	b := Color{R: 1, G: 2, B: 3, A: 0}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(RGB(1, 2, 4)))
	assert.True(t, Color{A: 200}.IsEmpty())
}

func TestInvalidKind(t *testing.T) {
	k := Kind(42)
	assert.False(t, k.Valid())
	assert.Equal(t, "?", k.String())
	assert.True(t, k.Color().IsEmpty())
	assert.Equal(t, 1, k.Orientations())
}
