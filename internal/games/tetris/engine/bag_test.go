package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagWindowsHoldEachKindOnce(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(7)))
	for window := range 50 {
		counts := make(map[Kind]int, NumKinds)
		for range NumKinds {
			counts[b.Draw()]++
		}
		for _, k := range AllKinds() {
			assert.Equal(t, 1, counts[k], "window %d: kind %s", window, k)
		}
	}
}

func TestBagPeekDoesNotChangeSequence(t *testing.T) {
	plain := NewBag(rand.New(rand.NewSource(99)))
	peeked := NewBag(rand.New(rand.NewSource(99)))

	for i := range 40 {
		if i%3 == 0 {
			ahead := peeked.Peek(i % 11)
			assert.Len(t, ahead, i%11)
		}
		assert.Equal(t, plain.Draw(), peeked.Draw(), "draw %d", i)
	}
}

func TestBagPeekMatchesDraws(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(3)))
	ahead := b.Peek(10)
	for i, k := range ahead {
		assert.Equal(t, k, b.Draw(), "draw %d", i)
	}
	assert.Nil(t, b.Peek(0))
}

func TestBagDeterministic(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(12345)))
	b := NewBag(rand.New(rand.NewSource(12345)))
	for i := range 100 {
		assert.Equal(t, a.Draw(), b.Draw(), "draw %d", i)
	}
}
