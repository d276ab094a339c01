package engine

import (
	"math/rand"
	"slices"
)

// Bag is the 7-bag randomizer. Every aligned window of NumKinds draws
// contains each kind exactly once.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag creates an empty bag; the first permutation is built lazily.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// refill appends one fresh permutation of all kinds.
func (b *Bag) refill() {
	for _, i := range b.rng.Perm(NumKinds) {
		b.queue = append(b.queue, Kind(i))
	}
}

// Draw removes and returns the next kind.
func (b *Bag) Draw() Kind {
	if len(b.queue) == 0 {
		b.refill()
	}
	k := b.queue[0]
	b.queue = b.queue[1:]
	return k
}

// Peek returns the next n kinds without consuming them.
// Permutations generated here are the ones Draw returns later, so peeking
// never changes the sequence.
func (b *Bag) Peek(n int) []Kind {
	if n <= 0 {
		return nil
	}
	for len(b.queue) < n {
		b.refill()
	}
	return slices.Clone(b.queue[:n])
}
