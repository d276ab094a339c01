package engine

import (
	"math"
	"time"

	"github.com/kamstrup/intmap"
)

// maxCurveLevel caps the curve input; past it the delay is pinned at the floor.
const maxCurveLevel = 100

// gravityCurve maps a level to its drop delay.
// Delays are computed once per level and cached.
type gravityCurve struct {
	floor      time.Duration
	softFactor int
	cache      *intmap.Map[int, time.Duration]
}

func newGravityCurve(floor time.Duration, softFactor int) *gravityCurve {
	return &gravityCurve{
		floor:      max(floor, time.Nanosecond),
		softFactor: max(softFactor, 1),
		cache:      intmap.New[int, time.Duration](32),
	}
}

// Level returns the drop delay for level:
// (0.8 - (level-1)*0.007)^(level-1) seconds, never below the floor.
func (c *gravityCurve) Level(level int) time.Duration {
	level = max(1, min(level, maxCurveLevel))
	if d, ok := c.cache.Get(level); ok {
		return d
	}
	n := float64(level - 1)
	secs := math.Pow(0.8-n*0.007, n)
	d := max(time.Duration(secs*float64(time.Second)), c.floor)
	c.cache.Put(level, d)
	return d
}

// Fast returns the drop delay for level while fast-falling.
func (c *gravityCurve) Fast(level int) time.Duration {
	return max(c.Level(level)/time.Duration(c.softFactor), c.floor)
}
