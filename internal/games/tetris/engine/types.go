// Package engine implements the falling-block simulation: piece geometry,
// the bag randomizer, the active shape, the grid and the game state machine.
// This package is UI-agnostic and deterministic for a given seed.
//
// Nothing in this package is safe for concurrent use. The host drives it
// from a single loop, one Tick per frame.
package engine

// Color is an RGBA cell color. The zero value is the empty sentinel.
type Color struct {
	R, G, B, A uint8
}

// Empty marks an unoccupied grid cell.
var Empty = Color{}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Equal compares the RGB channels only.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// IsEmpty reports whether the color is the empty sentinel.
func (c Color) IsEmpty() bool {
	return c.Equal(Empty)
}

// Point is a cell coordinate. Y grows downward, row 0 is the top.
type Point struct {
	X, Y int
}

// P is a shorthand constructor.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// State is the phase of the game state machine.
type State uint8

const (
	StateStart State = iota
	StatePlay
	StateGameOver
	StateExit
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StatePlay:
		return "Play"
	case StateGameOver:
		return "GameOver"
	case StateExit:
		return "Exit"
	default:
		return "Unknown"
	}
}
