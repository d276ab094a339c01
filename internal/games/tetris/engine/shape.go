package engine

// Occupancy answers whether a cell is blocked. Out-of-bounds cells must
// report as occupied. *Grid implements it.
type Occupancy interface {
	IsOccupied(x, y int) bool
}

// Shape is the active piece: a kind at some rotation with its pivot at Pos.
// Shapes are values; copying one is how previews and trial moves are made.
type Shape struct {
	Kind     Kind
	Rotation int
	Pos      Point
}

// NewShape returns kind at rotation 0 with its pivot at the origin.
func NewShape(kind Kind) Shape {
	return Shape{Kind: kind}
}

// Spawn returns kind centered horizontally on a board cols wide with its
// top cell on row 0.
func Spawn(kind Kind, cols int) Shape {
	s := NewShape(kind)
	lo, hi := Bounds(kind, 0)
	// Pull the pivot back inside when a narrow board would push an edge
	// cell off the right side.
	x := min(cols/2, cols-1-hi.X)
	s.SetPos(max(x, -lo.X))
	s.Pos.Y = -lo.Y
	return s
}

// SetPos forces the pivot column without revalidating.
func (s *Shape) SetPos(x int) {
	s.Pos.X = x
}

// Color returns the display color of the shape's kind.
func (s Shape) Color() Color {
	return s.Kind.Color()
}

// Offsets returns the pivot-relative cells for the current rotation.
func (s Shape) Offsets() [CellsPerPiece]Point {
	return Offsets(s.Kind, s.Rotation)
}

// Cells returns the absolute board cells covered by the shape.
func (s Shape) Cells() [CellsPerPiece]Point {
	cells := s.Offsets()
	for i := range cells {
		cells[i] = cells[i].Add(s.Pos)
	}
	return cells
}

// IsInvalidState reports whether any cell is out of bounds or overlaps
// an occupied cell.
func (s Shape) IsInvalidState(g Occupancy) bool {
	for _, c := range s.Cells() {
		if g.IsOccupied(c.X, c.Y) {
			return true
		}
	}
	return false
}

// CanMoveDown tests one row down without moving.
func (s Shape) CanMoveDown(g Occupancy) bool {
	below := s
	below.Pos.Y++
	return !below.IsInvalidState(g)
}

// try commits next if it is a valid placement.
func (s *Shape) try(g Occupancy, next Shape) bool {
	if next.IsInvalidState(g) {
		return false
	}
	*s = next
	return true
}

func (s *Shape) translate(g Occupancy, dx, dy int) bool {
	next := *s
	next.Pos.X += dx
	next.Pos.Y += dy
	return s.try(g, next)
}

func (s *Shape) turn(g Occupancy, dir int) bool {
	if s.Kind.Orientations() == 1 {
		return true
	}
	next := *s
	next.Rotation = s.Kind.NormalizeRotation(s.Rotation + dir)
	return s.try(g, next)
}

// MoveLeft shifts the shape one column left if the result is valid.
func (s *Shape) MoveLeft(g Occupancy) bool { return s.translate(g, -1, 0) }

// MoveRight shifts the shape one column right if the result is valid.
func (s *Shape) MoveRight(g Occupancy) bool { return s.translate(g, 1, 0) }

// MoveDown drops the shape one row if the result is valid. A false return
// means the shape is resting and its position is unchanged.
func (s *Shape) MoveDown(g Occupancy) bool { return s.translate(g, 0, 1) }

// MoveUp lifts the shape one row if the result is valid.
func (s *Shape) MoveUp(g Occupancy) bool { return s.translate(g, 0, -1) }

// RotateRight turns the shape clockwise. There are no wall kicks: a
// blocked rotation is simply rejected.
func (s *Shape) RotateRight(g Occupancy) bool { return s.turn(g, 1) }

// RotateLeft turns the shape counter-clockwise.
func (s *Shape) RotateLeft(g Occupancy) bool { return s.turn(g, -1) }

// Move applies |delta| single-column steps, right for positive delta.
// It reports whether any successful step left the shape resting.
func (s *Shape) Move(g Occupancy, delta int) bool {
	step := s.MoveRight
	if delta < 0 {
		step = s.MoveLeft
		delta = -delta
	}
	return s.repeat(g, delta, step)
}

// Rotate applies |delta| quarter turns, clockwise for positive delta.
// It reports whether any successful turn left the shape resting.
func (s *Shape) Rotate(g Occupancy, delta int) bool {
	step := s.RotateRight
	if delta < 0 {
		step = s.RotateLeft
		delta = -delta
	}
	return s.repeat(g, delta, step)
}

func (s *Shape) repeat(g Occupancy, n int, step func(Occupancy) bool) bool {
	resting := false
	for range n {
		if step(g) && !s.CanMoveDown(g) {
			resting = true
		}
	}
	return resting
}

// Dropped returns a copy of the shape moved down until it rests.
func (s Shape) Dropped(g Occupancy) Shape {
	for s.MoveDown(g) {
	}
	return s
}
