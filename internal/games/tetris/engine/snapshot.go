package engine

import "slices"

// QueueLen is how many kinds after Next a snapshot previews.
const QueueLen = 3

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	State State
	Cols  int
	Rows  int
	Cells []Color // Row-major placed cells

	HasCurrent   bool
	Current      [CellsPerPiece]Point
	Ghost        [CellsPerPiece]Point // Where the current shape would land
	CurrentKind  Kind
	CurrentColor Color

	Next     Kind
	Upcoming []Kind // The QueueLen kinds drawn after Next
	Held     Kind
	HasHeld  bool

	Level       int
	RowsToLevel int
	Score       int
	Lines       int
	Locked      bool
	FastFall    bool
}

// Snapshot copies the observable game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:       g.state,
		Cols:        g.grid.cols,
		Rows:        g.grid.rows,
		Cells:       slices.Clone(g.grid.cells),
		Next:        g.next.Kind,
		Upcoming:    g.bag.Peek(QueueLen),
		Held:        g.held,
		HasHeld:     g.hasHeld,
		Level:       g.level,
		RowsToLevel: g.toNextLevel,
		Score:       g.score,
		Lines:       g.lines,
		Locked:      g.locked,
		FastFall:    g.fastFall,
	}
	if g.state == StatePlay || g.state == StateGameOver {
		s.HasCurrent = true
		s.Current = g.cur.Cells()
		s.Ghost = g.cur.Dropped(g.grid).Cells()
		s.CurrentKind = g.cur.Kind
		s.CurrentColor = g.cur.Color()
	}
	return s
}

// At returns the placed color at (x, y), or Empty if out of bounds.
func (s Snapshot) At(x, y int) Color {
	if x < 0 || x >= s.Cols || y < 0 || y >= s.Rows {
		return Empty
	}
	return s.Cells[y*s.Cols+x]
}
