package engine

// Grid is the playfield of placed cells, stored row-major: index = y*cols + x.
// Row 0 is the top.
type Grid struct {
	cols, rows int
	cells      []Color

	// OnRowCleared is called after every ClearRow, including the top-row
	// clear performed by MoveRowsDown. The game installs its leveling hook here.
	OnRowCleared func(y int)
}

// NewGrid creates an empty grid.
func NewGrid(cols, rows int) *Grid {
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Color, cols*rows),
	}
}

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

func (g *Grid) index(x, y int) int {
	return y*g.cols + x
}

// At returns the color at (x, y), or Empty if out of bounds.
func (g *Grid) At(x, y int) Color {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[g.index(x, y)]
}

// Set writes a color. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Color) {
	if g.InBounds(x, y) {
		g.cells[g.index(x, y)] = c
	}
}

// IsOccupied reports whether (x, y) blocks a piece.
// Out-of-bounds cells count as occupied.
func (g *Grid) IsOccupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return !g.cells[g.index(x, y)].IsEmpty()
}

// RowComplete reports whether every cell of row y is filled.
func (g *Grid) RowComplete(y int) bool {
	if y < 0 || y >= g.rows {
		return false
	}
	for _, c := range g.row(y) {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

func (g *Grid) row(y int) []Color {
	return g.cells[y*g.cols : (y+1)*g.cols]
}

// ClearRow resets row y to empty and reports it to OnRowCleared.
func (g *Grid) ClearRow(y int) {
	if y < 0 || y >= g.rows {
		return
	}
	clear(g.row(y))
	if g.OnRowCleared != nil {
		g.OnRowCleared(y)
	}
}

// MoveRowsDown eliminates row y: every row above it shifts down by one and
// the vacated top row is cleared.
func (g *Grid) MoveRowsDown(y int) {
	if y < 0 || y >= g.rows {
		return
	}
	copy(g.cells[g.cols:(y+1)*g.cols], g.cells[:y*g.cols])
	g.ClearRow(0)
}

// Reset empties every cell without firing OnRowCleared.
func (g *Grid) Reset() {
	clear(g.cells)
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, c := range g.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy without the row-cleared hook.
func (g *Grid) Clone() *Grid {
	return &Grid{
		cols:  g.cols,
		rows:  g.rows,
		cells: append([]Color(nil), g.cells...),
	}
}
