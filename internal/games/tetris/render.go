package tetris

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris/engine"
)

const (
	cellWidth = 2 // Terminal columns per board cell
	gap       = 1 // Columns between the side panels and the board
)

var (
	colorFrame = core.ColorGray
	colorLabel = core.ColorWhite
	colorEmpty = core.ColorDim
)

// toScreen converts an engine color to a screen color.
func toScreen(c engine.Color) core.Color {
	if c.IsEmpty() {
		return core.ColorDefault
	}
	return core.RGB(c.R, c.G, c.B)
}

func (g *Game) boardWidth() int  { return g.cfg.Board.Cols*cellWidth + 2 }
func (g *Game) boardHeight() int { return g.cfg.Board.Rows + 2 }
func (g *Game) panelWidth() int  { return g.cfg.Board.PreviewSize*cellWidth + 2 }
func (g *Game) panelHeight() int { return g.cfg.Board.PreviewSize/2 + 4 }

// layoutWidth is the minimum screen width: two side panels and the board.
func (g *Game) layoutWidth() int {
	return 2*(g.panelWidth()+gap) + g.boardWidth()
}

// layoutHeight is the minimum screen height: title row and the board.
func (g *Game) layoutHeight() int {
	return g.boardHeight() + 1
}

// Resize updates the screen size without restarting the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.layoutWidth() || h < g.layoutHeight()
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}

	g.tooSmall = dst.Width() < g.layoutWidth() || dst.Height() < g.layoutHeight()
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.eng.Snapshot()
	area := core.CenteredIn(dst.Bounds(), g.layoutWidth(), g.layoutHeight())
	dst.DrawTextCentered(area, area.Y, g.Title(), colorLabel)

	left := core.NewRect(area.X, area.Y+1, g.panelWidth(), g.panelHeight())
	board := core.NewRect(left.Right()+gap, area.Y+1, g.boardWidth(), g.boardHeight())
	right := core.NewRect(board.Right()+gap, area.Y+1, g.panelWidth(), g.panelHeight())

	g.renderBoard(dst, board, snap)

	showPieces := snap.State != engine.StateStart
	g.renderPanel(dst, left, "NEXT", snap.Next, showPieces)
	g.renderPanel(dst, right, "HOLD", snap.Held, showPieces && snap.HasHeld)
	g.renderStats(dst, left.X, left.Bottom()+1, snap)
	if showPieces {
		g.renderQueue(dst, left.X, left.Bottom()+1+statsHeight, snap.Upcoming)
	}
	g.renderStatus(dst, right.X, right.Bottom()+1, snap)

	g.renderOverlays(dst, board, snap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	b := dst.Bounds()
	y := b.H / 2
	dst.DrawTextCentered(b, y, "Window too small", colorLabel)
	need := fmt.Sprintf("Need %dx%d", g.layoutWidth(), g.layoutHeight())
	dst.DrawTextCentered(b, y+1, need, core.ColorGray)
}

// renderBoard draws the frame, the placed cells, the ghost and the active piece.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect, snap engine.Snapshot) {
	dst.DrawBox(board, colorFrame)
	inner := board.Inset(1)

	for y := range snap.Rows {
		for x := range snap.Cols {
			c := snap.At(x, y)
			if c.IsEmpty() {
				dst.SetWithColor(inner.X+x*cellWidth, inner.Y+y, '·', colorEmpty)
				continue
			}
			drawCell(dst, inner.X+x*cellWidth, inner.Y+y, '█', toScreen(c))
		}
	}

	if !snap.HasCurrent {
		return
	}
	color := toScreen(snap.CurrentColor)
	if snap.State == engine.StatePlay {
		for _, p := range snap.Ghost {
			if inner.Contains(inner.X+p.X*cellWidth, inner.Y+p.Y) {
				drawCell(dst, inner.X+p.X*cellWidth, inner.Y+p.Y, '░', color.Scale(0.6))
			}
		}
	}
	if snap.State == engine.StateGameOver {
		color = color.Scale(0.5)
	}
	for _, p := range snap.Current {
		if inner.Contains(inner.X+p.X*cellWidth, inner.Y+p.Y) {
			drawCell(dst, inner.X+p.X*cellWidth, inner.Y+p.Y, '█', color)
		}
	}
}

func drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetWithColor(x, y, r, c)
	dst.SetWithColor(x+1, y, r, c)
}

// renderPanel draws a preview box with kind centered inside.
func (g *Game) renderPanel(dst *core.Screen, panel core.Rect, label string, kind engine.Kind, show bool) {
	dst.DrawBox(panel, colorFrame)
	dst.DrawText(panel.X+2, panel.Y, label, colorLabel)
	if !show {
		return
	}

	inner := panel.Inset(1)
	lo, hi := engine.Bounds(kind, 0)
	w := (hi.X - lo.X + 1) * cellWidth
	h := hi.Y - lo.Y + 1
	ox := inner.X + (inner.W-w)/2
	oy := inner.Y + (inner.H-h)/2
	color := toScreen(kind.Color())
	for _, p := range engine.Offsets(kind, 0) {
		drawCell(dst, ox+(p.X-lo.X)*cellWidth, oy+(p.Y-lo.Y), '█', color)
	}
}

// statsHeight is the number of rows renderStats uses.
const statsHeight = 6

// renderStats draws score, level and lines below the next panel.
func (g *Game) renderStats(dst *core.Screen, x, y int, snap engine.Snapshot) {
	rows := []struct {
		label string
		value string
	}{
		{"SCORE", strconv.Itoa(snap.Score)},
		{"LEVEL", strconv.Itoa(snap.Level)},
		{"LINES", strconv.Itoa(snap.Lines)},
	}
	for i, r := range rows {
		dst.DrawText(x, y+i*2, r.label, core.ColorGray)
		dst.DrawText(x, y+i*2+1, r.value, colorLabel)
	}
}

// renderQueue lists the kinds queued after the next piece, each in its color.
func (g *Game) renderQueue(dst *core.Screen, x, y int, kinds []engine.Kind) {
	if len(kinds) == 0 {
		return
	}
	dst.DrawText(x, y, "THEN", core.ColorGray)
	for i, k := range kinds {
		dst.DrawText(x+i*2, y+1, k.String(), toScreen(k.Color()))
	}
}

// renderStatus draws mode flags below the hold panel.
func (g *Game) renderStatus(dst *core.Screen, x, y int, snap engine.Snapshot) {
	line := y
	if g.cfg.Leveling.LinesPerLevel > 0 && snap.State == engine.StatePlay {
		dst.DrawText(x, line, "NEXT LVL", core.ColorGray)
		dst.DrawText(x, line+1, strconv.Itoa(snap.RowsToLevel), colorLabel)
		line += 2
	}
	if snap.FastFall {
		dst.DrawText(x, line, "FAST", core.ColorGold)
		line++
	}
	if g.cfg.Debug {
		dst.DrawText(x, line, "DEBUG", core.ColorRed)
	}
}

// renderOverlays draws state messages and feedback banners over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect, snap engine.Snapshot) {
	mid := board.Y + board.H/2

	switch {
	case snap.State == engine.StateStart:
		g.overlay(dst, board, mid, "BLOCKS", "Press any key")
	case g.paused:
		g.overlay(dst, board, mid, "PAUSED", "Press P to continue")
	case snap.State == engine.StateGameOver:
		hint := ""
		if g.frozenTicks == 0 {
			hint = "Press any key"
		}
		g.overlay(dst, board, mid, "GAME OVER", hint)
		dst.DrawTextCentered(board, mid+2, fmt.Sprintf("Score %d", snap.Score), core.ColorGold)
	default:
		if banner := g.feedback.Banner(); banner != "" {
			g.overlay(dst, board, board.Y+board.H/3, banner, "")
		}
	}
}

// overlay clears a band across the board and writes one or two lines in it.
func (g *Game) overlay(dst *core.Screen, board core.Rect, y int, line1, line2 string) {
	band := core.NewRect(board.X+1, y-1, board.W-2, 3)
	if line2 != "" {
		band.H = 4
	}
	dst.FillRect(band, ' ', core.ColorDefault)
	dst.DrawTextCentered(board, y, line1, core.ColorGold)
	if line2 != "" {
		dst.DrawTextCentered(board, y+1, line2, core.ColorGray)
	}
}
