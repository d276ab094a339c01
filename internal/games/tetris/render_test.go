package tetris

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestRenderStartScreen(t *testing.T) {
	g := newGame(t, New)
	s := core.NewScreen(80, 24)
	g.Render(s)

	out := s.String()
	for _, want := range []string{"Blocks (Marathon)", "BLOCKS", "Press any key", "NEXT", "HOLD", "SCORE"} {
		if !strings.Contains(out, want) {
			t.Errorf("start screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPlayingShowsPieceAndBanner(t *testing.T) {
	g := newGame(t, New)
	g.Step(frame(core.ActionConfirm))

	s := core.NewScreen(80, 24)
	g.Render(s)
	out := s.String()

	if !strings.Contains(out, "█") {
		t.Error("expected the active piece to be drawn")
	}
	if !strings.Contains(out, "LEVEL 1") {
		t.Errorf("expected level banner after start:\n%s", out)
	}

	for range g.feedback.duration {
		g.Step(frame())
	}
	g.Render(s)
	if strings.Contains(s.String(), "LEVEL 1") {
		t.Error("banner should expire")
	}
}

func TestRenderQueue(t *testing.T) {
	g := newGame(t, New)
	s := core.NewScreen(80, 24)
	g.Render(s)
	if strings.Contains(s.String(), "THEN") {
		t.Error("queue should be hidden on the start screen")
	}

	g.Step(frame(core.ActionConfirm))
	g.Render(s)

	var names []string
	for _, k := range g.Engine().Snapshot().Upcoming {
		names = append(names, k.String())
	}
	want := strings.Join(names, " ")
	out := s.String()
	if !strings.Contains(out, "THEN") || !strings.Contains(out, want) {
		t.Errorf("expected queue %q under THEN:\n%s", want, out)
	}
}

func TestRenderCellColors(t *testing.T) {
	g := newGame(t, New)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionHardDrop))

	s := core.NewScreen(80, 24)
	g.Render(s)

	colored := 0
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Rune == '█' && !cell.Color.IsDefault() {
				colored++
			}
		}
	}
	// Placed piece, active piece and next preview, two columns per cell.
	if colored < 3*4*2 {
		t.Errorf("colored block cells = %d, expected at least %d", colored, 3*4*2)
	}
}

func TestRenderPaused(t *testing.T) {
	g := newGame(t, New)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionPause))

	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("expected pause overlay")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, New)
	s := core.NewScreen(30, 10)
	g.Render(s)
	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected too-small message:\n%s", s.String())
	}

	// Steps are frozen while the layout does not fit.
	g.Step(frame(core.ActionConfirm))
	if g.State().GameOver || g.Engine().Ticks() != 0 {
		t.Error("game advanced while the window was too small")
	}

	g.Resize(80, 24)
	g.Step(frame(core.ActionConfirm))
	if g.Engine().Ticks() != 1 {
		t.Error("game did not resume after resize")
	}
}
