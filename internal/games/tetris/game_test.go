package tetris

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// useDefaultConfig points the loader at a copy of the embedded defaults so
// tests never pick up a developer's ~/.blocks config.
func useDefaultConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() { SetConfigPath("") })
}

func newGame(t *testing.T, mk func() *Game) *Game {
	t.Helper()
	useDefaultConfig(t)
	g := mk()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"marathon", "practice"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
	g, err := registry.Create("practice")
	if err != nil {
		t.Fatalf("Create(practice) error = %v", err)
	}
	if g.ID() != "practice" {
		t.Errorf("ID() = %q, expected practice", g.ID())
	}
}

func TestAnyKeyStarts(t *testing.T) {
	g := newGame(t, New)

	g.Step(frame())
	if got := g.Engine().State(); got != engine.StateStart {
		t.Fatalf("state after idle tick = %v, expected Start", got)
	}

	g.Step(frame(core.ActionPause))
	if got := g.Engine().State(); got != engine.StateStart {
		t.Errorf("pause must not start a game, state = %v", got)
	}

	g.Step(frame(core.ActionLeft))
	if got := g.Engine().State(); got != engine.StatePlay {
		t.Errorf("state after key press = %v, expected Play", got)
	}
}

func TestPauseFreezesGame(t *testing.T) {
	g := newGame(t, New)
	g.Step(frame(core.ActionConfirm))

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	before := g.Engine().Current()
	for range 200 {
		g.Step(frame(core.ActionLeft))
	}
	if after := g.Engine().Current(); after != before {
		t.Errorf("piece moved while paused: %+v -> %+v", before, after)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestKeyboardMovesPiece(t *testing.T) {
	g := newGame(t, New)
	g.Step(frame(core.ActionConfirm))
	x := g.Engine().Current().Pos.X

	g.Step(frame(core.ActionLeft))
	if got := g.Engine().Current().Pos.X; got != x-1 {
		t.Errorf("X after Left = %d, expected %d", got, x-1)
	}

	g.Step(frame(core.ActionLeft, core.ActionRight))
	if got := g.Engine().Current().Pos.X; got != x-1 {
		t.Errorf("Left+Right must cancel, X = %d", got)
	}

	g.Step(frame(core.ActionHardDrop))
	if got := g.Engine().Grid().FilledCount(); got != 4 {
		t.Errorf("FilledCount() after hard drop = %d, expected 4", got)
	}
}

func TestSoftDropHoldWindow(t *testing.T) {
	g := newGame(t, New)
	g.Step(frame(core.ActionConfirm))

	g.Step(frame(core.ActionSoftDrop))
	if !g.Engine().FastFall() {
		t.Fatal("soft drop press did not enable fast-fall")
	}

	for i := 1; i < g.softDropHold; i++ {
		g.Step(frame())
		if !g.Engine().FastFall() {
			t.Fatalf("fast-fall ended early after %d idle ticks", i)
		}
	}
	g.Step(frame())
	if g.Engine().FastFall() {
		t.Error("fast-fall still on after the hold window")
	}
}

func TestQuitExits(t *testing.T) {
	g := newGame(t, New)
	g.Step(frame(core.ActionConfirm))
	res := g.Step(frame(core.ActionQuit))
	if !res.State.Exited {
		t.Error("expected Exited after quit")
	}
	if g.Engine().State() != engine.StateExit {
		t.Errorf("engine state = %v, expected Exit", g.Engine().State())
	}
}

func TestPracticeMode(t *testing.T) {
	g := newGame(t, NewPractice)
	if !g.Config().Debug || g.Config().Leveling.LinesPerLevel != 0 {
		t.Fatalf("practice config = %+v, expected debug with fixed level", g.Config())
	}

	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionLevelUp))
	if got := g.State().Level; got != 2 {
		t.Errorf("Level after debug level up = %d, expected 2", got)
	}
}

func TestMarathonIgnoresDebugKeys(t *testing.T) {
	g := newGame(t, New)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionLevelUp))
	if got := g.State().Level; got != 1 {
		t.Errorf("Level = %d, expected 1", got)
	}
}

func TestGameOverFreeze(t *testing.T) {
	g := newGame(t, New)
	g.Step(frame(core.ActionConfirm))

	grid := g.Engine().Grid()
	for y := range 2 {
		for x := 3; x <= 7; x++ {
			grid.Set(x, y, engine.RGB(255, 0, 0))
		}
	}
	g.Step(frame(core.ActionHardDrop))
	if !g.State().GameOver {
		t.Fatal("expected game over after spawning into a full top")
	}

	g.Step(frame(core.ActionLeft))
	if !g.State().GameOver {
		t.Fatal("key press during the freeze restarted the game")
	}
	for range g.freezeTicks {
		g.Step(frame())
	}
	g.Step(frame(core.ActionLeft))
	if g.State().GameOver {
		t.Error("expected restart after the freeze")
	}
	if got := g.Engine().Grid().FilledCount(); got > 4 {
		t.Errorf("FilledCount() after restart = %d, expected a cleared grid", got)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 777, ScreenW: 80, ScreenH: 24, TickRate: 60}
	useDefaultConfig(t)

	g1, g2 := New(), New()
	g1.Reset(cfg)
	g2.Reset(cfg)
	s1, s2 := core.NewScreen(80, 24), core.NewScreen(80, 24)

	inputs := []core.Action{core.ActionConfirm, core.ActionLeft, core.ActionRotateRight, core.ActionHardDrop, core.ActionRight, core.ActionHold}
	for i := range 1500 {
		in := frame()
		if i%9 == 0 {
			in.Set(inputs[(i/9)%len(inputs)])
		}
		g1.Step(in)
		g2.Step(in)
	}

	g1.Render(s1)
	g2.Render(s2)
	if s1.String() != s2.String() {
		t.Error("same seed and inputs rendered different screens")
	}
	if g1.State() != g2.State() {
		t.Errorf("state mismatch: %+v vs %+v", g1.State(), g2.State())
	}
}

func TestTicksFor(t *testing.T) {
	step := 10 * time.Millisecond
	tests := []struct {
		d        time.Duration
		expected int
	}{
		{0, 0},
		{step, 1},
		{step + 1, 2},
		{time.Second, 100},
	}
	for _, tt := range tests {
		if got := ticksFor(tt.d, step); got != tt.expected {
			t.Errorf("ticksFor(%v) = %d, expected %d", tt.d, got, tt.expected)
		}
	}
}

func TestResetFollowsConfigTickRate(t *testing.T) {
	data := strings.Replace(string(config.DefaultYAML()), "tick_rate: 60", "tick_rate: 30", 1)
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if got := g.Config().Timing.TickRate; got != 30 {
		t.Fatalf("TickRate = %d, expected 30 from the config file", got)
	}
	if got := g.Config().FrameDuration(); got != time.Second/30 {
		t.Errorf("FrameDuration() = %v, expected %v", got, time.Second/30)
	}
	if got, want := g.softDropHold, ticksFor(550*time.Millisecond, time.Second/30); got != want {
		t.Errorf("softDropHold = %d ticks, expected %d", got, want)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if got := g.Config().Timing.TickRate; got != 60 {
		t.Errorf("TickRate = %d, expected the explicit 60 to win", got)
	}
}
