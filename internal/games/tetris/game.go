// Package tetris adapts the falling-block engine to the platform's Game
// interface: it turns input frames into engine commands, owns pause and
// the on-screen feedback, and renders snapshots into a core.Screen.
package tetris

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Mode selects the rule set.
type Mode string

const (
	ModeMarathon Mode = "marathon"
	ModePractice Mode = "practice" // Fixed level, debug commands on
)

// gameOverFreeze is how long presses are ignored after a game over so a
// held key does not restart straight away.
const gameOverFreeze = 500 * time.Millisecond

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger handed to every new engine.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game hosts one engine instance for the platform.
type Game struct {
	mode     Mode
	cfg      config.TetrisConfig
	eng      *engine.Game
	feedback *feedbackController
	tick     uint64

	screenW int
	screenH int

	paused        bool
	tooSmall      bool
	softDropTicks int // Keyboard soft-drop hold left, in ticks
	softDropHold  int
	frozenTicks   int // Game-over freeze left, in ticks
	freezeTicks   int
}

// New creates a marathon game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewPractice creates a practice game.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

func init() {
	registry.Register(string(ModeMarathon), func() registry.Game {
		return New()
	})
	registry.Register(string(ModePractice), func() registry.Game {
		return NewPractice()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Blocks (Practice)"
	}
	return "Blocks (Marathon)"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModePractice {
		return "fixed level, debug keys for level and queue control"
	}
	return "level rises as rows clear, play until the stack tops out"
}

// Reset loads the configuration and creates a fresh engine in the Start state.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		logger.Error("config rejected, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)
	if rc.TickRate > 0 {
		cfg.Timing.TickRate = rc.TickRate
	}
	if g.mode == ModePractice {
		cfg.Leveling.LinesPerLevel = 0
		cfg.Debug = true
	}
	g.cfg = cfg

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.paused = false
	g.softDropTicks = 0
	g.frozenTicks = 0
	g.softDropHold = ticksFor(cfg.Input.SoftDropHold, cfg.FrameDuration())
	g.freezeTicks = ticksFor(gameOverFreeze, cfg.FrameDuration())
	g.tooSmall = g.screenW < g.layoutWidth() || g.screenH < g.layoutHeight()

	opts := engine.OptionsFromConfig(cfg, rc.Seed)
	opts.Logger = logger.With("mode", g.mode)
	g.feedback = newFeedbackController(opts.Logger, cfg.FrameDuration())
	opts.Controller = g.feedback
	g.eng = engine.New(opts)
	g.feedback.level = g.eng.Level
}

// ticksFor converts a duration to whole ticks, rounding up.
func ticksFor(d, frame time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + frame - 1) / frame)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionQuit) {
		g.eng.Quit()
		return core.StepResult{State: g.State()}
	}

	playing := g.eng.State() == engine.StatePlay
	if in.Has(core.ActionPause) && playing {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.frozenTicks > 0 {
		g.frozenTicks--
		in = core.InputFrame{}
	}

	g.eng.Tick(g.commands(in), nil)
	g.feedback.step()

	if playing && g.eng.State() == engine.StateGameOver {
		g.frozenTicks = g.freezeTicks
		g.softDropTicks = 0
	}
	return core.StepResult{State: g.State()}
}

// commands maps one input frame onto the engine's keyboard vector.
func (g *Game) commands(in core.InputFrame) engine.Commands {
	var kb engine.Commands

	switch g.eng.State() {
	case engine.StateStart, engine.StateGameOver:
		// Any press begins a session.
		kb.Start = !in.Empty() && !in.Has(core.ActionPause)
		return kb
	case engine.StatePlay:
	default:
		return kb
	}

	if in.Has(core.ActionLeft) {
		kb.Move--
	}
	if in.Has(core.ActionRight) {
		kb.Move++
	}
	if in.Has(core.ActionRotateLeft) {
		kb.Rotate--
	}
	if in.Has(core.ActionRotateRight) {
		kb.Rotate++
	}
	kb.Hold = in.Has(core.ActionHold)
	kb.InstantDrop = in.Has(core.ActionHardDrop)

	// Terminals send repeats while a key is down but never a release, so the
	// soft drop stays on until no press arrived for softDropHold ticks.
	if in.Has(core.ActionSoftDrop) {
		g.softDropTicks = g.softDropHold
		if !g.eng.FastFall() {
			kb.FastDrop = engine.FastDropOn
		}
	} else if g.softDropTicks > 0 {
		g.softDropTicks--
		if g.softDropTicks == 0 && g.eng.FastFall() {
			kb.FastDrop = engine.FastDropOff
		}
	}

	if in.Has(core.ActionLevelUp) {
		kb.LevelDelta++
	}
	if in.Has(core.ActionLevelDown) {
		kb.LevelDelta--
	}
	kb.NudgeUp = in.Has(core.ActionNudgeUp)
	kb.Skip = in.Has(core.ActionSkip)
	if in.Has(core.ActionCycleNext) {
		kb.CycleNext++
	}
	if in.Has(core.ActionCyclePrev) {
		kb.CycleNext--
	}
	return kb
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		Level:    g.eng.Level(),
		Lines:    g.eng.Lines(),
		GameOver: g.eng.State() == engine.StateGameOver,
		Paused:   g.paused,
		Exited:   g.eng.State() == engine.StateExit,
	}
}

// Engine exposes the hosted engine.
func (g *Game) Engine() *engine.Game {
	return g.eng
}

// Config returns the effective configuration of the last Reset.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}
