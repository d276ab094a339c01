package engine

import (
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// lineClearPoints is the base award for clearing 1-4 rows at once.
var lineClearPoints = [...]int{0, 100, 300, 500, 800}

const (
	hardDropPoints = 2 // Per row descended
	softDropPoints = 1 // Per row descended under fast-fall
)

// Game is the falling-block state machine. It owns the grid, the bag and
// every piece, and advances one frame per Tick.
type Game struct {
	opts    Options
	log     *log.Logger
	ctrl    Controller
	pad     PadInput
	rng     *rand.Rand
	gravity *gravityCurve

	grid  *Grid
	bag   *Bag
	state State

	cur      Shape
	next     Shape
	held     Kind
	hasHeld  bool
	holdUsed bool

	level       int
	toNextLevel int
	timer       time.Duration
	locked      bool
	fastFall    bool
	lockResets  int

	score   int
	lines   int
	session string
	ticks   uint64
	cycle   int // Debug next-piece cycle position
}

// New creates a game in the Start state with an empty grid.
func New(opts Options) *Game {
	opts = opts.withDefaults()
	g := &Game{
		opts:    opts,
		log:     opts.Logger,
		ctrl:    opts.Controller,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		gravity: newGravityCurve(opts.MinDropDelay, opts.SoftDropFactor),
		grid:    NewGrid(opts.Cols, opts.Rows),
		state:   StateStart,
		level:   opts.StartLevel,
	}
	g.grid.OnRowCleared = g.rowCleared
	g.bag = NewBag(g.rng)
	return g
}

// Play starts a session. From GameOver the grid is cleared first.
func (g *Game) Play() {
	if g.state == StateGameOver {
		g.grid.Reset()
	}
	g.session = uuid.NewString()
	g.state = StatePlay
	g.score, g.lines = 0, 0
	g.hasHeld = false
	g.pad.Reset()

	g.level = g.opts.StartLevel - 1
	g.IncLevel()
	g.bag = NewBag(g.rng)
	g.fastFall = false
	g.locked = false
	g.timer = g.dropDelay()
	g.next = Spawn(g.bag.Draw(), g.opts.Cols)

	g.log.Info("session start", "session", g.session, "seed", g.opts.Seed, "level", g.level)
	g.LoadNewShape()
}

// Quit moves the game to the terminal Exit state.
func (g *Game) Quit() {
	if g.state == StateExit {
		return
	}
	g.log.Info("exit", "session", g.session, "score", g.score, "lines", g.lines)
	g.state = StateExit
}

// LoadNewShape installs the pending next shape as current and draws a new
// next shape. If the new shape has nowhere to appear the game is over.
func (g *Game) LoadNewShape() {
	g.holdUsed = false
	if !g.install(g.next) {
		return
	}
	g.next = Spawn(g.bag.Draw(), g.opts.Cols)
}

// install makes s the current shape if it is in a valid state.
// The previous current shape stays on display otherwise.
func (g *Game) install(s Shape) bool {
	if s.IsInvalidState(g.grid) {
		g.gameOver()
		return false
	}
	g.cur = s
	g.locked = false
	g.lockResets = 0
	return true
}

func (g *Game) gameOver() {
	g.state = StateGameOver
	g.fastFall = false
	g.locked = false
	g.ctrl.PlayAnimation(AnimationFlatline)
	g.log.Info("game over", "session", g.session, "score", g.score, "lines", g.lines, "level", g.level)
}

// HoldShape parks the current kind. With an empty hold a new shape is
// spawned; otherwise the held kind is swapped in. Hold works once per piece.
func (g *Game) HoldShape() {
	if g.holdUsed || g.state != StatePlay {
		return
	}
	prev, hadHeld := g.held, g.hasHeld
	g.held, g.hasHeld = g.cur.Kind, true
	if !hadHeld {
		g.LoadNewShape()
	} else {
		g.install(Spawn(prev, g.opts.Cols))
	}
	g.holdUsed = true
}

// PlaceShape writes the current shape into the grid, eliminates every
// completed row it touched and spawns the next shape.
func (g *Game) PlaceShape() {
	color := g.cur.Color()
	rows := make([]int, 0, CellsPerPiece)
	for _, c := range g.cur.Cells() {
		g.grid.Set(c.X, c.Y, color)
		if !slices.Contains(rows, c.Y) {
			rows = append(rows, c.Y)
		}
	}

	// Top to bottom: eliminating row y only shifts rows above y, so the
	// remaining (lower) indices stay valid.
	slices.Sort(rows)
	level := g.level
	cleared := 0
	for _, y := range rows {
		if g.grid.RowComplete(y) {
			g.grid.MoveRowsDown(y)
			cleared++
		}
	}
	if cleared > 0 {
		g.lines += cleared
		g.score += lineClearPoints[min(cleared, len(lineClearPoints)-1)] * level
		g.log.Debug("rows cleared", "session", g.session, "rows", cleared, "score", g.score)
	}
	g.LoadNewShape()
}

// rowCleared is the grid hook counting rows toward the next level.
func (g *Game) rowCleared(int) {
	if g.opts.LinesPerLevel == 0 {
		return
	}
	g.toNextLevel--
	if g.toNextLevel <= 0 {
		g.IncLevel()
	}
}

// IncLevel advances one level and restarts the gravity timer at the new speed.
func (g *Game) IncLevel() {
	g.level++
	g.timer = g.dropDelay()
	g.toNextLevel = g.opts.LinesPerLevel
	g.ctrl.PlayAnimation(AnimationLevelUp)
	g.log.Info("level up", "session", g.session, "level", g.level, "delay", g.gravity.Level(g.level))
}

func (g *Game) decLevel() {
	if g.level <= 1 {
		return
	}
	g.level--
	g.timer = g.dropDelay()
	g.log.Debug("level down", "session", g.session, "level", g.level)
}

// dropDelay returns the current gravity interval.
func (g *Game) dropDelay() time.Duration {
	if g.fastFall {
		return g.gravity.Fast(g.level)
	}
	return g.gravity.Level(g.level)
}

// ApplyGravity advances the gravity timer by one frame.
func (g *Game) ApplyGravity() {
	g.timer -= g.opts.Frame
	for g.timer <= 0 && g.state == StatePlay {
		if g.cur.MoveDown(g.grid) {
			g.timer += g.dropDelay()
			g.locked = false
			if g.fastFall {
				g.score += softDropPoints
			}
			continue
		}
		g.fastFall = false
		if g.locked {
			g.locked = false
			g.PlaceShape()
			g.timer = g.dropDelay()
		} else {
			g.armLock()
		}
	}
}

// armLock grants the lock-delay grace period to a resting piece. Re-arming
// an already granted grace period counts against MaxLockResets.
func (g *Game) armLock() {
	if g.state != StatePlay || g.cur.CanMoveDown(g.grid) {
		return
	}
	if g.locked {
		if g.opts.MaxLockResets > 0 && g.lockResets >= g.opts.MaxLockResets {
			return
		}
		g.lockResets++
	}
	g.locked = true
	g.timer = g.opts.LockDelay
}

// InstantDrop drops the current shape until it rests and places it at once.
func (g *Game) InstantDrop() {
	if g.state != StatePlay {
		return
	}
	rows := 0
	for g.cur.MoveDown(g.grid) {
		rows++
	}
	g.score += rows * hardDropPoints
	g.locked = false
	g.PlaceShape()
	g.timer = g.dropDelay()
}

// ToggleFastDrop switches fast-fall and restarts the timer at the matching delay.
func (g *Game) ToggleFastDrop(on bool) {
	g.fastFall = on
	g.timer = g.dropDelay()
}

// Tick runs one frame: an input pass followed by gravity while playing.
// Keyboard commands take priority; when kb carries any command the
// controller is not polled this tick. A nil pad keeps the previous one.
func (g *Game) Tick(kb Commands, pad Controller) {
	if pad != nil {
		g.ctrl = pad
	}
	if g.state == StateExit {
		return
	}
	g.ticks++

	if kb.Any() {
		g.applyKeyboard(kb)
	} else {
		g.applyController(g.ctrl.Poll())
	}

	if g.state == StatePlay {
		g.ApplyGravity()
	}
}

func (g *Game) applyKeyboard(kb Commands) {
	if g.state == StateStart || g.state == StateGameOver {
		if kb.Start {
			g.Play()
		}
		return
	}
	if g.state != StatePlay {
		return
	}

	if kb.FastDrop != FastDropUnchanged {
		g.ToggleFastDrop(kb.FastDrop == FastDropOn)
	}
	if kb.Hold {
		g.HoldShape()
	}
	if kb.Move != 0 {
		g.cur.Move(g.grid, kb.Move)
	}
	if kb.Rotate != 0 {
		g.cur.Rotate(g.grid, kb.Rotate)
	}
	if g.opts.Debug {
		g.applyDebug(kb)
	}
	if kb.InstantDrop {
		g.InstantDrop()
	}
	if kb.touchesPiece() {
		g.armLock()
	}
}

func (g *Game) applyDebug(kb Commands) {
	switch {
	case kb.LevelDelta > 0:
		g.IncLevel()
	case kb.LevelDelta < 0:
		g.decLevel()
	}
	if kb.NudgeUp {
		g.cur.MoveUp(g.grid)
	}
	if kb.Skip {
		g.log.Debug("skip piece", "session", g.session, "kind", g.cur.Kind)
		g.LoadNewShape()
	}
	if kb.CycleNext != 0 && g.state == StatePlay {
		g.LoadNewShape()
		if g.state != StatePlay {
			return
		}
		dir := 1
		if kb.CycleNext < 0 {
			dir = -1
		}
		g.cycle = (g.cycle + NumKinds + dir) % NumKinds
		g.next = Spawn(Kind(g.cycle), g.opts.Cols)
		g.log.Debug("cycle next", "session", g.session, "kind", g.next.Kind)
	}
}

func (g *Game) applyController(s ControllerState) {
	e := g.pad.Update(s)
	if g.state == StateStart || g.state == StateGameOver {
		if !s.Start {
			return
		}
		g.Play()
	}
	if g.state != StatePlay {
		return
	}

	if e.Hold {
		g.HoldShape()
	}
	lock := false
	if e.MoveChanged {
		lock = g.cur.Move(g.grid, e.Move)
	}
	if e.RotateChanged {
		lock = g.cur.Rotate(g.grid, e.Rotate) || lock
	}
	if e.FastDropChanged {
		lock = false
		g.ToggleFastDrop(e.FastDrop)
	}
	if e.InstantDrop {
		lock = false
		g.InstantDrop()
	}
	if lock {
		g.armLock()
	}
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Level returns the current level.
func (g *Game) Level() int { return g.level }

// RowsToNextLevel returns how many row clears remain before the next level.
func (g *Game) RowsToNextLevel() int { return g.toNextLevel }

// Score returns the session score.
func (g *Game) Score() int { return g.score }

// Lines returns the rows cleared this session.
func (g *Game) Lines() int { return g.lines }

// Current returns a copy of the active shape.
func (g *Game) Current() Shape { return g.cur }

// Next returns the kind that spawns after the current shape.
func (g *Game) Next() Kind { return g.next.Kind }

// HeldKind returns the held kind, if any.
func (g *Game) HeldKind() (Kind, bool) { return g.held, g.hasHeld }

// HoldUsed reports whether hold was already used for the current piece.
func (g *Game) HoldUsed() bool { return g.holdUsed }

// Grid returns the playfield. Callers must not retain it across ticks.
func (g *Game) Grid() *Grid { return g.grid }

// Locked reports whether the lock-delay grace period is running.
func (g *Game) Locked() bool { return g.locked }

// FastFall reports whether fast-fall is on.
func (g *Game) FastFall() bool { return g.fastFall }

// Timer returns the time left until the next gravity step.
func (g *Game) Timer() time.Duration { return g.timer }

// DropDelay returns the current gravity interval.
func (g *Game) DropDelay() time.Duration { return g.dropDelay() }

// Session returns the id of the current session, empty before the first Play.
func (g *Game) Session() string { return g.session }

// Ticks returns the number of frames processed.
func (g *Game) Ticks() uint64 { return g.ticks }
