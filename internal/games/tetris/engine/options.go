package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

// Options configures a Game. Zero fields fall back to the built-in defaults.
type Options struct {
	Cols, Rows     int
	Frame          time.Duration // Simulated time per tick
	LinesPerLevel  int           // 0 disables leveling
	StartLevel     int
	LockDelay      time.Duration
	MaxLockResets  int // 0 = unlimited
	MinDropDelay   time.Duration
	SoftDropFactor int
	Debug          bool
	Seed           int64

	Logger     *log.Logger
	Controller Controller // Receives animations when Tick is given no controller
}

// OptionsFromConfig maps a loaded config onto engine options.
func OptionsFromConfig(cfg config.TetrisConfig, seed int64) Options {
	return Options{
		Cols:           cfg.Board.Cols,
		Rows:           cfg.Board.Rows,
		Frame:          cfg.FrameDuration(),
		LinesPerLevel:  cfg.Leveling.LinesPerLevel,
		StartLevel:     cfg.Leveling.StartLevel,
		LockDelay:      cfg.Lock.Delay,
		MaxLockResets:  cfg.Lock.MaxResets,
		MinDropDelay:   cfg.Gravity.MinDropDelay,
		SoftDropFactor: cfg.Gravity.SoftDropFactor,
		Debug:          cfg.Debug,
		Seed:           seed,
	}
}

// withDefaults fills the fields that must never be zero.
func (o Options) withDefaults() Options {
	def := OptionsFromConfig(config.DefaultTetrisConfig(), o.Seed)
	if o.Cols <= 0 {
		o.Cols = def.Cols
	}
	if o.Rows <= 0 {
		o.Rows = def.Rows
	}
	if o.Frame <= 0 {
		o.Frame = def.Frame
	}
	if o.LinesPerLevel < 0 {
		o.LinesPerLevel = 0
	}
	if o.StartLevel < 1 {
		o.StartLevel = 1
	}
	if o.LockDelay < 0 {
		o.LockDelay = 0
	}
	if o.MaxLockResets < 0 {
		o.MaxLockResets = 0
	}
	if o.MinDropDelay <= 0 {
		o.MinDropDelay = def.MinDropDelay
	}
	if o.SoftDropFactor < 1 {
		o.SoftDropFactor = def.SoftDropFactor
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Controller == nil {
		o.Controller = NopController{}
	}
	return o
}
