package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
// It matches defaults/tetris.yaml and backs it up if the embed is unreadable.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Cols:        10,
			Rows:        20,
			PreviewSize: 4,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Gravity: GravityConfig{
			MinDropDelay:   time.Millisecond,
			SoftDropFactor: 20,
		},
		Lock: LockConfig{
			Delay:     500 * time.Millisecond,
			MaxResets: 15,
		},
		Leveling: LevelingConfig{
			LinesPerLevel: 10,
			StartLevel:    1,
		},
		Input: InputConfig{
			SoftDropHold: 550 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
