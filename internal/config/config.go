// Package config provides YAML-based configuration loading and
// difficulty presets for the blocks engine.
package config

import "time"

// TetrisConfig contains all tunables of the falling-block engine.
type TetrisConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Timing   TimingConfig   `yaml:"timing"`
	Gravity  GravityConfig  `yaml:"gravity"`
	Lock     LockConfig     `yaml:"lock"`
	Leveling LevelingConfig `yaml:"leveling"`
	Input    InputConfig    `yaml:"input"`
	Debug    bool           `yaml:"debug"` // Enables level/queue debug commands
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Cols        int `yaml:"cols"`
	Rows        int `yaml:"rows"`
	PreviewSize int `yaml:"preview_size"` // Width of the next/hold panels, in cells
}

// TimingConfig defines the fixed simulation step.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second; one gravity step per frame
}

// GravityConfig shapes the level-based drop delay curve.
type GravityConfig struct {
	MinDropDelay   time.Duration `yaml:"min_drop_delay"`   // Floor for every drop delay
	SoftDropFactor int           `yaml:"soft_drop_factor"` // Drop delay divisor while fast-falling
}

// LockConfig defines the grace period granted when a piece lands.
type LockConfig struct {
	Delay     time.Duration `yaml:"delay"`
	MaxResets int           `yaml:"max_resets"` // Re-arms allowed per piece, 0 = unlimited
}

// LevelingConfig defines level progression.
type LevelingConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"` // 0 disables progression
	StartLevel    int `yaml:"start_level"`
}

// InputConfig defines keyboard handling details.
type InputConfig struct {
	// SoftDropHold keeps fast-fall on after the last soft-drop key press.
	// Terminals report presses and auto-repeats but never releases.
	SoftDropHold time.Duration `yaml:"soft_drop_hold"`
}

// FrameDuration returns the length of one simulation tick.
func (c TetrisConfig) FrameDuration() time.Duration {
	if c.Timing.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Timing.TickRate)
}
