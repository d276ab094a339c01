package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tetrisFile = "tetris.yaml"

// LoadTetris loads the engine configuration.
// Search order: customPath -> ~/.blocks/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(tetrisFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", tetrisFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable, malformed or invalid
// files are skipped so the next source in the search order is used.
func tryLoad(path string) (TetrisConfig, bool) {
	cfg := DefaultTetrisConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocks", "configs", filename)
}

// Validate reports every out-of-range value in the config.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Cols < 4 {
		errs = append(errs, fmt.Errorf("board.cols must be at least 4, got %d", c.Board.Cols))
	}
	if c.Board.Rows < 4 {
		errs = append(errs, fmt.Errorf("board.rows must be at least 4, got %d", c.Board.Rows))
	}
	if c.Board.PreviewSize < 4 {
		errs = append(errs, fmt.Errorf("board.preview_size must be at least 4, got %d", c.Board.PreviewSize))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Gravity.MinDropDelay <= 0 {
		errs = append(errs, fmt.Errorf("gravity.min_drop_delay must be positive, got %s", c.Gravity.MinDropDelay))
	}
	if c.Gravity.SoftDropFactor < 1 {
		errs = append(errs, fmt.Errorf("gravity.soft_drop_factor must be at least 1, got %d", c.Gravity.SoftDropFactor))
	}
	if c.Lock.Delay < 0 {
		errs = append(errs, fmt.Errorf("lock.delay must not be negative, got %s", c.Lock.Delay))
	}
	if c.Lock.MaxResets < 0 {
		errs = append(errs, fmt.Errorf("lock.max_resets must not be negative, got %d", c.Lock.MaxResets))
	}
	if c.Leveling.LinesPerLevel < 0 {
		errs = append(errs, fmt.Errorf("leveling.lines_per_level must not be negative, got %d", c.Leveling.LinesPerLevel))
	}
	if c.Leveling.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("leveling.start_level must be at least 1, got %d", c.Leveling.StartLevel))
	}
	if c.Input.SoftDropHold < 0 {
		errs = append(errs, fmt.Errorf("input.soft_drop_hold must not be negative, got %s", c.Input.SoftDropHold))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Marshal renders the config as YAML.
func (c TetrisConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
