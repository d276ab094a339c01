package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (marathon if omitted).

Controls:
  Left/Right, A/D  - Move
  Up/X/E, Z        - Rotate clockwise, counter-clockwise
  Down/S           - Soft drop
  Space            - Hard drop
  C/Tab            - Hold
  P/Esc            - Pause
  Q/Ctrl+C         - Quit
  ?                - Toggle full help

Modes:
  marathon - Levels rise every 10 cleared rows
  practice - Level stays put, debug keys enabled

Difficulty options:
  easy   - Level 1, longer lock delay
  normal - Level 1, default lock delay
  hard   - Level 8, short lock delay, fewer lock resets
  fixed  - No level progression

Examples:
  blocks play
  blocks play practice
  blocks play --difficulty hard
  blocks play --seed 42 --log-file blocks.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	mode := string(tetris.ModeMarathon)
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'blocks list' to see available modes", mode)
	}

	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}
	preset, _ := config.ParsePreset(flagDifficulty)

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(preset)
	tetris.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     seed,
	}

	game, err := registry.Create(mode)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	debug := mode == string(tetris.ModePractice) || cfg.Debug
	logger.Info("starting", "mode", mode, "difficulty", preset, "fps", rc.TickRate, "seed", seed)

	return tui.Run(game, rc, tui.DefaultKeyMap(debug), logger)
}
