package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W  - Flap
  X           - Super flap
  Enter/Click - Start
  R/Click     - Play again (after game over)
  Ctrl+S      - Save a screenshot to ~/.flappy/screenshots
  Q/Esc       - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml
  flappy play --log-file flappy.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	set, err := assets.Load()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	logger.Info("starting game", "seed", seed, "size", fmt.Sprintf("%dx%d", width, height), "collision", gameCfg.Collision.Mode)

	game := flappy.New(gameCfg, seed)
	if err := tui.Run(game, set, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
