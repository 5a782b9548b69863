package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kabuto/internal/audio"
	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/games/kabuto"
	"github.com/vovakirdan/kabuto/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  A/D, Left/Right  - Move (hold)
  Space, Mouse     - Fire (on release)
  P/Esc            - Pause
  R                - Restart
  ?                - Toggle help
  Ctrl+S           - Save screenshot
  Q/Ctrl+C         - Quit

Examples:
  kabuto play
  kabuto play --mute
  kabuto play --config ./my-kabuto.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
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
		TickRate: gameCfg.World.TickRate,
		FPS:      flagFPS,
		Seed:     seed,
	}

	game := kabuto.NewWithConfig(gameCfg, logger)
	sound := audio.Open(gameCfg.Audio, flagMute, logger)

	if err := tui.Run(game, sound, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
