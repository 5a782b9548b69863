package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/sim"
)

var (
	flagTicks     int
	flagFireEvery int
	flagMove      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation headless",
	Long: `Run a fixed number of simulation ticks without a terminal UI and print
the final score, entity counts and a state digest.

The digest only depends on the configuration and the scripted input, so two
runs with the same flags print the same value.

Examples:
  kabuto run --ticks 600
  kabuto run --ticks 600 --fire-every 20 --move left`,
	Args: cobra.NoArgs,
	Run:  runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	runCmd.Flags().IntVar(&flagFireEvery, "fire-every", 0, "Fire once every N ticks (0 = never)")
	runCmd.Flags().StringVar(&flagMove, "move", "none", "Held direction: left, right, none")
}

func runHeadless(_ *cobra.Command, _ []string) {
	var move core.Action
	switch flagMove {
	case "left":
		move = core.ActionLeft
	case "right":
		move = core.ActionRight
	case "none", "":
		move = core.ActionNone
	default:
		fmt.Fprintf(os.Stderr, "Error: --move must be left, right or none, got %q\n", flagMove)
		os.Exit(1)
	}
	if flagTicks < 0 || flagFireEvery < 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks and --fire-every must not be negative")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := sim.New(sim.Options{Config: cfg, Logger: logger})
	for i := 1; i <= flagTicks; i++ {
		in := core.NewInputFrame()
		if move != core.ActionNone {
			in.Hold(move)
		}
		if flagFireEvery > 0 && i%flagFireEvery == 0 {
			in.Release(core.ActionFire)
		}
		s.Step(in)
	}

	c := s.Counts()
	fmt.Printf("ticks:       %d\n", s.Tick())
	fmt.Printf("score:       %d\n", s.Score())
	fmt.Printf("adversaries: %d\n", c.Adversaries)
	fmt.Printf("projectiles: %d\n", c.Projectiles)
	fmt.Printf("digest:      %016x\n", s.Digest())
}
