// kabuto is a terminal shooter: move along the floor, fire at the falling
// blocks and watch them bounce off the walls.
//
// Usage:
//
//	kabuto list              - List available games
//	kabuto play              - Play in this terminal
//	kabuto serve             - Start SSH server for remote play
//	kabuto run               - Run the simulation headless and print a summary
//	kabuto config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set presentation frame rate (default: 60)
//	--seed <value>        - Set RNG seed passed to the game
//	--config <path>       - Use a specific kabuto.yaml
//	--log-level <level>   - debug, info, warn, error (default: warn)
//	--mute                - Disable audio
//
// Environment variables KABUTO_CONFIG, KABUTO_FPS, KABUTO_MUTE and
// KABUTO_LOG_LEVEL (also read from ./.env) apply when the flag is not given.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kabuto/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/kabuto/internal/games/kabuto"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagMute     bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kabuto",
	Short: "Kabuto - shoot falling blocks in your terminal",
	Long: `Kabuto is a small arcade shooter for the terminal.

Available commands:
  list     - Show all available games
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  run      - Headless simulation run
  config   - Print the effective configuration

Examples:
  kabuto play
  kabuto play --mute --fps 30
  kabuto serve --ssh :2222
  kabuto run --ticks 600 --fire-every 20`,
	PersistentPreRunE: applyEnv,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Presentation frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to kabuto.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills flags the user did not set from the environment and builds
// the shared logger.
func applyEnv(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("config") && env.ConfigPath != "" {
		flagConfig = env.ConfigPath
	}
	if !flags.Changed("fps") && env.FPS > 0 {
		flagFPS = env.FPS
	}
	if !flags.Changed("mute") && env.Mute {
		flagMute = true
	}
	if !flags.Changed("log-level") && env.LogLevel != "" {
		flagLogLevel = env.LogLevel
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kabuto",
		Level:           level,
	})
	return nil
}

// loadConfig loads the game tuning from --config or the default locations.
func loadConfig() (config.KabutoConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.KabutoConfig{}, err
	}
	logger.Debug("config loaded", "path", flagConfig, "tick_rate", cfg.World.TickRate)
	return cfg, nil
}
