package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the CLI.
const (
	EnvConfig   = "KABUTO_CONFIG"    // Config file path, same as --config
	EnvFPS      = "KABUTO_FPS"       // Presentation frame rate, same as --fps
	EnvMute     = "KABUTO_MUTE"      // Disable audio when true
	EnvLogLevel = "KABUTO_LOG_LEVEL" // debug, info, warn, error
)

// Env holds overrides read from the process environment.
type Env struct {
	ConfigPath string
	FPS        int
	Mute       bool
	LogLevel   string
}

// LoadEnv reads the given dotenv files (default ".env") into the process
// environment without overriding variables that are already set, then
// collects the KABUTO_* overrides. Missing dotenv files are not an error.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	env := Env{
		ConfigPath: os.Getenv(EnvConfig),
		LogLevel:   os.Getenv(EnvLogLevel),
	}

	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			return Env{}, fmt.Errorf("config: %s must be a positive integer, got %q", EnvFPS, v)
		}
		env.FPS = fps
	}
	if v := os.Getenv(EnvMute); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return Env{}, fmt.Errorf("config: %s must be a boolean, got %q", EnvMute, v)
		}
		env.Mute = mute
	}
	return env, nil
}
