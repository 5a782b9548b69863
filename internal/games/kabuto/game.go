// Package kabuto implements the beetle shooter: the player slides along the
// floor and shoots the adversaries that bounce around the field.
// The simulation lives in package sim; this package adapts it to the game
// registry and draws it into a terminal screen.
package kabuto

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kabuto/internal/config"
	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/registry"
	"github.com/vovakirdan/kabuto/internal/sim"
)

// ID is the registry identifier of the game.
const ID = "kabuto"

// Title is the display name of the game.
const Title = "Kabuto"

func init() {
	registry.Register(ID, Title, func() registry.Game { return New() })
}

// cueRecorder collects the sounds the simulation asks for during one Step.
type cueRecorder struct {
	cues []core.Cue
}

func (r *cueRecorder) PlayHit()  { r.cues = append(r.cues, core.CueHit) }
func (r *cueRecorder) PlayShot() { r.cues = append(r.cues, core.CueShot) }

func (r *cueRecorder) take() []core.Cue {
	if len(r.cues) == 0 {
		return nil
	}
	out := r.cues
	r.cues = nil
	return out
}

// Game adapts a sim.Simulation to registry.Game.
type Game struct {
	cfg     config.KabutoConfig
	logger  *log.Logger
	runtime core.RuntimeConfig
	sim     *sim.Simulation
	cues    *cueRecorder
	paused  bool
}

// New creates a game using the embedded default configuration.
func New() *Game {
	return NewWithConfig(config.Default(), nil)
}

// NewWithConfig creates a game with the given tuning and an optional logger
// for simulation debug output.
func NewWithConfig(cfg config.KabutoConfig, logger *log.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		logger: logger,
		cues:   &cueRecorder{},
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset starts a fresh simulation.
// The terminal size only affects rendering; the world keeps its configured size.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.paused = false
	g.cues = &cueRecorder{}
	g.sim = sim.New(sim.Options{
		Config: g.cfg,
		Audio:  g.cues,
		Logger: g.logger,
	})
}

// Step runs the ticks owed for elapsed and reports the cues they raised.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if in.JustReleased(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.JustReleased(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	n := g.sim.Advance(in, elapsed)
	return core.StepResult{
		State: g.State(),
		Ticks: n,
		Cues:  g.cues.take(),
	}
}

// State returns the current game state. The game has no losing condition.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.sim.Score(),
		Paused: g.paused,
	}
}

// Simulation exposes the running simulation for headless callers.
func (g *Game) Simulation() *sim.Simulation {
	return g.sim
}

// Render draws the field, the entities and the score HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 4 || dst.Height() < 4 {
		return
	}

	v := newViewport(g.cfg, dst.Width(), dst.Height())
	dst.DrawBox(v.frame, core.ColorWall)

	for _, sp := range g.sim.Sprites() {
		if sp.Kind == sim.KindWall || !v.visible(sp.Position, sp.Size) {
			continue
		}
		dst.DrawRect(v.cells(sp.Position, sp.Size), glyphs[sp.Kind], sp.Color)
	}

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.sim.Score()))
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume")
	}
}
