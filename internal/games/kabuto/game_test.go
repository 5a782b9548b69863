package kabuto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kabuto/internal/config"
	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/registry"
	"github.com/vovakirdan/kabuto/internal/sim"
)

const frame = 50 * time.Millisecond // three ticks at 60 ticks/s

func release(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Release(a)
	return in
}

func closeRangeConfig() config.KabutoConfig {
	cfg := config.DefaultKabutoConfig()
	cfg.Enemy.SpawnX = 0
	cfg.Enemy.SpawnY = sim.ActorHome(cfg).Y + 100
	cfg.Enemy.Speed = 0
	return cfg
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists(ID))
	g, err := registry.Create(ID)
	require.NoError(t, err)
	assert.Equal(t, "Kabuto", g.Title())
}

func TestStepRunsOwedTicks(t *testing.T) {
	g := New()

	res := g.Step(core.InputFrame{}, frame)
	assert.Equal(t, 3, res.Ticks)
	assert.Equal(t, uint64(3), g.Simulation().Tick())

	res = g.Step(core.InputFrame{}, 0)
	assert.Zero(t, res.Ticks)
}

func TestStepReportsCues(t *testing.T) {
	g := NewWithConfig(closeRangeConfig(), nil)

	res := g.Step(release(core.ActionFire), frame)
	assert.Equal(t, []core.Cue{core.CueShot}, res.Cues)

	var hits int
	for range 4 {
		res = g.Step(core.InputFrame{}, frame)
		for _, c := range res.Cues {
			if c == core.CueHit {
				hits++
			}
		}
	}
	assert.Equal(t, 1, hits)
	assert.Equal(t, 100, g.State().Score)
}

func TestPauseStopsTime(t *testing.T) {
	g := New()

	res := g.Step(release(core.ActionPause), frame)
	assert.True(t, res.State.Paused)
	assert.Zero(t, res.Ticks)

	res = g.Step(core.InputFrame{}, time.Second)
	assert.Zero(t, res.Ticks)
	assert.Zero(t, g.Simulation().Tick())

	res = g.Step(release(core.ActionPause), frame)
	assert.False(t, res.State.Paused)
	assert.Equal(t, 3, res.Ticks)
}

func TestRestartResetsScore(t *testing.T) {
	g := NewWithConfig(closeRangeConfig(), nil)
	g.Step(release(core.ActionFire), frame)
	for range 4 {
		g.Step(core.InputFrame{}, frame)
	}
	require.Equal(t, 100, g.State().Score)

	g.Step(release(core.ActionRestart), frame)
	assert.Zero(t, g.State().Score)
	assert.Zero(t, g.Simulation().Tick())
}

func TestRender(t *testing.T) {
	g := New()
	g.Step(core.InputFrame{}, frame)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.True(t, strings.HasPrefix(screen.Row(0), " Score: 0"))
	assert.Equal(t, '┌', screen.Get(0, 1))
	assert.Equal(t, '┘', screen.Get(79, 23))

	out := screen.String()
	assert.Contains(t, screen.Row(21), "▲", "actor sits just above the floor:\n%s", out)
	assert.NotContains(t, screen.Row(10), "▲")
	assert.Contains(t, out, "█", "adversary drawn")
}

func TestRenderSkipsOffscreenProjectiles(t *testing.T) {
	g := New()
	g.Step(release(core.ActionFire), frame)
	for range 60 {
		g.Step(core.InputFrame{}, frame)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Equal(t, 1, g.Simulation().Counts().Projectiles)
	assert.NotContains(t, screen.String(), "|")
}

func TestRenderTinyScreen(t *testing.T) {
	g := New()
	screen := core.NewScreen(2, 2)
	assert.NotPanics(t, func() { g.Render(screen) })
}

func TestViewportCorners(t *testing.T) {
	v := newViewport(config.DefaultKabutoConfig(), 82, 26)

	assert.Equal(t, core.NewRect(1, 2, 80, 23), v.field)

	topLeft := v.cells(core.V(-640, 384), core.V(1, 1))
	assert.Equal(t, 1, topLeft.X)
	assert.Equal(t, 2, topLeft.Y)

	bottomRight := v.cells(core.V(640, -384), core.V(1, 1))
	assert.Equal(t, 80, bottomRight.X)
	assert.Equal(t, 24, bottomRight.Y)

	centre := v.cells(core.V(0, 0), core.V(50, 50))
	assert.Equal(t, 4, centre.W)
	assert.GreaterOrEqual(t, centre.H, 1)
}
