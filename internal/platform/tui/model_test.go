package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kabuto/internal/core"
)

type stepCall struct {
	in      core.InputFrame
	elapsed time.Duration
}

// recordingGame captures the frames the model feeds it.
type recordingGame struct {
	calls  []stepCall
	cues   []core.Cue
	resets int
}

func (g *recordingGame) ID() string                   { return "recording" }
func (g *recordingGame) Title() string                { return "Recording" }
func (g *recordingGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) State() core.GameState        { return core.GameState{Score: len(g.calls)} }
func (g *recordingGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "field")
}

func (g *recordingGame) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	g.calls = append(g.calls, stepCall{in: in.Clone(), elapsed: elapsed})
	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.State(), Cues: cues}
}

type recordingPlayer struct {
	played []core.Cue
	closed bool
}

func (p *recordingPlayer) Play(c core.Cue) { p.played = append(p.played, c) }
func (p *recordingPlayer) PlayHit()        { p.Play(core.CueHit) }
func (p *recordingPlayer) PlayShot()       { p.Play(core.CueShot) }
func (p *recordingPlayer) Close()          { p.closed = true }

func newTestModel() (Model, *recordingGame, *recordingPlayer) {
	g := &recordingGame{}
	p := &recordingPlayer{}
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewModel(g, p, nil, cfg), g, p
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestTickMeasuresElapsedTime(t *testing.T) {
	m, g, _ := newTestModel()
	start := time.Unix(1000, 0)

	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(40*time.Millisecond)))

	if len(g.calls) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.calls))
	}
	if g.calls[0].elapsed != 0 {
		t.Errorf("first frame elapsed = %v, expected 0", g.calls[0].elapsed)
	}
	if g.calls[1].elapsed != 40*time.Millisecond {
		t.Errorf("second frame elapsed = %v, expected 40ms", g.calls[1].elapsed)
	}
	if m.State().Score != 2 {
		t.Errorf("State() should follow the latest step, got %+v", m.State())
	}
}

func TestFireKeyIsSingleRelease(t *testing.T) {
	m, g, _ := newTestModel()
	now := time.Unix(1000, 0)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(now))
	m = update(t, m, TickMsg(now.Add(time.Second/60)))

	if !g.calls[0].in.JustReleased(core.ActionFire) {
		t.Error("space should release fire on the next frame")
	}
	if g.calls[1].in.JustReleased(core.ActionFire) {
		t.Error("release must not repeat on later frames")
	}
}

func TestMouseReleaseFires(t *testing.T) {
	m, g, _ := newTestModel()

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Unix(1000, 0)))
	if g.calls[0].in.JustReleased(core.ActionFire) {
		t.Error("press alone must not fire")
	}

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg(time.Unix(1001, 0)))
	if !g.calls[1].in.JustReleased(core.ActionFire) {
		t.Error("left release should fire")
	}
}

func TestCuesArePlayed(t *testing.T) {
	m, g, p := newTestModel()
	g.cues = []core.Cue{core.CueShot, core.CueHit}

	update(t, m, TickMsg(time.Unix(1000, 0)))

	if len(p.played) != 2 || p.played[0] != core.CueShot || p.played[1] != core.CueHit {
		t.Errorf("played = %v", p.played)
	}
}

func TestQuitClosesAudio(t *testing.T) {
	m, _, p := newTestModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if !p.closed {
		t.Error("audio should be closed on quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestViewReservesHelpFooter(t *testing.T) {
	m, _, _ := newTestModel()
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 10})

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 10 {
		t.Fatalf("view has %d lines, expected 10", len(lines))
	}
	if !strings.Contains(lines[0], "field") {
		t.Errorf("first line should hold the game, got %q", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "fire") {
		t.Errorf("last line should be the help footer, got %q", lines[len(lines)-1])
	}
}

func TestInitResetsGame(t *testing.T) {
	m, g, _ := newTestModel()
	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the frame loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}
