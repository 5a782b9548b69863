package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kabuto/internal/audio"
	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/registry"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	sound      audio.Player
	renderer   *ScreenRenderer
	keys       KeyMap
	help       help.Model
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil player discards sound cues; a nil renderer uses the default output.
func NewModel(game registry.Game, sound audio.Player, renderer *ScreenRenderer, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sound == nil {
		sound = audio.Nop{}
	}
	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		sound:      sound,
		renderer:   renderer,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		holds:      NewHoldTracker(DefaultHoldWindow),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		if MapMouse(msg) == core.ActionFire {
			m.inputFrame.Release(core.ActionFire)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The world has a fixed size; only the drawing surface changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
// Every key event is a complete press-release cycle for edge-triggered
// actions; directions go through the hold tracker.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.sound.Close()
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(a, now)
	case core.ActionFire, core.ActionPause, core.ActionRestart:
		m.inputFrame.Release(a)
		if a == core.ActionRestart {
			m.holds.Reset()
		}
	}
	return m, nil
}

// handleTick advances the game by the time since the previous frame and
// plays the cues it raised.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.holds.Apply(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame, elapsed)
	m.gameState = result.State
	for _, c := range result.Cues {
		m.sound.Play(c)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.FPS)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".kabuto", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// State returns the game state after the latest frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the game with the key help below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	h := m.config.ScreenH - lipgloss.Height(footer)
	if h < 1 {
		h = 1
	}
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderer.Render(m.screen), footer)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, sound audio.Player, cfg core.RuntimeConfig) error {
	model := NewModel(game, sound, nil, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse release fires
	)

	_, err := p.Run()
	return err
}
