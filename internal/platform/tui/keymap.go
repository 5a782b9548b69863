package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kabuto/internal/core"
)

// KeyMap holds the key bindings of a game session.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
	Shot    key.Binding // Screenshot of the current frame
}

// DefaultKeyMap returns the default bindings: arrows or a/d to move, space to fire.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Fire:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space/click", "fire")),
		Pause:   key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Shot:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Pause, k.Restart, k.Shot},
		{k.Help, k.Quit},
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MapMouse translates a mouse message to a game action: releasing the
// primary button fires. Legacy mouse encodings do not say which button was released, so an
// unattributed release counts as the primary one.
func MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action != tea.MouseActionRelease {
		return core.ActionNone
	}
	if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
		return core.ActionFire
	}
	return core.ActionNone
}

// DefaultHoldWindow is how long a direction stays held after its last key event.
// It spans the usual gap between auto-repeat events, including the first one.
const DefaultHoldWindow = 250 * time.Millisecond

// HoldTracker emulates key-up events. Terminals only report presses (and
// auto-repeats while a key is down), so a direction counts as held until no
// event for it arrived within the window.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a key event for a at now. Pressing a direction releases the
// opposite one immediately.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = now
}

// Apply marks every action still inside its window as held in f and forgets
// expired ones.
func (h *HoldTracker) Apply(f *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, a)
			continue
		}
		f.Hold(a)
	}
}

// Reset forgets every held action.
func (h *HoldTracker) Reset() {
	clear(h.last)
}
