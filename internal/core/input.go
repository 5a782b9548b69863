package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left (held)
	ActionRight          // D, Right arrow - move right (held)
	ActionFire           // Space, left mouse button - fire on release
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state sampled for one platform frame.
//
// Held actions are level-triggered: they stay set for as long as the key is down.
// Released actions are edge-triggered: they are set once per press-release cycle.
type InputFrame struct {
	Held     map[Action]bool
	Released map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:     make(map[Action]bool),
		Released: make(map[Action]bool),
	}
}

// Hold marks an action as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Release marks an action as released during this frame.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// IsHeld returns true if the action is held.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// JustReleased returns true if the action was released this frame.
func (f InputFrame) JustReleased(a Action) bool {
	return f.Released[a]
}

// Merge folds other into f. Holds are replaced by other's, releases accumulate.
// Used to carry an unconsumed release into the next simulation tick.
func (f *InputFrame) Merge(other InputFrame) {
	for k := range f.Held {
		delete(f.Held, k)
	}
	for k, v := range other.Held {
		if v {
			f.Hold(k)
		}
	}
	for k, v := range other.Released {
		if v {
			f.Release(k)
		}
	}
}

// ClearReleased drops all edge-triggered releases after they have been consumed.
func (f *InputFrame) ClearReleased() {
	for k := range f.Released {
		delete(f.Released, k)
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.ClearReleased()
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Released {
		clone.Released[k] = v
	}
	return clone
}
