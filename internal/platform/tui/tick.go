// Package tui provides the Bubble Tea integration for running games in a terminal.
// It handles the terminal UI loop, input mapping, sound cues, and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per presentation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a TickMsg after one frame at fps.
// The game measures elapsed time itself, so the frame rate only affects smoothness.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
