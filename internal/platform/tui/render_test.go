package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/kabuto/internal/core"
)

func TestScreenRendererKeepsLayout(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.SetColored(1, 0, 'x', core.ColorRed)
	s.Set(2, 1, 'y')

	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.Ascii)

	got := NewScreenRenderer(r).Render(s)
	if got != " x   \n  y  " {
		t.Errorf("Render() = %q", got)
	}
}

func TestScreenRendererColors(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.SetColored(1, 0, 'b', core.ColorRed)
	s.SetColored(2, 0, 'c', core.Color(200))

	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.ANSI256)

	got := NewScreenRenderer(r).Render(s)
	if !strings.Contains(got, "ab") {
		t.Errorf("same-colored cells should share one run: %q", got)
	}
	if !strings.HasSuffix(got, "c") {
		t.Errorf("unknown colors render plain: %q", got)
	}
}
