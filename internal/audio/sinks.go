package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kabuto/internal/config"
	"github.com/vovakirdan/kabuto/internal/core"
)

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(core.Cue) {}
func (Nop) PlayHit()      {}
func (Nop) PlayShot()     {}
func (Nop) Close()        {}

// Bell rings the terminal bell on hits. Shots are silent.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play rings the bell for CueHit.
func (b *Bell) Play(c core.Cue) {
	if c != core.CueHit || b.w == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, "\a")
}

func (b *Bell) PlayHit()  { b.Play(core.CueHit) }
func (b *Bell) PlayShot() { b.Play(core.CueShot) }
func (b *Bell) Close()    {}

// Open returns the player for a local session: Nop when audio is disabled or
// muted, otherwise an initialized SoundManager. A sound device that cannot be
// opened is logged and the game continues silently.
func Open(cfg config.AudioConfig, mute bool, logger *log.Logger) Player {
	if !cfg.Enabled || mute {
		return Nop{}
	}
	if logger == nil {
		logger = log.Default()
	}
	sm := NewSoundManager(cfg, logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
	}
	return sm
}
