// Package audio plays the kabuto sound cues.
//
// SoundManager drives the local sound device through beep. Bell rings the
// terminal bell instead, for sessions where the player is remote. Nop discards
// everything. All three implement Player and the simulation's audio sink.
package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/kabuto/internal/config"
	"github.com/vovakirdan/kabuto/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player presents sound cues.
type Player interface {
	Play(c core.Cue)
	PlayHit()
	PlayShot()
	Close()
}

// tone is a synthesized fallback for a cue without a sound file.
type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[core.Cue]tone{
	core.CueHit:  {freq: 220, duration: 120 * time.Millisecond},
	core.CueShot: {freq: 880, duration: 50 * time.Millisecond},
}

// SoundManager plays cues on the local sound device.
// Until Initialize succeeds every Play call is a silent no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffers     map[core.Cue]*beep.Buffer
	volume      float64
	initialized bool
	log         *log.Logger
}

// NewSoundManager prepares the cue sounds described by cfg. A sound file that
// cannot be decoded is logged and replaced by a synthesized tone.
func NewSoundManager(cfg config.AudioConfig, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	sm := &SoundManager{
		mixer:   &beep.Mixer{},
		buffers: make(map[core.Cue]*beep.Buffer),
		volume:  cfg.Volume,
		log:     logger,
	}

	for cue, path := range map[core.Cue]string{
		core.CueHit:  cfg.HitSound,
		core.CueShot: cfg.ShotSound,
	} {
		if path == "" {
			continue
		}
		buf, err := loadWAV(path)
		if err != nil {
			sm.log.Warn("sound file unusable, using tone", "cue", cue, "err", err)
			continue
		}
		sm.buffers[cue] = buf
	}
	return sm
}

// Initialize opens the sound device and starts the mixer.
// Calling it again after success is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues the sound for c on the mixer.
func (sm *SoundManager) Play(c core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := sm.streamer(c)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayHit plays the hit sound.
func (sm *SoundManager) PlayHit() { sm.Play(core.CueHit) }

// PlayShot plays the shot sound.
func (sm *SoundManager) PlayShot() { sm.Play(core.CueShot) }

// Close silences the mixer. The speaker itself stays open for the process.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// streamer builds a fresh, volume-adjusted stream for c, or nil for an
// unknown cue.
func (sm *SoundManager) streamer(c core.Cue) beep.Streamer {
	var s beep.Streamer
	if buf, ok := sm.buffers[c]; ok {
		s = buf.Streamer(0, buf.Len())
	} else if t, ok := tones[c]; ok {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil
		}
		s = beep.Take(sampleRate.N(t.duration), sine)
	} else {
		return nil
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: sm.volume}
}

// loadWAV decodes a WAV file into memory at the mixer sample rate.
func loadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s contains no samples", path)
	}
	return buf, nil
}
