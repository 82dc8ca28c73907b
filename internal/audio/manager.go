package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and mixes short synthesized effects into it.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates an uninitialized manager. Play is a no-op until
// Initialize succeeds.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer. Safe to call more than
// once; only the first call touches the audio backend.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play mixes the tone for id into the running speaker and returns
// immediately. Effects are short one-shot streamers; the mixer drops them
// when they finish.
func (m *Manager) Play(id SoundID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.mixer.Add(tone(id))
}

// Cleanup silences all pending effects. beep provides no speaker Close;
// clearing the mixer is enough to avoid audio artifacts on exit.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.mixer.Clear()
	m.initialized = false
}
