package audio

import (
	"sync"

	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/logger"
	"github.com/alexisbeaulieu97/toastlab/internal/ports"
)

// ScheduledTone is a tone placed on the backend clock.
type ScheduledTone struct {
	Tone
	// At is the absolute backend time the tone starts.
	At float64
	// Peak is Gain scaled by the playback volume.
	Peak float64
}

// Backend is an audio output. Schedule must return without waiting for the
// tones to finish.
type Backend interface {
	// Now returns the backend clock in seconds.
	Now() float64
	Suspended() bool
	Resume() error
	Schedule(tones []ScheduledTone) error
}

// Factory constructs a backend. It is called at most once per Synth.
type Factory func() (Backend, error)

// Synth plays recipes on a lazily constructed backend.
type Synth struct {
	mu      sync.Mutex
	factory Factory
	backend Backend
	failed  bool
	logger  *logger.Logger
}

var _ ports.AudioEngine = (*Synth)(nil)

// NewSynth returns a synth that builds its backend on the first Play.
func NewSynth(factory Factory, log *logger.Logger) *Synth {
	return &Synth{factory: factory, logger: log.WithComponent("audio")}
}

// Play schedules preset at volume. It never blocks and does nothing when the
// backend is unavailable.
func (s *Synth) Play(preset toast.SoundPreset, volume float64) {
	if s == nil {
		return
	}
	backend := s.ensureBackend()
	if backend == nil {
		return
	}

	if backend.Suspended() {
		if err := backend.Resume(); err != nil {
			s.logger.Error(err, "audio backend could not resume")
			return
		}
	}

	tones := Schedule(preset, volume, backend.Now())
	if err := backend.Schedule(tones); err != nil {
		s.logger.Error(err, "failed to schedule tones")
	}
}

// Available reports whether the backend was built or has not been tried yet.
func (s *Synth) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.failed
}

func (s *Synth) ensureBackend() Backend {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend != nil || s.failed {
		return s.backend
	}
	if s.factory == nil {
		s.failed = true
		return nil
	}
	backend, err := s.factory()
	if err != nil || backend == nil {
		s.failed = true
		s.logger.Warn("audio unavailable, feedback sounds disabled")
		return nil
	}
	s.backend = backend
	return backend
}

// Schedule places the recipe of preset on a clock reading now. Volume is
// clamped to [0,1].
func Schedule(preset toast.SoundPreset, volume, now float64) []ScheduledTone {
	volume = clamp(volume)
	recipe := Recipe(preset)
	out := make([]ScheduledTone, 0, len(recipe))
	for _, tone := range recipe {
		out = append(out, ScheduledTone{
			Tone: tone,
			At:   now + tone.Start,
			Peak: tone.Gain * volume,
		})
	}
	return out
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
