package audio

import (
	"io"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/toastlab/internal/logger"
)

// Recorder is an in-memory backend that keeps every scheduled tone.
type Recorder struct {
	mu        sync.Mutex
	clock     float64
	suspended bool
	resumeErr error
	tones     []ScheduledTone
}

// NewRecorder returns a recorder whose clock starts at zero.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Factory returns a Factory handing out r.
func (r *Recorder) Factory() Factory {
	return func() (Backend, error) { return r, nil }
}

func (r *Recorder) Now() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clock
}

// SetClock moves the recorder clock.
func (r *Recorder) SetClock(seconds float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clock = seconds
}

// Suspend marks the recorder suspended. Resume fails with err when non-nil.
func (r *Recorder) Suspend(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suspended = true
	r.resumeErr = err
}

func (r *Recorder) Suspended() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.suspended
}

func (r *Recorder) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resumeErr != nil {
		return r.resumeErr
	}
	r.suspended = false
	return nil
}

func (r *Recorder) Schedule(tones []ScheduledTone) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tones = append(r.tones, tones...)
	return nil
}

// Tones returns every tone scheduled so far.
func (r *Recorder) Tones() []ScheduledTone {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ScheduledTone(nil), r.tones...)
}

// Bell is a terminal backend: it rings the bell once per sound and logs the
// tones it would have synthesized.
type Bell struct {
	mu      sync.Mutex
	out     io.Writer
	started time.Time
	logger  *logger.Logger
}

// NewBell returns a bell writing to out.
func NewBell(out io.Writer, log *logger.Logger) *Bell {
	return &Bell{out: out, started: time.Now(), logger: log.WithComponent("bell")}
}

// BellFactory builds a Bell on first use.
func BellFactory(out io.Writer, log *logger.Logger) Factory {
	return func() (Backend, error) {
		return NewBell(out, log), nil
	}
}

func (b *Bell) Now() float64 {
	return time.Since(b.started).Seconds()
}

func (b *Bell) Suspended() bool { return false }

func (b *Bell) Resume() error { return nil }

func (b *Bell) Schedule(tones []ScheduledTone) error {
	if len(tones) == 0 {
		return nil
	}
	for _, tone := range tones {
		b.logger.WithFields(map[string]any{
			"wave":      string(tone.Wave),
			"frequency": tone.Frequency,
			"at":        tone.At,
			"duration":  tone.Duration,
			"peak":      tone.Peak,
		}).Debug("tone")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.out == nil {
		return nil
	}
	_, err := io.WriteString(b.out, "\a")
	return err
}
