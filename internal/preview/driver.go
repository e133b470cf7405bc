package preview

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/logger"
	"github.com/alexisbeaulieu97/toastlab/internal/ports"
)

// DefaultDebounce is how long the configuration must stay unchanged before
// feedback fires.
const DefaultDebounce = 200 * time.Millisecond

// Timer is a pending callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Options configures a Driver. Nil collaborators are skipped.
type Options struct {
	Notifier  ports.Notifier
	Audio     ports.AudioEngine
	Publisher ports.EventPublisher
	Scheduler Scheduler
	Debounce  time.Duration
	Logger    *logger.Logger
}

// Driver debounces observations and fires at most one feedback per settled
// state. At most one callback is pending at any time.
type Driver struct {
	mu         sync.Mutex
	opts       Options
	seen       bool
	last       Fingerprint
	triggered  bool
	pending    Timer
	generation uint64
	closed     bool
}

// NewDriver creates a driver. The first observation only establishes the
// starting state and never produces feedback.
func NewDriver(opts Options) *Driver {
	if opts.Scheduler == nil {
		opts.Scheduler = realScheduler{}
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	opts.Logger = opts.Logger.WithComponent("preview")
	return &Driver{opts: opts}
}

// Observe records a configuration change while kind is being edited. Any
// pending callback is cancelled and rescheduled.
func (d *Driver) Observe(ctx context.Context, cfg toast.Config, editing toast.Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if !d.seen {
		d.seen = true
		return
	}

	if d.pending != nil {
		d.pending.Stop()
	}
	d.generation++
	generation := d.generation
	snapshot := cfg.Clone()
	d.pending = d.opts.Scheduler.AfterFunc(d.opts.Debounce, func() {
		d.fire(ctx, generation, snapshot, editing)
	})
}

// Close cancels any pending callback. Later observations are ignored.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.generation++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

// Pending reports whether a callback is scheduled.
func (d *Driver) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Driver) fire(ctx context.Context, generation uint64, cfg toast.Config, editing toast.Kind) {
	d.mu.Lock()
	if d.closed || generation != d.generation {
		d.mu.Unlock()
		return
	}
	d.pending = nil

	fingerprint := FingerprintOf(cfg, editing)
	changed := !d.triggered || fingerprint != d.last
	if changed {
		d.last = fingerprint
		d.triggered = true
	}
	d.mu.Unlock()

	if changed {
		d.trigger(ctx, cfg, editing)
		return
	}
	d.cue(ctx, cfg)
}

func (d *Driver) trigger(ctx context.Context, cfg toast.Config, kind toast.Kind) {
	sound := toast.SoundPop
	if cfg.SoundEnabled {
		sound = cfg.SoundPreset
	}
	if d.opts.Audio != nil {
		d.opts.Audio.Play(sound, cfg.SoundVolume)
	}
	if d.opts.Notifier != nil {
		d.opts.Notifier.Notify(BuildToast(cfg, kind))
	}

	d.opts.Logger.WithFields(map[string]any{"kind": string(kind), "sound": string(sound)}).Debug("preview triggered")
	d.publish(ctx, ports.EventPreviewTriggered, map[string]interface{}{
		"kind":  string(kind),
		"theme": cfg.Theme.ID,
		"sound": string(sound),
	})
}

func (d *Driver) cue(ctx context.Context, cfg toast.Config) {
	if d.opts.Audio != nil {
		d.opts.Audio.Play(toast.SoundPop, cfg.SoundVolume)
	}
	d.publish(ctx, ports.EventPreviewCue, nil)
}

func (d *Driver) publish(ctx context.Context, eventType string, payload map[string]interface{}) {
	if d.opts.Publisher == nil {
		return
	}
	if err := d.opts.Publisher.Publish(ctx, ports.NewEvent(eventType, payload)); err != nil {
		d.opts.Logger.Error(err, "failed to publish "+eventType)
	}
}
