// Package store owns the session's notification configuration. Every mutation
// is validated before it is committed and keeps the derived stylesheet
// variables of the active theme in sync with the typed fields.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/alexisbeaulieu97/toastlab/internal/cssvars"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/logger"
	"github.com/alexisbeaulieu97/toastlab/internal/ports"
	"github.com/alexisbeaulieu97/toastlab/internal/theme"
	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

// Commit reasons carried by config.changed events.
const (
	ReasonInit         = "init"
	ReasonField        = "field"
	ReasonIcon         = "icon"
	ReasonTheme        = "theme"
	ReasonHostScheme   = "host-scheme"
	ReasonCSSVariables = "css-variables"
)

// Options configures a Store.
type Options struct {
	Workspace *theme.Workspace
	// ThemeID selects the starting theme. Empty means the first catalog entry.
	ThemeID string
	// Overrides are applied on top of the starting theme's defaults.
	Overrides *toast.Overrides
	Publisher ports.EventPublisher
	Logger    *logger.Logger
}

// Store is the single source of truth for the configuration.
type Store struct {
	mu        sync.Mutex
	cfg       toast.Config
	version   uint64
	workspace *theme.Workspace
	publisher ports.EventPublisher
	logger    *logger.Logger
}

// New builds the starting configuration: the base configuration, the starting
// theme's defaults, then opts.Overrides. Derived variables are written once.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Workspace == nil {
		return nil, errors.New("store: workspace is required")
	}

	id := opts.ThemeID
	if id == "" {
		first, err := opts.Workspace.Catalog().First()
		if err != nil {
			return nil, err
		}
		id = first.ID
	}
	selected, err := opts.Workspace.Select(id)
	if err != nil {
		return nil, err
	}

	cfg := toast.Base()
	if selected.Defaults != nil {
		cfg = selected.Defaults.Apply(cfg)
	}
	if opts.Overrides != nil {
		cfg = opts.Overrides.Apply(cfg)
	}
	cfg.Theme = selected
	if err := toast.Validate(cfg); err != nil {
		return nil, err
	}

	s := &Store{
		workspace: opts.Workspace,
		publisher: opts.Publisher,
		logger:    opts.Logger.WithComponent("store"),
	}
	cfg.Theme.CustomCSS = cssvars.Set(cfg.Theme.CustomCSS, DeriveVariables(cfg), cfg.PreviewMode)
	s.persist(cfg.Theme)
	s.cfg = cfg

	s.logger.WithFields(map[string]any{"theme": id}).Debug("configuration initialised")
	s.publish(ctx, ports.EventConfigChanged, map[string]interface{}{
		"reason":  ReasonInit,
		"version": uint64(0),
		"after":   cfg.Clone(),
	})
	return s, nil
}

// Snapshot returns a copy of the current configuration.
func (s *Store) Snapshot() toast.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// Version increases by one with every committed change.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Workspace returns the theme workspace backing the store.
func (s *Store) Workspace() *theme.Workspace {
	return s.workspace
}

// SetField merges p into the configuration.
func (s *Store) SetField(ctx context.Context, p Patch) error {
	return s.commit(ctx, ReasonField, false, func(cfg toast.Config) (toast.Config, error) {
		return p.apply(cfg), nil
	})
}

// SetIconConfig merges p into the icon configuration of kind. Other kinds are
// left untouched.
func (s *Store) SetIconConfig(ctx context.Context, kind toast.Kind, p IconPatch) error {
	if !kind.Valid() {
		return tlerrors.NewValidationError("iconconfigs", "unknown notification kind "+string(kind), nil)
	}
	return s.commit(ctx, ReasonIcon, false, func(cfg toast.Config) (toast.Config, error) {
		cfg.IconConfigs[kind] = p.Apply(cfg.IconConfigs[kind])
		return cfg, nil
	})
}

// SelectTheme makes theme id active and applies its default overrides. The
// theme's stylesheet comes from the workspace, so earlier session edits follow
// the workspace policy.
func (s *Store) SelectTheme(ctx context.Context, id string) error {
	selected, err := s.workspace.Select(id)
	if err != nil {
		return err
	}
	err = s.commit(ctx, ReasonTheme, true, func(cfg toast.Config) (toast.Config, error) {
		if selected.Defaults != nil {
			cfg = selected.Defaults.Apply(cfg)
		}
		cfg.Theme = selected
		return cfg, nil
	})
	if err != nil {
		return err
	}
	s.publish(ctx, ports.EventThemeSelected, map[string]interface{}{
		"theme":  selected.ID,
		"policy": string(s.workspace.Policy()),
	})
	return nil
}

// SyncHostScheme mirrors the host color scheme into the preview mode.
func (s *Store) SyncHostScheme(ctx context.Context, mode toast.PreviewMode) error {
	return s.commit(ctx, ReasonHostScheme, false, func(cfg toast.Config) (toast.Config, error) {
		cfg.PreviewMode = mode
		return cfg, nil
	})
}

// SetCSSVariables writes user edits into the active theme stylesheet. Color
// keys land in the scope of the current preview mode.
func (s *Store) SetCSSVariables(ctx context.Context, updates map[string]string) error {
	return s.commit(ctx, ReasonCSSVariables, false, func(cfg toast.Config) (toast.Config, error) {
		cfg.Theme.CustomCSS = cssvars.Set(cfg.Theme.CustomCSS, updates, cfg.PreviewMode)
		return cfg, nil
	})
}

// CSSVariable reads name from the active theme for the current preview mode.
func (s *Store) CSSVariable(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cssvars.Get(s.cfg.Theme.CustomCSS, name, s.cfg.PreviewMode)
}

func (s *Store) commit(ctx context.Context, reason string, forceDerive bool, mutate func(toast.Config) (toast.Config, error)) error {
	s.mu.Lock()
	before := s.cfg
	next, err := mutate(before.Clone())
	if err == nil {
		err = toast.Validate(next)
	}
	if err != nil {
		s.mu.Unlock()
		s.logger.WithFields(map[string]any{"reason": reason}).Warn("configuration change rejected: " + err.Error())
		return err
	}

	if forceDerive || derivationChanged(before, next) {
		next.Theme.CustomCSS = cssvars.Set(next.Theme.CustomCSS, DeriveVariables(next), next.PreviewMode)
	}
	fields := changedFields(before, next)
	if len(fields) == 0 {
		s.mu.Unlock()
		return nil
	}

	s.persist(next.Theme)
	s.cfg = next
	s.version++
	version := s.version
	s.mu.Unlock()

	s.logger.WithFields(map[string]any{"reason": reason, "fields": fields, "version": version}).Debug("configuration committed")
	s.publish(ctx, ports.EventConfigChanged, map[string]interface{}{
		"reason":  reason,
		"version": version,
		"fields":  fields,
		"before":  before.Clone(),
		"after":   next.Clone(),
	})
	return nil
}

// persist records the working stylesheet of t, dropping the edit entry when it
// matches the catalog again.
func (s *Store) persist(t toast.Theme) {
	if pristine, ok := s.workspace.Pristine(t.ID); ok && pristine.CustomCSS == t.CustomCSS {
		s.workspace.Discard(t.ID)
		return
	}
	if err := s.workspace.Update(t.ID, t.CustomCSS); err != nil {
		s.logger.Error(err, "failed to record theme edit")
	}
}

func (s *Store) publish(ctx context.Context, eventType string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, ports.NewEvent(eventType, payload)); err != nil {
		s.logger.Error(err, "failed to publish "+eventType)
	}
}
