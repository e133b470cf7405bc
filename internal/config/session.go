package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/preview"
	"github.com/alexisbeaulieu97/toastlab/internal/store"
	"github.com/alexisbeaulieu97/toastlab/internal/theme"
	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

// Session is the resolved startup configuration. The environment wins over
// the profile and the profile wins over the defaults.
type Session struct {
	ThemeID  string
	Policy   theme.Policy
	Debounce time.Duration
	LogLevel string
}

// Resolve merges profile and env. A nil profile is allowed.
func Resolve(p *Profile, env Env) (Session, error) {
	session := Session{
		Debounce: preview.DefaultDebounce,
		LogLevel: env.LogLevel,
	}

	policy := ""
	if p != nil {
		session.ThemeID = p.Theme
		policy = p.ThemePolicy
		if p.Preview.Debounce != "" {
			d, err := time.ParseDuration(p.Preview.Debounce)
			if err != nil {
				return Session{}, tlerrors.NewValidationError("preview.debounce", err.Error(), err)
			}
			session.Debounce = d
		}
	}
	if env.Theme != "" {
		session.ThemeID = env.Theme
	}
	if env.ThemePolicy != "" {
		policy = env.ThemePolicy
	}
	if env.Debounce > 0 {
		session.Debounce = env.Debounce
	}

	parsed, err := theme.ParsePolicy(policy)
	if err != nil {
		return Session{}, tlerrors.NewValidationError("theme_policy", err.Error(), err)
	}
	session.Policy = parsed
	return session, nil
}

// Catalog returns base extended with the profile's extra catalogs. Later
// catalogs replace same-id themes of earlier ones.
func (p *Profile) Catalog(base *theme.Catalog) (*theme.Catalog, error) {
	if p == nil || len(p.Catalogs) == 0 {
		return base, nil
	}

	dir := ""
	if p.Path != "" {
		dir = filepath.Dir(p.Path)
	}

	merged := base
	for _, path := range p.Catalogs {
		if !filepath.IsAbs(path) && dir != "" {
			path = filepath.Join(dir, path)
		}
		extra, err := theme.LoadCatalog(path)
		if err != nil {
			return nil, err
		}
		merged = merged.Merge(extra)
	}
	return merged, nil
}

// Overrides returns the settings to pass to store.New.
func (p *Profile) Overrides() *toast.Overrides {
	if p == nil {
		return nil
	}
	overrides := p.Settings.Clone()
	return &overrides
}

// ApplyTo replays the parts of the profile that go through store mutations:
// the preview mode, icon settings and stylesheet variables.
func (p *Profile) ApplyTo(ctx context.Context, s *store.Store) error {
	if p == nil {
		return nil
	}

	if p.PreviewMode != "" {
		mode := toast.PreviewMode(p.PreviewMode)
		if err := s.SetField(ctx, store.Patch{PreviewMode: &mode}); err != nil {
			return err
		}
	}

	for _, kind := range toast.Kinds() {
		setting, ok := p.Icons[kind]
		if !ok {
			continue
		}
		if err := s.SetIconConfig(ctx, kind, setting.Patch()); err != nil {
			return err
		}
	}

	if len(p.Variables) > 0 {
		if err := s.SetCSSVariables(ctx, p.Variables); err != nil {
			return err
		}
	}
	return nil
}
