package config

import (
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/store"
)

// Profile describes how a studio session starts. It is read once and never
// written back.
type Profile struct {
	Version     string `yaml:"version" toml:"version" validate:"required,semver"`
	Name        string `yaml:"name,omitempty" toml:"name,omitempty" validate:"omitempty,max=100"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`
	// Theme is the starting theme id. Empty means the first catalog theme.
	Theme       string `yaml:"theme,omitempty" toml:"theme,omitempty" validate:"omitempty,theme_id"`
	ThemePolicy string `yaml:"theme_policy,omitempty" toml:"theme_policy,omitempty" validate:"omitempty,oneof=persist reset"`
	// Catalogs are extra theme catalog files, relative to the profile.
	Catalogs []string `yaml:"catalogs,omitempty" toml:"catalogs,omitempty" validate:"omitempty,dive,required"`

	Settings    toast.Overrides            `yaml:"settings,omitempty" toml:"settings,omitempty"`
	PreviewMode string                     `yaml:"preview_mode,omitempty" toml:"preview_mode,omitempty" validate:"omitempty,oneof=light dark"`
	Icons       map[toast.Kind]IconSetting `yaml:"icons,omitempty" toml:"icons,omitempty" validate:"omitempty,dive,keys,kind,endkeys"`
	Variables   map[string]string          `yaml:"variables,omitempty" toml:"variables,omitempty" validate:"omitempty,dive,keys,css_var,endkeys,required"`
	Preview     PreviewSettings            `yaml:"preview,omitempty" toml:"preview,omitempty"`

	// Path is the file the profile was read from.
	Path string `yaml:"-" toml:"-"`
}

// IconSetting is a partial icon configuration. Empty fields keep the base
// value for the kind.
type IconSetting struct {
	Mode      string `yaml:"mode,omitempty" toml:"mode,omitempty" validate:"omitempty,oneof=default preset custom"`
	Preset    string `yaml:"preset,omitempty" toml:"preset,omitempty"`
	CustomSVG string `yaml:"custom_svg,omitempty" toml:"custom_svg,omitempty"`
}

// PreviewSettings tunes the live preview.
type PreviewSettings struct {
	// Debounce is a Go duration string such as "200ms".
	Debounce string `yaml:"debounce,omitempty" toml:"debounce,omitempty" validate:"omitempty,duration"`
}

// Patch converts s into a store icon patch.
func (s IconSetting) Patch() store.IconPatch {
	var patch store.IconPatch
	if s.Mode != "" {
		mode := toast.IconMode(s.Mode)
		patch.Mode = &mode
	}
	if s.Preset != "" {
		patch.Preset = &s.Preset
	}
	if s.CustomSVG != "" {
		patch.CustomSVG = &s.CustomSVG
	}
	return patch
}

// HasIcons reports whether the profile configures any icon.
func (p *Profile) HasIcons() bool {
	return p != nil && len(p.Icons) > 0
}
