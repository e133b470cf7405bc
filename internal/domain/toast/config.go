package toast

// DefaultSVG is the sparkle markup every kind starts with as its custom icon.
const DefaultSVG = `<svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="m12 3-1.912 5.813a2 2 0 0 1-1.275 1.275L3 12l5.813 1.912a2 2 0 0 1 1.275 1.275L12 21l1.912-5.813a2 2 0 0 1 1.275-1.275L21 12l-5.813-1.912a2 2 0 0 1-1.275-1.275L12 3Z"/></svg>`

// StateIconConfig describes the icon of one notification kind.
type StateIconConfig struct {
	Mode      IconMode `yaml:"mode" toml:"mode" json:"mode" validate:"icon_mode"`
	Preset    string   `yaml:"preset" toml:"preset" json:"preset"`
	CustomSVG string   `yaml:"custom_svg" toml:"custom_svg" json:"customSvg"`
}

// Theme is a named preset bundling a stylesheet with default configuration.
type Theme struct {
	ID          string     `yaml:"id" toml:"id" json:"id" validate:"required,theme_id"`
	Name        string     `yaml:"name" toml:"name" json:"name" validate:"required"`
	Description string     `yaml:"description" toml:"description" json:"description"`
	CustomCSS   string     `yaml:"custom_css" toml:"custom_css" json:"customCss" validate:"required"`
	Defaults    *Overrides `yaml:"defaults,omitempty" toml:"defaults,omitempty" json:"defaults,omitempty"`
}

// Overrides holds the configuration fields a theme may preset. Nil fields are
// left untouched.
type Overrides struct {
	Position        *Position       `yaml:"position,omitempty" toml:"position,omitempty" json:"position,omitempty"`
	Expand          *bool           `yaml:"expand,omitempty" toml:"expand,omitempty" json:"expand,omitempty"`
	CloseButton     *bool           `yaml:"close_button,omitempty" toml:"close_button,omitempty" json:"closeButton,omitempty"`
	ShowProgressBar *bool           `yaml:"show_progress_bar,omitempty" toml:"show_progress_bar,omitempty" json:"showProgressBar,omitempty"`
	LoaderPosition  *LoaderPosition `yaml:"loader_position,omitempty" toml:"loader_position,omitempty" json:"loaderPosition,omitempty"`
	LoaderVariant   *LoaderVariant  `yaml:"loader_variant,omitempty" toml:"loader_variant,omitempty" json:"loaderVariant,omitempty"`
	ToastSize       *Size           `yaml:"toast_size,omitempty" toml:"toast_size,omitempty" json:"toastSize,omitempty"`
	Duration        *int            `yaml:"duration,omitempty" toml:"duration,omitempty" json:"duration,omitempty"`
	Offset          *int            `yaml:"offset,omitempty" toml:"offset,omitempty" json:"offset,omitempty"`
	Gap             *int            `yaml:"gap,omitempty" toml:"gap,omitempty" json:"gap,omitempty"`
	IconSize        *int            `yaml:"icon_size,omitempty" toml:"icon_size,omitempty" json:"iconSize,omitempty"`
	SoundEnabled    *bool           `yaml:"sound_enabled,omitempty" toml:"sound_enabled,omitempty" json:"soundEnabled,omitempty"`
	SoundPreset     *SoundPreset    `yaml:"sound_preset,omitempty" toml:"sound_preset,omitempty" json:"soundPreset,omitempty"`
	SoundVolume     *float64        `yaml:"sound_volume,omitempty" toml:"sound_volume,omitempty" json:"soundVolume,omitempty"`
}

// Config is the full user-chosen notification configuration.
type Config struct {
	Position        Position                 `json:"position" validate:"position"`
	Expand          bool                     `json:"expand"`
	CloseButton     bool                     `json:"closeButton"`
	ShowProgressBar bool                     `json:"showProgressBar"`
	LoaderPosition  LoaderPosition           `json:"loaderPosition" validate:"loader_position"`
	LoaderVariant   LoaderVariant            `json:"loaderVariant" validate:"loader_variant"`
	ToastSize       Size                     `json:"toastSize" validate:"toast_size"`
	Duration        int                      `json:"duration" validate:"gt=0"`
	Offset          int                      `json:"offset" validate:"gte=0"`
	Gap             int                      `json:"gap" validate:"gte=0"`
	IconSize        int                      `json:"iconSize" validate:"gte=12,lte=48"`
	PreviewMode     PreviewMode              `json:"previewMode" validate:"preview_mode"`
	IconConfigs     map[Kind]StateIconConfig `json:"iconConfigs" validate:"icon_kinds,dive"`
	SoundEnabled    bool                     `json:"soundEnabled"`
	SoundPreset     SoundPreset              `json:"soundPreset" validate:"sound_preset"`
	SoundVolume     float64                  `json:"soundVolume" validate:"gte=0,lte=1"`
	Theme           Theme                    `json:"theme" validate:"-"`
}

// Base returns the configuration every session starts from before a theme's
// defaults are applied. The theme is left empty.
func Base() Config {
	icons := map[Kind]StateIconConfig{
		KindSuccess: {Mode: IconPreset, Preset: "check", CustomSVG: DefaultSVG},
		KindError:   {Mode: IconPreset, Preset: "alert", CustomSVG: DefaultSVG},
		KindWarning: {Mode: IconPreset, Preset: "warning", CustomSVG: DefaultSVG},
		KindInfo:    {Mode: IconPreset, Preset: "info", CustomSVG: DefaultSVG},
		KindLoading: {Mode: IconPreset, Preset: "refresh", CustomSVG: DefaultSVG},
		KindDefault: {Mode: IconDefault, Preset: "zap", CustomSVG: DefaultSVG},
	}

	return Config{
		Position:        BottomRight,
		Expand:          false,
		CloseButton:     true,
		ShowProgressBar: true,
		LoaderPosition:  LoaderBottom,
		LoaderVariant:   LoaderSolid,
		ToastSize:       SizeMedium,
		Duration:        4000,
		Offset:          32,
		Gap:             12,
		IconSize:        20,
		PreviewMode:     Dark,
		IconConfigs:     icons,
		SoundEnabled:    false,
		SoundPreset:     SoundPop,
		SoundVolume:     0.5,
	}
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	clone := c
	clone.IconConfigs = make(map[Kind]StateIconConfig, len(c.IconConfigs))
	for kind, icon := range c.IconConfigs {
		clone.IconConfigs[kind] = icon
	}
	clone.Theme = c.Theme.Clone()
	return clone
}

// Icon returns the icon configuration for kind.
func (c Config) Icon(kind Kind) StateIconConfig {
	return c.IconConfigs[kind]
}

// Clone returns a copy of the theme that shares nothing with t.
func (t Theme) Clone() Theme {
	clone := t
	if t.Defaults != nil {
		defaults := t.Defaults.Clone()
		clone.Defaults = &defaults
	}
	return clone
}

// Clone returns a deep copy of the overrides.
func (o Overrides) Clone() Overrides {
	return Overrides{
		Position:        clonePtr(o.Position),
		Expand:          clonePtr(o.Expand),
		CloseButton:     clonePtr(o.CloseButton),
		ShowProgressBar: clonePtr(o.ShowProgressBar),
		LoaderPosition:  clonePtr(o.LoaderPosition),
		LoaderVariant:   clonePtr(o.LoaderVariant),
		ToastSize:       clonePtr(o.ToastSize),
		Duration:        clonePtr(o.Duration),
		Offset:          clonePtr(o.Offset),
		Gap:             clonePtr(o.Gap),
		IconSize:        clonePtr(o.IconSize),
		SoundEnabled:    clonePtr(o.SoundEnabled),
		SoundPreset:     clonePtr(o.SoundPreset),
		SoundVolume:     clonePtr(o.SoundVolume),
	}
}

// Apply returns cfg with every non-nil override written over it.
func (o Overrides) Apply(cfg Config) Config {
	out := cfg.Clone()
	assign(&out.Position, o.Position)
	assign(&out.Expand, o.Expand)
	assign(&out.CloseButton, o.CloseButton)
	assign(&out.ShowProgressBar, o.ShowProgressBar)
	assign(&out.LoaderPosition, o.LoaderPosition)
	assign(&out.LoaderVariant, o.LoaderVariant)
	assign(&out.ToastSize, o.ToastSize)
	assign(&out.Duration, o.Duration)
	assign(&out.Offset, o.Offset)
	assign(&out.Gap, o.Gap)
	assign(&out.IconSize, o.IconSize)
	assign(&out.SoundEnabled, o.SoundEnabled)
	assign(&out.SoundPreset, o.SoundPreset)
	assign(&out.SoundVolume, o.SoundVolume)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Ptr returns a pointer to v. It keeps override literals short.
func Ptr[T any](v T) *T {
	return &v
}
