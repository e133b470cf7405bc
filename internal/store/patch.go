package store

import (
	"sort"

	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
)

// Patch is a partial configuration update. Nil fields are left untouched.
type Patch struct {
	toast.Overrides
	PreviewMode *toast.PreviewMode
}

// IconPatch is a partial update of one kind's icon configuration.
type IconPatch struct {
	Mode      *toast.IconMode
	Preset    *string
	CustomSVG *string
}

func (p Patch) apply(cfg toast.Config) toast.Config {
	out := p.Overrides.Apply(cfg)
	if p.PreviewMode != nil {
		out.PreviewMode = *p.PreviewMode
	}
	return out
}

// Apply returns icon with every non-nil field of p written over it.
func (p IconPatch) Apply(icon toast.StateIconConfig) toast.StateIconConfig {
	if p.Mode != nil {
		icon.Mode = *p.Mode
	}
	if p.Preset != nil {
		icon.Preset = *p.Preset
	}
	if p.CustomSVG != nil {
		icon.CustomSVG = *p.CustomSVG
	}
	return icon
}

// changedFields lists the json names of top-level fields that differ.
func changedFields(a, b toast.Config) []string {
	var fields []string
	add := func(name string, changed bool) {
		if changed {
			fields = append(fields, name)
		}
	}
	add("position", a.Position != b.Position)
	add("expand", a.Expand != b.Expand)
	add("closeButton", a.CloseButton != b.CloseButton)
	add("showProgressBar", a.ShowProgressBar != b.ShowProgressBar)
	add("loaderPosition", a.LoaderPosition != b.LoaderPosition)
	add("loaderVariant", a.LoaderVariant != b.LoaderVariant)
	add("toastSize", a.ToastSize != b.ToastSize)
	add("duration", a.Duration != b.Duration)
	add("offset", a.Offset != b.Offset)
	add("gap", a.Gap != b.Gap)
	add("iconSize", a.IconSize != b.IconSize)
	add("previewMode", a.PreviewMode != b.PreviewMode)
	add("soundEnabled", a.SoundEnabled != b.SoundEnabled)
	add("soundPreset", a.SoundPreset != b.SoundPreset)
	add("soundVolume", a.SoundVolume != b.SoundVolume)
	add("theme", a.Theme.ID != b.Theme.ID || a.Theme.CustomCSS != b.Theme.CustomCSS)

	for _, kind := range toast.Kinds() {
		if a.IconConfigs[kind] != b.IconConfigs[kind] {
			fields = append(fields, "iconConfigs."+string(kind))
		}
	}
	sort.Strings(fields)
	return fields
}
