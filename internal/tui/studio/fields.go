package studio

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/toastlab/internal/cssvars"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/icons"
	"github.com/alexisbeaulieu97/toastlab/internal/store"
)

// field is one editable row. step moves the value by delta (+1 or -1) and
// returns the store change to commit; a nil change means the row only
// affects studio state.
type field struct {
	label string
	value func(m *Model, cfg toast.Config) string
	step  func(m *Model, cfg toast.Config, delta int) change
	// dim reports rows without visible effect in cfg.
	dim func(cfg toast.Config) bool
}

type change func(m *Model) error

func cycle[T comparable](values []T, current T, delta int) T {
	if len(values) == 0 {
		return current
	}
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + delta%len(values) + len(values)) % len(values)
	return values[idx]
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func setPatch(p store.Patch) change {
	return func(m *Model) error {
		return m.store.SetField(m.ctx, p)
	}
}

func setIcon(kind toast.Kind, p store.IconPatch) change {
	return func(m *Model) error {
		return m.store.SetIconConfig(m.ctx, kind, p)
	}
}

func setVariable(name, value string) change {
	return func(m *Model) error {
		return m.store.SetCSSVariables(m.ctx, map[string]string{name: value})
	}
}

// stepPixels moves a "<n>px" value by delta, keeping it non-negative.
func stepPixels(value string, delta int) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(value), "px"))
	if err != nil {
		return "", false
	}
	n += delta
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%dpx", n), true
}

func defaultFields() []field {
	return []field{
		{
			label: "Theme",
			value: func(m *Model, cfg toast.Config) string { return cfg.Theme.Name },
			step: func(m *Model, cfg toast.Config, delta int) change {
				id := cycle(m.store.Workspace().Catalog().IDs(), cfg.Theme.ID, delta)
				return func(m *Model) error { return m.store.SelectTheme(m.ctx, id) }
			},
		},
		{
			label: "Preview mode",
			value: func(m *Model, cfg toast.Config) string { return string(cfg.PreviewMode) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatchMode(cycle(toast.PreviewModes(), cfg.PreviewMode, delta))
			},
		},
		{
			label: "Position",
			value: func(m *Model, cfg toast.Config) string { return string(cfg.Position) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{Position: toast.Ptr(cycle(toast.Positions(), cfg.Position, delta))}})
			},
		},
		{
			label: "Size",
			value: func(m *Model, cfg toast.Config) string {
				return fmt.Sprintf("%s (%s)", cfg.ToastSize, toast.SizeFor(cfg.ToastSize).Width)
			},
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{ToastSize: toast.Ptr(cycle(toast.Sizes(), cfg.ToastSize, delta))}})
			},
		},
		{
			label: "Duration",
			value: func(m *Model, cfg toast.Config) string { return fmt.Sprintf("%dms", cfg.Duration) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{Duration: toast.Ptr(cfg.Duration + delta*500)}})
			},
		},
		{
			label: "Gap",
			value: func(m *Model, cfg toast.Config) string { return fmt.Sprintf("%dpx", cfg.Gap) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{Gap: toast.Ptr(cfg.Gap + delta*2)}})
			},
		},
		{
			label: "Offset",
			value: func(m *Model, cfg toast.Config) string { return fmt.Sprintf("%dpx", cfg.Offset) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{Offset: toast.Ptr(cfg.Offset + delta*4)}})
			},
		},
		{
			label: "Expand",
			value: func(m *Model, cfg toast.Config) string { return onOff(cfg.Expand) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{Expand: toast.Ptr(!cfg.Expand)}})
			},
		},
		{
			label: "Close button",
			value: func(m *Model, cfg toast.Config) string { return onOff(cfg.CloseButton) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{CloseButton: toast.Ptr(!cfg.CloseButton)}})
			},
		},
		{
			label: "Progress bar",
			value: func(m *Model, cfg toast.Config) string { return onOff(cfg.ShowProgressBar) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{ShowProgressBar: toast.Ptr(!cfg.ShowProgressBar)}})
			},
		},
		{
			label: "Loader edge",
			value: func(m *Model, cfg toast.Config) string { return string(cfg.LoaderPosition) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{LoaderPosition: toast.Ptr(cycle(toast.LoaderPositions(), cfg.LoaderPosition, delta))}})
			},
			dim: func(cfg toast.Config) bool { return !cfg.ShowProgressBar },
		},
		{
			label: "Loader fill",
			value: func(m *Model, cfg toast.Config) string { return string(cfg.LoaderVariant) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{LoaderVariant: toast.Ptr(cycle(toast.LoaderVariants(), cfg.LoaderVariant, delta))}})
			},
			dim: func(cfg toast.Config) bool { return !cfg.ShowProgressBar },
		},
		{
			label: "Radius",
			value: func(m *Model, cfg toast.Config) string { return m.store.CSSVariable(cssvars.Radius) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				next, ok := stepPixels(m.store.CSSVariable(cssvars.Radius), delta)
				if !ok {
					return nil
				}
				return setVariable(cssvars.Radius, next)
			},
		},
		{
			label: "Editing",
			value: func(m *Model, cfg toast.Config) string { return string(m.editing) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				m.editing = cycle(toast.Kinds(), m.editing, delta)
				return nil
			},
		},
		{
			label: "Icon mode",
			value: func(m *Model, cfg toast.Config) string { return string(cfg.Icon(m.editing).Mode) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				mode := cycle(toast.IconModes(), cfg.Icon(m.editing).Mode, delta)
				return setIcon(m.editing, store.IconPatch{Mode: &mode})
			},
		},
		{
			label: "Icon",
			value: func(m *Model, cfg toast.Config) string {
				icon := icons.Lookup(cfg.Icon(m.editing).Preset)
				return icon.Glyph + " " + icon.Key
			},
			step: func(m *Model, cfg toast.Config, delta int) change {
				current := icons.Lookup(cfg.Icon(m.editing).Preset).Key
				preset := icons.Next(current)
				if delta < 0 {
					preset = cycle(icons.Keys(), current, delta)
				}
				return setIcon(m.editing, store.IconPatch{Preset: &preset})
			},
		},
		{
			label: "Icon size",
			value: func(m *Model, cfg toast.Config) string { return fmt.Sprintf("%dpx", cfg.IconSize) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{IconSize: toast.Ptr(cfg.IconSize + delta*2)}})
			},
		},
		{
			label: "Sound",
			value: func(m *Model, cfg toast.Config) string { return onOff(cfg.SoundEnabled) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{SoundEnabled: toast.Ptr(!cfg.SoundEnabled)}})
			},
		},
		{
			label: "Sound preset",
			value: func(m *Model, cfg toast.Config) string { return string(cfg.SoundPreset) },
			step: func(m *Model, cfg toast.Config, delta int) change {
				return setPatch(store.Patch{Overrides: toast.Overrides{SoundPreset: toast.Ptr(cycle(toast.SoundPresets(), cfg.SoundPreset, delta))}})
			},
			dim: func(cfg toast.Config) bool { return !cfg.SoundEnabled },
		},
		{
			label: "Volume",
			value: func(m *Model, cfg toast.Config) string {
				return m.meter.View(cfg.SoundVolume, fmt.Sprintf("%.0f%%", cfg.SoundVolume*100))
			},
			step: func(m *Model, cfg toast.Config, delta int) change {
				volume := math.Round((cfg.SoundVolume+float64(delta)*0.1)*10) / 10
				return setPatch(store.Patch{Overrides: toast.Overrides{SoundVolume: toast.Ptr(volume)}})
			},
			dim: func(cfg toast.Config) bool { return !cfg.SoundEnabled },
		},
	}
}

func setPatchMode(mode toast.PreviewMode) change {
	return setPatch(store.Patch{PreviewMode: &mode})
}
