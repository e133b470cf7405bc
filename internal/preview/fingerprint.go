// Package preview turns settled configuration changes into live feedback: a
// representative notification when something visible changed, and a short
// interaction cue otherwise.
package preview

import "github.com/alexisbeaulieu97/toastlab/internal/domain/toast"

// Fingerprint is the part of the configuration a rendered notification
// depends on. Two configurations with equal fingerprints preview identically.
type Fingerprint struct {
	ThemeID         string
	Position        toast.Position
	Size            toast.Size
	LoaderPosition  toast.LoaderPosition
	LoaderVariant   toast.LoaderVariant
	Expand          bool
	CloseButton     bool
	ShowProgressBar bool
	IconMode        toast.IconMode
	IconPreset      string
	Duration        int
	Gap             int
	Offset          int
	IconSize        int
}

// FingerprintOf projects cfg for the kind currently being edited.
func FingerprintOf(cfg toast.Config, editing toast.Kind) Fingerprint {
	icon := cfg.Icon(editing)
	return Fingerprint{
		ThemeID:         cfg.Theme.ID,
		Position:        cfg.Position,
		Size:            cfg.ToastSize,
		LoaderPosition:  cfg.LoaderPosition,
		LoaderVariant:   cfg.LoaderVariant,
		Expand:          cfg.Expand,
		CloseButton:     cfg.CloseButton,
		ShowProgressBar: cfg.ShowProgressBar,
		IconMode:        icon.Mode,
		IconPreset:      icon.Preset,
		Duration:        cfg.Duration,
		Gap:             cfg.Gap,
		Offset:          cfg.Offset,
		IconSize:        cfg.IconSize,
	}
}
