package preview

import (
	"github.com/alexisbeaulieu97/toastlab/internal/cssvars"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/icons"
	"github.com/alexisbeaulieu97/toastlab/internal/ports"
	"github.com/alexisbeaulieu97/toastlab/internal/theme"
)

// Description is shown under every preview title.
const Description = "Synchronized visual and auditory feedback."

var titles = map[toast.Kind]string{
	toast.KindSuccess: "Action Confirmed",
	toast.KindError:   "System Refusal",
	toast.KindWarning: "Security Alert",
	toast.KindInfo:    "System Update",
	toast.KindLoading: "Processing Engine...",
	toast.KindDefault: "Dynamic Preview Active",
}

// Variables forwarded to the host as inline style.
var styleVariables = []string{
	cssvars.Background,
	cssvars.Foreground,
	cssvars.Border,
	cssvars.Muted,
	cssvars.Primary,
	cssvars.Radius,
	cssvars.BorderWidth,
	cssvars.Shadow,
	cssvars.Width,
	cssvars.Padding,
	cssvars.FontSize,
	cssvars.Duration,
	cssvars.LoaderInset,
	cssvars.LoaderBG,
}

// Title returns the preview title of kind.
func Title(kind toast.Kind) string {
	if title, ok := titles[kind]; ok {
		return title
	}
	return titles[toast.KindDefault]
}

// ClassName returns the class list the host puts on every notification.
func ClassName(cfg toast.Config) string {
	if cfg.ShowProgressBar {
		return theme.ShellClass + " " + theme.LoaderClass
	}
	return theme.ShellClass
}

// BuildToast describes the notification previewing kind under cfg.
func BuildToast(cfg toast.Config, kind toast.Kind) ports.ToastProps {
	style := make(map[string]string, len(styleVariables))
	for _, name := range styleVariables {
		if value := cssvars.Get(cfg.Theme.CustomCSS, name, cfg.PreviewMode); value != "" {
			style[name] = value
		}
	}

	return ports.ToastProps{
		Kind:        kind,
		Title:       Title(kind),
		Description: Description,
		ClassName:   ClassName(cfg),
		Style:       style,
		Icon:        IconFor(cfg, kind),
		Duration:    cfg.Duration,
		Position:    cfg.Position,
	}
}

// IconFor resolves the icon of kind. It returns nil when the host should draw
// its own icon. A loading notification always gets a spinning icon.
func IconFor(cfg toast.Config, kind toast.Kind) *ports.IconSpec {
	state := cfg.Icon(kind)
	switch state.Mode {
	case toast.IconCustom:
		return &ports.IconSpec{
			Mode:      toast.IconCustom,
			CustomSVG: state.CustomSVG,
			Size:      cfg.IconSize,
			Spin:      kind == toast.KindLoading,
		}
	case toast.IconPreset:
		icon := icons.Lookup(state.Preset)
		return presetSpec(icon, cfg.IconSize, kind == toast.KindLoading || icon.Spins)
	}

	if kind == toast.KindLoading {
		return presetSpec(icons.Lookup("loader"), cfg.IconSize, true)
	}
	return nil
}

func presetSpec(icon icons.Icon, size int, spin bool) *ports.IconSpec {
	return &ports.IconSpec{
		Mode:   toast.IconPreset,
		Preset: icon.Key,
		Name:   icon.Name,
		Glyph:  icon.Glyph,
		Size:   size,
		Spin:   spin,
	}
}
