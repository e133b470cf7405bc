package ports

import "github.com/alexisbeaulieu97/toastlab/internal/domain/toast"

// IconSpec describes the icon a notification host should draw.
type IconSpec struct {
	Mode toast.IconMode
	// Preset is the resolved registry key when Mode is preset.
	Preset string
	// Name is the component identifier of the preset.
	Name      string
	Glyph     string
	CustomSVG string
	Size      int
	Spin      bool
}

// ToastProps is everything a notification host needs to render one preview.
type ToastProps struct {
	Kind        toast.Kind
	Title       string
	Description string
	ClassName   string
	// Style maps custom properties to values already resolved for the
	// preview mode.
	Style    map[string]string
	Icon     *IconSpec
	Duration int
	Position toast.Position
}

// Notifier is the notification host. Notify must not block.
type Notifier interface {
	Notify(props ToastProps)
}

// AudioEngine plays synthesized feedback sounds. Play is fire-and-forget and
// must be safe to call before audio output is available.
type AudioEngine interface {
	Play(preset toast.SoundPreset, volume float64)
}
