package toast

// Position is the screen corner or edge the notification stack is anchored to.
type Position string

const (
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	TopRight     Position = "top-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
	BottomRight  Position = "bottom-right"
)

// Positions lists every placement in display order.
func Positions() []Position {
	return []Position{TopLeft, TopCenter, TopRight, BottomLeft, BottomCenter, BottomRight}
}

// Valid reports whether p is a known placement.
func (p Position) Valid() bool { return contains(Positions(), p) }

// Next returns the placement after p, wrapping around.
func (p Position) Next() Position { return next(Positions(), p) }

// Size selects a row of the size table.
type Size string

const (
	SizeSmall   Size = "sm"
	SizeMedium  Size = "md"
	SizeLarge   Size = "lg"
	SizeXLarge  Size = "xl"
	SizeXXLarge Size = "2xl"
)

// Sizes lists every size from smallest to largest.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge, SizeXLarge, SizeXXLarge}
}

func (s Size) Valid() bool { return contains(Sizes(), s) }
func (s Size) Next() Size  { return next(Sizes(), s) }

// LoaderPosition places the progress indicator at the top or bottom edge.
type LoaderPosition string

const (
	LoaderTop    LoaderPosition = "top"
	LoaderBottom LoaderPosition = "bottom"
)

func LoaderPositions() []LoaderPosition { return []LoaderPosition{LoaderTop, LoaderBottom} }

func (l LoaderPosition) Valid() bool          { return contains(LoaderPositions(), l) }
func (l LoaderPosition) Next() LoaderPosition { return next(LoaderPositions(), l) }

// LoaderVariant selects how the progress indicator is filled.
type LoaderVariant string

const (
	LoaderSolid    LoaderVariant = "solid"
	LoaderGradient LoaderVariant = "gradient"
)

func LoaderVariants() []LoaderVariant { return []LoaderVariant{LoaderSolid, LoaderGradient} }

func (l LoaderVariant) Valid() bool         { return contains(LoaderVariants(), l) }
func (l LoaderVariant) Next() LoaderVariant { return next(LoaderVariants(), l) }

// IconMode decides where a kind's icon comes from.
type IconMode string

const (
	// IconDefault leaves the icon to the notification host.
	IconDefault IconMode = "default"
	// IconPreset uses an entry of the icon registry.
	IconPreset IconMode = "preset"
	// IconCustom inlines user supplied markup.
	IconCustom IconMode = "custom"
)

func IconModes() []IconMode { return []IconMode{IconDefault, IconPreset, IconCustom} }

func (m IconMode) Valid() bool    { return contains(IconModes(), m) }
func (m IconMode) Next() IconMode { return next(IconModes(), m) }

// Kind is the semantic flavour of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
	KindLoading Kind = "loading"
	KindDefault Kind = "default"
)

// Kinds lists every notification kind in editor order.
func Kinds() []Kind {
	return []Kind{KindSuccess, KindError, KindWarning, KindInfo, KindLoading, KindDefault}
}

func (k Kind) Valid() bool { return contains(Kinds(), k) }
func (k Kind) Next() Kind  { return next(Kinds(), k) }

// SoundPreset names one of the synthesized feedback sounds.
type SoundPreset string

const (
	SoundPop     SoundPreset = "pop"
	SoundSuccess SoundPreset = "success"
	SoundError   SoundPreset = "error"
	SoundDigital SoundPreset = "digital"
	SoundDock    SoundPreset = "dock"
)

func SoundPresets() []SoundPreset {
	return []SoundPreset{SoundPop, SoundSuccess, SoundError, SoundDigital, SoundDock}
}

func (s SoundPreset) Valid() bool       { return contains(SoundPresets(), s) }
func (s SoundPreset) Next() SoundPreset { return next(SoundPresets(), s) }

// PreviewMode mirrors the host color scheme.
type PreviewMode string

const (
	Light PreviewMode = "light"
	Dark  PreviewMode = "dark"
)

func PreviewModes() []PreviewMode { return []PreviewMode{Light, Dark} }

func (m PreviewMode) Valid() bool       { return contains(PreviewModes(), m) }
func (m PreviewMode) Next() PreviewMode { return next(PreviewModes(), m) }

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func next[T comparable](values []T, v T) T {
	for i, candidate := range values {
		if candidate == v {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
