package toast

// Inset positions the progress bar along the top or bottom edge.
func (l LoaderPosition) Inset() string {
	if l == LoaderTop {
		return "0 0 auto 0"
	}
	return "auto 0 0 0"
}

// Background is the progress bar fill.
func (l LoaderVariant) Background() string {
	if l == LoaderGradient {
		return "linear-gradient(to right, color-mix(in srgb, var(--tl-primary), transparent 80%), var(--tl-primary))"
	}
	return "var(--tl-primary)"
}
