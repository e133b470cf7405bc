package store

import (
	"strconv"

	"github.com/alexisbeaulieu97/toastlab/internal/cssvars"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
)

// DeriveVariables computes the stylesheet variables that follow directly from
// the typed configuration. Every returned key is global, so the accessor
// always writes them into the base scope.
func DeriveVariables(cfg toast.Config) map[string]string {
	size := toast.SizeFor(cfg.ToastSize)
	return map[string]string{
		cssvars.Duration:    strconv.Itoa(cfg.Duration) + "ms",
		cssvars.Gap:         strconv.Itoa(cfg.Gap) + "px",
		cssvars.Offset:      strconv.Itoa(cfg.Offset) + "px",
		cssvars.LoaderInset: cfg.LoaderPosition.Inset(),
		cssvars.LoaderBG:    cfg.LoaderVariant.Background(),
		cssvars.Width:       size.Width,
		cssvars.Padding:     size.Padding,
		cssvars.FontSize:    size.FontSize,
	}
}

// derivationChanged reports whether any input of DeriveVariables, or the
// preview mode, differs between a and b.
func derivationChanged(a, b toast.Config) bool {
	return a.Duration != b.Duration ||
		a.Gap != b.Gap ||
		a.Offset != b.Offset ||
		a.LoaderPosition != b.LoaderPosition ||
		a.LoaderVariant != b.LoaderVariant ||
		a.ToastSize != b.ToastSize ||
		a.PreviewMode != b.PreviewMode
}
