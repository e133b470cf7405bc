// Package export renders the integration snippet and the hardened stylesheet
// that reproduce the current configuration outside the studio.
package export

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/alexisbeaulieu97/toastlab/internal/css"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/pkg/diff"
	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

// StylesheetHeader opens every exported stylesheet.
const StylesheetHeader = "/* Add this to your global CSS file */\n"

// Artifacts are the two exported texts.
type Artifacts struct {
	Snippet    string `json:"snippet"`
	Stylesheet string `json:"stylesheet"`
}

// Digest identifies the artifacts. Equal configurations yield equal digests.
func (a Artifacts) Digest() string {
	hasher := sha256.New()
	hasher.Write([]byte(a.Snippet))
	hasher.Write([]byte{0})
	hasher.Write([]byte(a.Stylesheet))
	return fmt.Sprintf("%x", hasher.Sum(nil))
}

// Generate renders both artifacts for cfg.
func Generate(cfg toast.Config) (Artifacts, error) {
	snippet, err := Snippet(cfg)
	if err != nil {
		return Artifacts{}, err
	}
	return Artifacts{
		Snippet:    snippet,
		Stylesheet: Stylesheet(cfg.Theme.CustomCSS),
	}, nil
}

// Snippet renders the integration snippet for cfg.
func Snippet(cfg toast.Config) (string, error) {
	var buf bytes.Buffer
	if err := snippetTemplate.Execute(&buf, newSnippetData(cfg)); err != nil {
		return "", tlerrors.NewExportError("snippet", err)
	}
	return buf.String(), nil
}

// Stylesheet canonicalizes a theme stylesheet for export.
func Stylesheet(customCSS string) string {
	return StylesheetHeader + css.Canonicalize(customCSS)
}

// Diff compares the exported stylesheet of the untouched preset with the one
// exported for cfg. It returns "" when the session made no stylesheet edits.
func Diff(preset toast.Theme, cfg toast.Config) string {
	return diff.Unified(
		Stylesheet(preset.CustomCSS),
		Stylesheet(cfg.Theme.CustomCSS),
		"preset/"+preset.ID+".css",
		"session/"+cfg.Theme.ID+".css",
	)
}
