package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("profile.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "profile.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: profile.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("themes.toml", 0, stdErrors.New("bad key"))
	require.Equal(t, "parse error: themes.toml: bad key", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("config.iconsize", "must be between 12 and 48", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "config.iconsize", validationErr.Field)
	require.Contains(t, err.Error(), "must be between 12 and 48")
}

func TestThemeErrorIncludesThemeID(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("not found")
	err := NewThemeError("solarized", "unknown theme", underlying)

	var themeErr *ThemeError
	require.ErrorAs(t, err, &themeErr)
	require.Equal(t, "solarized", themeErr.ThemeID)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[solarized]")
}

func TestExportErrorIncludesArtifact(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewExportError("stylesheet", underlying)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	require.Equal(t, "stylesheet", exportErr.Artifact)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var themeErr *ThemeError
	var exportErr *ExportError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, themeErr.Error())
	require.Empty(t, exportErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Nil(t, exportErr.Unwrap())
}
