package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Format is the syntax of a profile file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor infers the profile format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported profile extension %q", filepath.Ext(path))
}

// LoadProfile reads, decodes and validates the profile at path.
func LoadProfile(path string) (*Profile, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, tlerrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tlerrors.NewParseError(path, 0, err)
	}

	profile, err := ParseProfile(data, format, path)
	if err != nil {
		return nil, err
	}
	profile.Path = path
	return profile, nil
}

// ParseProfile decodes and validates profile data. Unknown keys are errors.
func ParseProfile(data []byte, format Format, path string) (*Profile, error) {
	var profile Profile
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&profile); err != nil {
			return nil, tlerrors.NewParseError(path, extractLine(err), err)
		}
	case FormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&profile); err != nil {
			return nil, tlerrors.NewParseError(path, extractLine(err), err)
		}
	default:
		return nil, tlerrors.NewParseError(path, 0, fmt.Errorf("unknown profile format %q", format))
	}

	if err := ValidateProfile(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
