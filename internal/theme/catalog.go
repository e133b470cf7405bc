// Package theme holds the preset catalog and the per-session theme workspace.
package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

//go:embed presets.yaml
var builtinPresets []byte

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
	builtinErr     error

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

// Format selects the catalog file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor infers the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported catalog extension %q", filepath.Ext(path))
}

type catalogFile struct {
	Themes []Preset `yaml:"themes" toml:"themes"`
}

// Catalog is an ordered, read-only set of themes. Accessors hand out clones.
type Catalog struct {
	themes []toast.Theme
	index  map[string]int
}

// NewCatalog validates themes and indexes them by id. Duplicate ids are rejected.
func NewCatalog(themes ...toast.Theme) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(themes))}
	for _, theme := range themes {
		if err := toast.ValidateTheme(theme); err != nil {
			return nil, tlerrors.NewThemeError(theme.ID, "invalid theme", err)
		}
		if _, exists := c.index[theme.ID]; exists {
			return nil, tlerrors.NewThemeError(theme.ID, "duplicate theme id", nil)
		}
		c.index[theme.ID] = len(c.themes)
		c.themes = append(c.themes, theme.Clone())
	}
	return c, nil
}

// Builtin returns the catalog shipped with toastlab.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtinCatalog, builtinErr = ParseCatalog(builtinPresets, FormatYAML, "presets.yaml")
	})
	return builtinCatalog, builtinErr
}

// LoadCatalog reads a YAML or TOML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, tlerrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tlerrors.NewParseError(path, 0, err)
	}

	return ParseCatalog(data, format, path)
}

// ParseCatalog decodes catalog data. path is only used in error messages.
func ParseCatalog(data []byte, format Format, path string) (*Catalog, error) {
	var file catalogFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, tlerrors.NewParseError(path, yamlLine(err), err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, tlerrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return nil, tlerrors.NewParseError(path, 0, fmt.Errorf("unknown catalog format %q", format))
	}

	themes := make([]toast.Theme, 0, len(file.Themes))
	for _, preset := range file.Themes {
		if preset.CustomCSS == "" && !preset.Light.complete() {
			return nil, tlerrors.NewThemeError(preset.ID, "preset needs custom_css or a complete light palette", nil)
		}
		if preset.Dark != nil && !preset.Dark.complete() {
			return nil, tlerrors.NewThemeError(preset.ID, "dark palette is incomplete", nil)
		}
		theme, err := preset.Render()
		if err != nil {
			return nil, tlerrors.NewThemeError(preset.ID, "render stylesheet", err)
		}
		themes = append(themes, theme)
	}

	return NewCatalog(themes...)
}

// Merge returns a catalog holding c's themes followed by other's. Themes in
// other replace same-id themes of c in place.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := &Catalog{index: make(map[string]int, c.Len()+other.Len())}
	for _, t := range append(c.Themes(), other.Themes()...) {
		if i, ok := merged.index[t.ID]; ok {
			merged.themes[i] = t
			continue
		}
		merged.index[t.ID] = len(merged.themes)
		merged.themes = append(merged.themes, t)
	}
	return merged
}

// Len returns the number of themes.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.themes)
}

// Themes returns clones of every theme in catalog order.
func (c *Catalog) Themes() []toast.Theme {
	if c == nil {
		return nil
	}
	out := make([]toast.Theme, 0, len(c.themes))
	for _, t := range c.themes {
		out = append(out, t.Clone())
	}
	return out
}

// IDs returns theme ids in catalog order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.themes))
	for _, t := range c.themes {
		ids = append(ids, t.ID)
	}
	return ids
}

// Get returns a clone of the theme with id.
func (c *Catalog) Get(id string) (toast.Theme, bool) {
	if c == nil {
		return toast.Theme{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return toast.Theme{}, false
	}
	return c.themes[i].Clone(), true
}

// First returns the theme a session starts with.
func (c *Catalog) First() (toast.Theme, error) {
	if c.Len() == 0 {
		return toast.Theme{}, tlerrors.NewThemeError("", "catalog is empty", nil)
	}
	return c.themes[0].Clone(), nil
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
