package theme

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
)

// Palette is the color set of one scope.
type Palette struct {
	Background string `yaml:"background" toml:"background"`
	Border     string `yaml:"border" toml:"border"`
	Foreground string `yaml:"foreground" toml:"foreground"`
	Muted      string `yaml:"muted" toml:"muted"`
	Primary    string `yaml:"primary" toml:"primary"`
}

func (p Palette) complete() bool {
	return p.Background != "" && p.Border != "" && p.Foreground != "" && p.Muted != "" && p.Primary != ""
}

// Preset is the catalog description of a theme. A preset either carries a
// ready stylesheet in CustomCSS or palettes and metrics that are rendered into
// the standard stylesheet.
type Preset struct {
	ID          string           `yaml:"id" toml:"id"`
	Name        string           `yaml:"name" toml:"name"`
	Description string           `yaml:"description" toml:"description"`
	Light       Palette          `yaml:"light" toml:"light"`
	Dark        *Palette         `yaml:"dark,omitempty" toml:"dark,omitempty"`
	Radius      string           `yaml:"radius" toml:"radius"`
	BorderWidth string           `yaml:"border_width" toml:"border_width"`
	Shadow      string           `yaml:"shadow" toml:"shadow"`
	Blur        string           `yaml:"blur,omitempty" toml:"blur,omitempty"`
	CustomCSS   string           `yaml:"custom_css,omitempty" toml:"custom_css,omitempty"`
	Defaults    *toast.Overrides `yaml:"defaults,omitempty" toml:"defaults,omitempty"`
}

type stylesheetData struct {
	Preset
	Size           toast.SizeSpec
	Duration       int
	Gap            int
	Offset         int
	LoaderInset    string
	LoaderBG       string
	ShellClass     string
	LoaderClass    string
	ProgressMotion string
}

var stylesheetTemplate = template.Must(template.New("stylesheet").Parse(`:root {
  --tl-bg: {{.Light.Background}};
  --tl-border: {{.Light.Border}};
  --tl-fg: {{.Light.Foreground}};
  --tl-muted: {{.Light.Muted}};
  --tl-primary: {{.Light.Primary}};
  --tl-radius: {{.Radius}};
  --tl-border-width: {{.BorderWidth}};
  --tl-shadow: {{.Shadow}};
  --tl-width: {{.Size.Width}};
  --tl-padding: {{.Size.Padding}};
  --tl-font-size: {{.Size.FontSize}};
  --tl-duration: {{.Duration}}ms;
  --tl-gap: {{.Gap}}px;
  --tl-offset: {{.Offset}}px;
  --tl-loader-inset: {{.LoaderInset}};
  --tl-loader-bg: {{.LoaderBG}};
}
{{with .Dark}}
.dark {
  --tl-bg: {{.Background}};
  --tl-border: {{.Border}};
  --tl-fg: {{.Foreground}};
  --tl-muted: {{.Muted}};
  --tl-primary: {{.Primary}};
}
{{end}}
.{{.ShellClass}} {
  background: var(--tl-bg);
  color: var(--tl-fg);
  border: var(--tl-border-width) solid var(--tl-border);
  border-radius: var(--tl-radius);
  box-shadow: var(--tl-shadow);
  width: var(--tl-width);
  padding: var(--tl-padding);
  font-size: var(--tl-font-size);
  position: relative;
  overflow: hidden;
{{- with .Blur}}
  backdrop-filter: blur({{.}});
{{- end}}
}

.{{.ShellClass}} [data-description] {
  color: var(--tl-muted);
}

.{{.ShellClass}} [data-icon] {
  color: var(--tl-primary);
}

.{{.LoaderClass}}::after {
  content: "";
  position: absolute;
  inset: var(--tl-loader-inset);
  height: 3px;
  background: var(--tl-loader-bg);
  transform-origin: left;
  animation: {{.ProgressMotion}} var(--tl-duration) linear forwards;
}

/* Progress bar drains over the toast lifetime. */
@keyframes {{.ProgressMotion}} {
  from { transform: scaleX(1); }
  to { transform: scaleX(0); }
}
`))

// Class names shared by the stylesheet and the notification host.
const (
	ShellClass     = "toastlab-shell"
	LoaderClass    = "toastlab-has-loader"
	ProgressMotion = "toastlab-progress"
)

// Render turns the preset into a theme. The derived variables are seeded from
// the base configuration with the preset's defaults applied.
func (p Preset) Render() (toast.Theme, error) {
	theme := toast.Theme{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CustomCSS:   p.CustomCSS,
	}
	if p.Defaults != nil {
		defaults := p.Defaults.Clone()
		theme.Defaults = &defaults
	}
	if theme.CustomCSS != "" {
		return theme, nil
	}

	cfg := toast.Base()
	if p.Defaults != nil {
		cfg = p.Defaults.Apply(cfg)
	}

	data := stylesheetData{
		Preset:         p,
		Size:           toast.SizeFor(cfg.ToastSize),
		Duration:       cfg.Duration,
		Gap:            cfg.Gap,
		Offset:         cfg.Offset,
		LoaderInset:    cfg.LoaderPosition.Inset(),
		LoaderBG:       cfg.LoaderVariant.Background(),
		ShellClass:     ShellClass,
		LoaderClass:    LoaderClass,
		ProgressMotion: ProgressMotion,
	}

	var buf bytes.Buffer
	if err := stylesheetTemplate.Execute(&buf, data); err != nil {
		return toast.Theme{}, err
	}
	theme.CustomCSS = collapseBlankLines(buf.String())
	return theme, nil
}

func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
