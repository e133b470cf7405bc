package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toastlab/internal/cssvars"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/store"
	"github.com/alexisbeaulieu97/toastlab/internal/theme"
	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

const validYAML = `version: "1.0"
name: Marketing site
theme: apple
theme_policy: reset
preview_mode: light
settings:
  duration: 6000
  toast_size: xl
  sound_enabled: true
  sound_preset: success
icons:
  success:
    mode: custom
    custom_svg: "<svg/>"
  loading:
    preset: loader
variables:
  --tl-radius: 4px
  --tl-primary: "#ff0066"
preview:
  debounce: 350ms
`

const validTOML = `version = "1.0"
theme = "nord"

[settings]
gap = 24
loader_variant = "gradient"

[icons.error]
mode = "preset"
preset = "error"
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, p *Profile, err error)
	}{
		{
			name:     "yaml profile is parsed",
			file:     "profile.yaml",
			contents: validYAML,
			assert: func(t *testing.T, p *Profile, err error) {
				require.NoError(t, err)
				require.Equal(t, "apple", p.Theme)
				require.Equal(t, 6000, *p.Settings.Duration)
				require.Equal(t, toast.SizeXLarge, *p.Settings.ToastSize)
				require.Equal(t, "custom", p.Icons[toast.KindSuccess].Mode)
				require.Equal(t, "4px", p.Variables[cssvars.Radius])
				require.Equal(t, "350ms", p.Preview.Debounce)
				require.NotEmpty(t, p.Path)
			},
		},
		{
			name:     "toml profile is parsed",
			file:     "profile.toml",
			contents: validTOML,
			assert: func(t *testing.T, p *Profile, err error) {
				require.NoError(t, err)
				require.Equal(t, "nord", p.Theme)
				require.Equal(t, 24, *p.Settings.Gap)
				require.Equal(t, toast.LoaderGradient, *p.Settings.LoaderVariant)
				require.Equal(t, "error", p.Icons[toast.KindError].Preset)
			},
		},
		{
			name:     "yaml syntax error reports line",
			file:     "broken.yaml",
			contents: "version: \"1.0\"\nsettings:\n  duration: [1, 2\n",
			assert: func(t *testing.T, p *Profile, err error) {
				var parseErr *tlerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "toml syntax error reports line",
			file:     "broken.toml",
			contents: "version = \"1.0\"\n\n[settings\n",
			assert: func(t *testing.T, p *Profile, err error) {
				var parseErr *tlerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
				require.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			file:     "typo.yaml",
			contents: "version: \"1.0\"\nsetings:\n  gap: 3\n",
			assert: func(t *testing.T, p *Profile, err error) {
				var parseErr *tlerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
			},
		},
		{
			name:     "missing version fails validation",
			file:     "nover.yaml",
			contents: "theme: shadcn\n",
			assert: func(t *testing.T, p *Profile, err error) {
				var validationErr *tlerrors.ValidationError
				require.True(t, errors.As(err, &validationErr))
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name:     "unsupported extension",
			file:     "profile.json",
			contents: "{}",
			assert: func(t *testing.T, p *Profile, err error) {
				var parseErr *tlerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), tc.file, tc.contents)
			p, err := LoadProfile(path)
			tc.assert(t, p, err)
		})
	}
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		profile   Profile
		wantField string
	}{
		{name: "bad theme id", profile: Profile{Version: "1.0", Theme: "Bad Theme"}, wantField: "theme"},
		{name: "bad policy", profile: Profile{Version: "1.0", ThemePolicy: "forever"}, wantField: "themepolicy"},
		{name: "bad preview mode", profile: Profile{Version: "1.0", PreviewMode: "sepia"}, wantField: "previewmode"},
		{name: "bad debounce", profile: Profile{Version: "1.0", Preview: PreviewSettings{Debounce: "soon"}}, wantField: "preview.debounce"},
		{
			name:      "bad icon kind",
			profile:   Profile{Version: "1.0", Icons: map[toast.Kind]IconSetting{"fatal": {Mode: "preset"}}},
			wantField: "icons[fatal]",
		},
		{
			name:      "bad icon mode",
			profile:   Profile{Version: "1.0", Icons: map[toast.Kind]IconSetting{toast.KindInfo: {Mode: "emoji"}}},
			wantField: "icons[info].mode",
		},
		{
			name:      "bad variable name",
			profile:   Profile{Version: "1.0", Variables: map[string]string{"radius": "4px"}},
			wantField: "variables[radius]",
		},
		{
			name:      "variable value breaks block",
			profile:   Profile{Version: "1.0", Variables: map[string]string{"--tl-radius": "4px; }"}},
			wantField: "variables.--tl-radius",
		},
		{
			name:      "settings out of range",
			profile:   Profile{Version: "1.0", Settings: toast.Overrides{IconSize: toast.Ptr(4)}},
			wantField: "settings.iconsize",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateProfile(&tc.profile)
			var validationErr *tlerrors.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			require.Equal(t, tc.wantField, validationErr.Field)
		})
	}

	require.Error(t, ValidateProfile(nil))
}

func TestLoadEnv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "TOASTLAB_THEME=dracula\nTOASTLAB_LOG_LEVEL=debug\nTOASTLAB_DEBOUNCE=50ms\n")

	process := map[string]string{EnvTheme: "nord"}
	lookup := func(key string) (string, bool) {
		v, ok := process[key]
		return v, ok
	}

	env, err := LoadEnv(envFile, lookup)
	require.NoError(t, err)
	require.Equal(t, "nord", env.Theme)
	require.Equal(t, "debug", env.LogLevel)
	require.Equal(t, 50*time.Millisecond, env.Debounce)

	_, err = LoadEnv(filepath.Join(dir, "missing.env"), lookup)
	var parseErr *tlerrors.ParseError
	require.True(t, errors.As(err, &parseErr))

	process[EnvDebounce] = "-1s"
	_, err = LoadEnv("", lookup)
	var validationErr *tlerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, EnvDebounce, validationErr.Field)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	session, err := Resolve(nil, Env{})
	require.NoError(t, err)
	require.Equal(t, theme.PolicyPersist, session.Policy)
	require.Equal(t, 200*time.Millisecond, session.Debounce)
	require.Empty(t, session.ThemeID)

	profile := &Profile{Version: "1.0", Theme: "apple", ThemePolicy: "reset", Preview: PreviewSettings{Debounce: "350ms"}}
	session, err = Resolve(profile, Env{})
	require.NoError(t, err)
	require.Equal(t, "apple", session.ThemeID)
	require.Equal(t, theme.PolicyReset, session.Policy)
	require.Equal(t, 350*time.Millisecond, session.Debounce)

	session, err = Resolve(profile, Env{Theme: "nord", ThemePolicy: "persist", Debounce: time.Second, LogLevel: "warn"})
	require.NoError(t, err)
	require.Equal(t, "nord", session.ThemeID)
	require.Equal(t, theme.PolicyPersist, session.Policy)
	require.Equal(t, time.Second, session.Debounce)
	require.Equal(t, "warn", session.LogLevel)

	_, err = Resolve(nil, Env{ThemePolicy: "forever"})
	var validationErr *tlerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestProfileAppliesToStore(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "profile.yaml", validYAML)
	profile, err := LoadProfile(path)
	require.NoError(t, err)

	base, err := theme.Builtin()
	require.NoError(t, err)
	catalog, err := profile.Catalog(base)
	require.NoError(t, err)

	ctx := context.Background()
	s, err := store.New(ctx, store.Options{
		Workspace: theme.NewWorkspace(catalog, theme.PolicyPersist),
		ThemeID:   profile.Theme,
		Overrides: profile.Overrides(),
	})
	require.NoError(t, err)
	require.NoError(t, profile.ApplyTo(ctx, s))

	cfg := s.Snapshot()
	require.Equal(t, toast.Light, cfg.PreviewMode)
	require.Equal(t, toast.SizeXLarge, cfg.ToastSize)
	require.Equal(t, toast.TopCenter, cfg.Position)
	require.Equal(t, toast.IconCustom, cfg.Icon(toast.KindSuccess).Mode)
	require.Equal(t, "<svg/>", cfg.Icon(toast.KindSuccess).CustomSVG)
	require.Equal(t, "loader", cfg.Icon(toast.KindLoading).Preset)
	require.Equal(t, toast.IconPreset, cfg.Icon(toast.KindLoading).Mode)
	require.Equal(t, "4px", s.CSSVariable(cssvars.Radius))
	require.Equal(t, "#ff0066", s.CSSVariable(cssvars.Primary))
	require.Equal(t, "540px", s.CSSVariable(cssvars.Width))
}

func TestProfileCatalogsAreRelativeToProfile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "brand.toml", `[[themes]]
id = "brand"
name = "Brand"
radius = "3px"
border_width = "1px"
shadow = "none"

[themes.light]
background = "#ffffff"
border = "#eeeeee"
foreground = "#111111"
muted = "#666666"
primary = "#ff0066"
`)
	path := writeFile(t, dir, "profile.yaml", "version: \"1.0\"\ntheme: brand\ncatalogs:\n  - brand.toml\n")

	profile, err := LoadProfile(path)
	require.NoError(t, err)
	base, err := theme.Builtin()
	require.NoError(t, err)

	catalog, err := profile.Catalog(base)
	require.NoError(t, err)
	require.Equal(t, base.Len()+1, catalog.Len())
	brand, ok := catalog.Get("brand")
	require.True(t, ok)
	require.Equal(t, "3px", cssvars.Get(brand.CustomCSS, cssvars.Radius, toast.Light))

	missing := &Profile{Version: "1.0", Catalogs: []string{"nope.yaml"}, Path: path}
	_, err = missing.Catalog(base)
	require.Error(t, err)
}
