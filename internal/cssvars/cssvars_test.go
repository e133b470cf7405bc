package cssvars

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
)

const sample = `:root {
  --tl-bg: #ffffff;
  --tl-fg: #020817;
  --tl-width: 380px;
}

.dark {
  --tl-bg: #0a0a0a;
}

.toastlab-shell {
  background: var(--tl-bg);
  width: var(--tl-width);
}
`

func TestGetPrefersDarkScopeInDarkMode(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#0a0a0a", Get(sample, Background, toast.Dark))
	require.Equal(t, "#ffffff", Get(sample, Background, toast.Light))
	require.Equal(t, "#020817", Get(sample, Foreground, toast.Dark))
	require.Equal(t, "", Get(sample, Primary, toast.Dark))
	require.Equal(t, "", Get("", Primary, toast.Light))
}

func TestGetReturnsLastDuplicate(t *testing.T) {
	t.Parallel()

	src := ":root { --tl-gap: 12px; --tl-gap: 14px }"
	require.Equal(t, "14px", Get(src, Gap, toast.Light))
}

func TestSetColorKeysAreModeScoped(t *testing.T) {
	t.Parallel()

	dark := Set(sample, map[string]string{Background: "#111111"}, toast.Dark)
	require.Equal(t, "#ffffff", Get(dark, Background, toast.Light))
	require.Equal(t, "#111111", Get(dark, Background, toast.Dark))

	light := Set(sample, map[string]string{Background: "#fafafa"}, toast.Light)
	require.Equal(t, "#fafafa", Get(light, Background, toast.Light))
	require.Equal(t, "#0a0a0a", Get(light, Background, toast.Dark))
}

func TestSetGlobalKeysGoToBaseScope(t *testing.T) {
	t.Parallel()

	out := Set(sample, map[string]string{Width: "440px", Duration: "5000ms"}, toast.Dark)

	base, dark := Scopes(out)
	require.Equal(t, "440px", base[Width])
	require.Equal(t, "5000ms", base[Duration])
	require.NotContains(t, dark, Width)
	require.NotContains(t, dark, Duration)
	require.Contains(t, out, "  --tl-width: 440px;\n")
	require.Contains(t, out, "  --tl-duration: 5000ms;\n}")
}

func TestSetRoundTrip(t *testing.T) {
	t.Parallel()

	updates := map[string]string{
		Background:  "rgba(0, 0, 0, 0.5)",
		Primary:     "#635bff",
		LoaderBG:    "linear-gradient(to right, color-mix(in srgb, var(--tl-primary), transparent 80%), var(--tl-primary))",
		LoaderInset: "auto 0 0 0",
		Gap:         "12px",
	}
	for _, mode := range toast.PreviewModes() {
		out := Set(sample, updates, mode)
		for name, value := range updates {
			require.Equal(t, value, Get(out, name, mode), "%s in %s", name, mode)
		}
	}
}

func TestSetTrimsValues(t *testing.T) {
	t.Parallel()

	out := Set(sample, map[string]string{Radius: " 12px ", Primary: "\t#635bff\n"}, toast.Light)
	require.Equal(t, "12px", Get(out, Radius, toast.Light))
	require.Equal(t, "#635bff", Get(out, Primary, toast.Light))
	require.Contains(t, out, "--tl-radius: 12px;")
}

func TestSetMissingDarkScopeDropsDarkWrites(t *testing.T) {
	t.Parallel()

	src := ":root {\n  --tl-bg: #fff;\n}\n"
	out := Set(src, map[string]string{Background: "#000", Gap: "8px"}, toast.Dark)

	require.Equal(t, ":root {\n  --tl-bg: #fff;\n  --tl-gap: 8px;\n}\n", out)
	require.NotContains(t, out, DarkSelector)
}

func TestSetLeavesSiblingBlocksIntact(t *testing.T) {
	t.Parallel()

	out := Set(sample, map[string]string{Width: "680px", Background: "#222"}, toast.Dark)

	shell := sample[strings.Index(sample, ".toastlab-shell"):]
	require.True(t, strings.HasSuffix(out, shell))
	require.Equal(t, 1, strings.Count(out, ":root {"))
	require.Equal(t, 1, strings.Count(out, ".dark {"))
}

func TestSetReplacesEveryOccurrence(t *testing.T) {
	t.Parallel()

	src := ":root { --tl-gap: 12px; --tl-gap: 14px; }"
	out := Set(src, map[string]string{Gap: "20px"}, toast.Light)
	require.Equal(t, ":root { --tl-gap: 20px; --tl-gap: 20px; }", out)
}

func TestSetAddsMissingSemicolonBeforeAppending(t *testing.T) {
	t.Parallel()

	out := Set(":root{--tl-bg:#fff}", map[string]string{Gap: "4px"}, toast.Light)
	require.Equal(t, ":root{--tl-bg:#fff;\n  --tl-gap: 4px;\n}", out)
	require.Equal(t, "#fff", Get(out, Background, toast.Light))

	out = Set(":root {}", map[string]string{Gap: "4px"}, toast.Light)
	require.Equal(t, ":root {\n  --tl-gap: 4px;\n}", out)
}

func TestSetIgnoresUnsafeUpdates(t *testing.T) {
	t.Parallel()

	out := Set(sample, map[string]string{
		Gap:         "1px; } body { color: red",
		"--tl-x y":  "1px",
		"color":     "red",
		Offset:      "calc(1px + 2px",
		LoaderInset: "0 0 auto 0",
	}, toast.Light)

	require.Equal(t, "0 0 auto 0", Get(out, LoaderInset, toast.Light))
	require.Equal(t, "", Get(out, Gap, toast.Light))
	require.Equal(t, "", Get(out, Offset, toast.Light))
	require.NotContains(t, out, "body")
}

func TestSetNeverWritesUnclosedScope(t *testing.T) {
	t.Parallel()

	src := ":root { --tl-bg: #fff;"
	require.Equal(t, src, Set(src, map[string]string{Gap: "1px"}, toast.Light))
	require.Equal(t, "#fff", Get(src, Background, toast.Light))
}

func TestSetIsDeterministic(t *testing.T) {
	t.Parallel()

	updates := map[string]string{Width: "1px", Padding: "2px", FontSize: "3px", Gap: "4px", Offset: "5px"}
	first := Set(sample, updates, toast.Light)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Set(sample, updates, toast.Light))
	}
}

func TestScopesBracesInStrings(t *testing.T) {
	t.Parallel()

	src := ":root { --tl-shadow: \"}\"; --tl-bg: #fff; }\n.dark { --tl-bg: #000; }"
	base, dark := Scopes(src)
	require.Equal(t, "#fff", base[Background])
	require.Equal(t, "\"}\"", base[Shadow])
	require.Equal(t, map[string]string{Background: "#000"}, dark)
}

func TestIsColorKey(t *testing.T) {
	t.Parallel()

	for _, key := range []string{Background, Border, Foreground, Muted, Primary} {
		require.True(t, IsColorKey(key), key)
	}
	for _, key := range []string{Radius, Width, Duration, LoaderBG} {
		require.False(t, IsColorKey(key), key)
	}
}
