package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toastlab/internal/export"
)

const sampleSheet = `:root {
  --tl-bg: #ffffff;
  --tl-primary: #020817;
  --tl-radius: 8px;
}

.dark {
  --tl-bg: #020817;
  --tl-primary: #f8fafc;
}
`

func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestExportPrintsSnippetAndStylesheet(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "export")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "import { Toaster, toast } from 'sonner';"))
	require.Contains(t, stdout, export.StylesheetHeader)
	require.Contains(t, stdout, `position="bottom-right"`)
}

func TestExportUsesThemeDefaults(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "export", "--theme", "aws")
	require.NoError(t, err)
	require.Contains(t, stdout, `position="top-right"`)
}

func TestExportJSONIsDeterministic(t *testing.T) {
	first, _, err := executeCommand(t, "", "export", "--json", "--theme", "apple")
	require.NoError(t, err)
	second, _, err := executeCommand(t, "", "export", "--json", "--theme", "apple")
	require.NoError(t, err)
	require.Equal(t, first, second)

	var payload exportJSONPayload
	require.NoError(t, json.Unmarshal([]byte(first), &payload))
	require.Equal(t, "apple", payload.Theme)
	require.Equal(t, payload.Artifacts.Digest(), payload.Digest)
	require.Contains(t, payload.Stylesheet, "--tl-width: 440px;")
}

func TestExportWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	stdout, _, err := executeCommand(t, "", "export", "--out", dir)
	require.NoError(t, err)
	require.Contains(t, stdout, snippetFile)

	snippet, err := os.ReadFile(filepath.Join(dir, snippetFile))
	require.NoError(t, err)
	require.Contains(t, string(snippet), "<Toaster")

	stylesheet, err := os.ReadFile(filepath.Join(dir, stylesheetFile))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(stylesheet), export.StylesheetHeader))
}

func TestExportDiffShowsVariableEdits(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "export", "--diff")
	require.NoError(t, err)
	require.Contains(t, stdout, "No stylesheet changes for theme shadcn.")

	stdout, _, err = executeCommand(t, "", "export", "--diff", "--var=--tl-radius=20px")
	require.NoError(t, err)
	require.Contains(t, stdout, "--- preset/shadcn.css")
	require.Contains(t, stdout, "-  --tl-radius: 8px;")
	require.Contains(t, stdout, "+  --tl-radius: 20px;")
}

func TestExportRejectsMalformedVar(t *testing.T) {
	_, _, err := executeCommand(t, "", "export", "--var=radius")
	require.Error(t, err)
	require.Contains(t, err.Error(), "NAME=VALUE")
}

func TestExportUnknownTheme(t *testing.T) {
	_, _, err := executeCommand(t, "", "export", "--theme", "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "themes list")
}

func TestExportReadsProfile(t *testing.T) {
	profile := writeTempFile(t, "profile.yaml", `version: "1.0"
theme: nord
settings:
  toast_size: xl
  sound_enabled: true
  sound_preset: error
variables:
  --tl-radius: 3px
`)

	stdout, _, err := executeCommand(t, "", "export", "--json", "--profile", profile)
	require.NoError(t, err)

	var payload exportJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "nord", payload.Theme)
	require.Contains(t, payload.Stylesheet, "--tl-width: 540px;")
	require.Contains(t, payload.Stylesheet, "--tl-radius: 3px;")
	require.Contains(t, payload.Snippet, "playToastSound")
}

func TestExportRejectsInvalidProfile(t *testing.T) {
	profile := writeTempFile(t, "profile.yaml", "version: \"1.0\"\nsettings:\n  icon_size: 100\n")

	_, _, err := executeCommand(t, "", "export", "--profile", profile)
	require.Error(t, err)
	require.Contains(t, err.Error(), "settings.iconsize")
}

func TestEnvFileSelectsTheme(t *testing.T) {
	envFile := writeTempFile(t, ".env", "TOASTLAB_THEME=dracula\n")

	stdout, _, err := executeCommand(t, "", "export", "--json", "--env-file", envFile)
	require.NoError(t, err)
	require.Contains(t, stdout, `"theme": "dracula"`)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := executeCommand(t, "", "export", "--verbose")
	require.NoError(t, err)
	require.Contains(t, stderr, "session resolved")
	require.Contains(t, stderr, "export.generated")
}

func TestCanonicalizeReadsStdin(t *testing.T) {
	stdout, _, err := executeCommand(t, ".a { color: red; }\n.a { margin: 0; }", "canonicalize")
	require.NoError(t, err)
	require.Equal(t, ".a {\n  color: red !important;\n  margin: 0 !important;\n}\n", stdout)
}

func TestCanonicalizeMissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "", "canonicalize", filepath.Join(t.TempDir(), "missing.css"))
	require.Error(t, err)
}

func TestVarsGet(t *testing.T) {
	sheet := writeTempFile(t, "theme.css", sampleSheet)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "light color", args: []string{"vars", "get", "tl-primary", "--file", sheet}, want: "#020817\n"},
		{name: "dark color", args: []string{"vars", "get", "--file", sheet, "--mode", "dark", "--", "--tl-primary"}, want: "#f8fafc\n"},
		{name: "global in dark mode", args: []string{"vars", "get", "tl-radius", "--file", sheet, "--mode", "dark"}, want: "8px\n"},
		{name: "starting theme", args: []string{"vars", "get", "tl-width", "--theme", "apple"}, want: "440px\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, "", tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, stdout)
		})
	}
}

func TestVarsGetErrors(t *testing.T) {
	sheet := writeTempFile(t, "theme.css", sampleSheet)

	_, _, err := executeCommand(t, "", "vars", "get", "tl-gap", "--file", sheet)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not declared")

	_, _, err = executeCommand(t, "", "vars", "get", "tl-bg", "--file", sheet, "--mode", "sepia")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--mode light")
}

func TestVarsSetWritesFile(t *testing.T) {
	sheet := writeTempFile(t, "theme.css", sampleSheet)

	_, _, err := executeCommand(t, "", "vars", "set", "tl-primary=#ff0066", "tl-gap=20px", "--file", sheet, "--mode", "dark", "--write")
	require.NoError(t, err)

	data, err := os.ReadFile(sheet)
	require.NoError(t, err)
	got := string(data)
	require.Contains(t, got, "--tl-primary: #020817;")
	require.Contains(t, got, "--tl-primary: #ff0066;")
	require.Contains(t, got, "--tl-gap: 20px;")

	stdout, _, err := executeCommand(t, "", "vars", "get", "tl-primary", "--file", sheet, "--mode", "dark")
	require.NoError(t, err)
	require.Equal(t, "#ff0066\n", stdout)
}

func TestVarsSetPrintsWithoutWrite(t *testing.T) {
	sheet := writeTempFile(t, "theme.css", sampleSheet)

	stdout, _, err := executeCommand(t, "", "vars", "set", "tl-radius=12px", "--file", sheet)
	require.NoError(t, err)
	require.Contains(t, stdout, "--tl-radius: 12px;")

	data, err := os.ReadFile(sheet)
	require.NoError(t, err)
	require.Equal(t, sampleSheet, string(data))
}

func TestVarsList(t *testing.T) {
	sheet := writeTempFile(t, "theme.css", sampleSheet)

	stdout, _, err := executeCommand(t, "", "vars", "list", "--file", sheet)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 6)
	require.Contains(t, lines[0], "SCOPE")
	require.Contains(t, lines[1], ":root")
	require.Contains(t, lines[1], "--tl-bg")
	require.Contains(t, lines[5], ".dark")
	require.Contains(t, lines[5], "--tl-primary")
}

func TestThemesList(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "themes", "list")
	require.NoError(t, err)
	require.Contains(t, stdout, "ID")
	require.Contains(t, stdout, "shadcn")
	require.Contains(t, stdout, "Apple Glass")

	stdout, _, err = executeCommand(t, "", "themes", "list", "--json")
	require.NoError(t, err)
	var payload []themeJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.NotEmpty(t, payload)
	require.Equal(t, "shadcn", payload[0].ID)
}

func TestThemesListIncludesExtraCatalog(t *testing.T) {
	catalog := writeTempFile(t, "brand.yaml", `themes:
  - id: brand
    name: Brand
    light: {background: "#ffffff", border: "#eeeeee", foreground: "#111111", muted: "#666666", primary: "#ff0066"}
    radius: 3px
    border_width: 1px
    shadow: none
`)

	stdout, _, err := executeCommand(t, "", "themes", "list", "--catalog", catalog)
	require.NoError(t, err)
	require.Contains(t, stdout, "brand")
}

func TestThemesShow(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "themes", "show", "apple")
	require.NoError(t, err)
	require.Contains(t, stdout, "Theme: apple")
	require.Contains(t, stdout, "position: top-center")
	require.Contains(t, stdout, "--tl-radius: 18px;")

	_, _, err = executeCommand(t, "", "themes", "show", "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme")
}
