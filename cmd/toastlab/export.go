package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toastlab/internal/export"
	"github.com/alexisbeaulieu97/toastlab/internal/ports"
)

const (
	snippetFile    = "toaster.tsx"
	stylesheetFile = "toastlab.css"
)

type exportOptions struct {
	outDir     string
	diff       bool
	jsonOutput bool
	vars       []string
}

func newExportCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate the integration snippet and stylesheet for the configuration",
		Long: `Generate the integration snippet and the hardened stylesheet for the
starting configuration (theme, profile and --var edits applied).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Write "+snippetFile+" and "+stylesheetFile+" into this directory")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Print the stylesheet changes against the untouched theme instead")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the artifacts as JSON")
	cmd.Flags().StringArrayVar(&opts.vars, "var", nil, "Stylesheet variable edit NAME=VALUE (repeatable)")

	return cmd
}

type exportJSONPayload struct {
	Theme  string `json:"theme"`
	Digest string `json:"digest"`
	export.Artifacts
}

func runExport(cmd *cobra.Command, rootFlags *rootFlags, opts *exportOptions) error {
	updates, err := parseAssignments(opts.vars)
	if err != nil {
		return newCommandError("export", "parsing --var", err, "Pass edits as --var --tl-radius=12px.")
	}

	app, err := newAppContext(cmd, rootFlags, nil)
	if err != nil {
		return err
	}

	s, err := app.newStore()
	if err != nil {
		return newCommandError("export", "building configuration", err, "Run 'toastlab themes list' to see the available themes.")
	}
	if len(updates) > 0 {
		if err := s.SetCSSVariables(app.ctx, updates); err != nil {
			return newCommandError("export", "applying --var edits", err, "Check the variable names and values.")
		}
	}
	cfg := s.Snapshot()

	if opts.diff {
		preset, _ := s.Workspace().Pristine(cfg.Theme.ID)
		out := export.Diff(preset, cfg)
		if out == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No stylesheet changes for theme %s.\n", cfg.Theme.ID)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	artifacts, err := export.Generate(cfg)
	if err != nil {
		return newCommandError("export", "rendering artifacts", err, "Re-run with --verbose and report the output.")
	}
	digest := artifacts.Digest()

	if err := app.publisher.Publish(app.ctx, ports.NewEvent(ports.EventExportGenerated, map[string]interface{}{
		"theme":  cfg.Theme.ID,
		"digest": digest,
	})); err != nil {
		app.logger.Error(err, "failed to publish export event")
	}

	switch {
	case opts.outDir != "":
		return writeArtifacts(cmd, opts.outDir, artifacts)
	case opts.jsonOutput:
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(exportJSONPayload{Theme: cfg.Theme.ID, Digest: digest, Artifacts: artifacts})
	default:
		fmt.Fprint(cmd.OutOrStdout(), artifacts.Snippet)
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), artifacts.Stylesheet)
		return nil
	}
}

func writeArtifacts(cmd *cobra.Command, dir string, artifacts export.Artifacts) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newCommandError("export", "creating output directory", err, "Check the permissions of "+dir+".")
	}

	files := []struct {
		name    string
		content string
	}{
		{name: snippetFile, content: artifacts.Snippet},
		{name: stylesheetFile, content: artifacts.Stylesheet},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return newCommandError("export", "writing "+path, err, "Check the permissions of "+dir+".")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}

// varName accepts variable names with or without the leading "--" so they
// can be passed as positional arguments without a "--" separator.
func varName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}

// parseAssignments turns NAME=VALUE arguments into a map. Later assignments
// win.
func parseAssignments(args []string) (map[string]string, error) {
	updates := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("expected NAME=VALUE, got %q", arg)
		}
		updates[varName(name)] = strings.TrimSpace(value)
	}
	return updates, nil
}
