package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/toastlab/internal/css"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

type themesOptions struct {
	jsonOutput bool
}

func newThemesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Inspect the theme catalog",
	}
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemesList(cmd, rootFlags, opts)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <theme-id>",
		Short: "Show a theme's defaults and stylesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemesShow(cmd, rootFlags, opts, args[0])
		},
	})

	return cmd
}

type themeJSONPayload struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Defaults    *toast.Overrides `json:"defaults,omitempty"`
	Stylesheet  string           `json:"stylesheet,omitempty"`
}

func runThemesList(cmd *cobra.Command, rootFlags *rootFlags, opts *themesOptions) error {
	app, err := newAppContext(cmd, rootFlags, nil)
	if err != nil {
		return err
	}
	themes := app.catalog.Themes()

	if opts.jsonOutput {
		payload := make([]themeJSONPayload, 0, len(themes))
		for _, t := range themes {
			payload = append(payload, themeJSONPayload{ID: t.ID, Name: t.Name, Description: t.Description, Defaults: t.Defaults})
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tDESCRIPTION")
	for _, t := range themes {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", t.ID, t.Name, valueOrFallback(t.Description, "(none)"))
	}
	return writer.Flush()
}

func runThemesShow(cmd *cobra.Command, rootFlags *rootFlags, opts *themesOptions, id string) error {
	app, err := newAppContext(cmd, rootFlags, nil)
	if err != nil {
		return err
	}

	t, ok := app.catalog.Get(id)
	if !ok {
		return newCommandError("themes show", fmt.Sprintf("looking up theme %q", id), tlerrors.NewThemeError(id, "unknown theme", nil), "Run 'toastlab themes list' to view the available themes.")
	}
	stylesheet := css.Canonicalize(t.CustomCSS)

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(themeJSONPayload{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Defaults:    t.Defaults,
			Stylesheet:  stylesheet,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Theme: %s\n", t.ID)
	fmt.Fprintf(out, "Name:  %s\n", t.Name)
	fmt.Fprintf(out, "\nDescription:\n  %s\n", valueOrFallback(t.Description, "(none)"))

	fmt.Fprintln(out, "\nDefaults:")
	if t.Defaults == nil {
		fmt.Fprintln(out, "  (none)")
	} else {
		data, err := yaml.Marshal(t.Defaults)
		if err != nil {
			return newCommandError("themes show", "rendering defaults", err, "Report the theme id.")
		}
		fmt.Fprint(out, indent(string(data), "  "))
	}

	fmt.Fprintf(out, "\nStylesheet:\n%s", stylesheet)
	return nil
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func indent(text, prefix string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		b.WriteString(prefix)
		b.WriteString(line)
	}
	return b.String()
}
