package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toastlab/internal/cssvars"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
)

type varsOptions struct {
	file  string
	mode  string
	write bool
}

func newVarsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &varsOptions{}

	cmd := &cobra.Command{
		Use:   "vars",
		Short: "Read and edit --tl-* stylesheet variables",
		Long: `Read and edit stylesheet variables. Without --file the commands work on
the stylesheet of the starting theme. Color variables are read from and
written to the .dark scope in dark mode.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Stylesheet to work on instead of the starting theme")
	cmd.PersistentFlags().StringVar(&opts.mode, "mode", string(toast.Light), "Preview mode: light or dark")

	cmd.AddCommand(newVarsGetCmd(rootFlags, opts))
	cmd.AddCommand(newVarsSetCmd(rootFlags, opts))
	cmd.AddCommand(newVarsListCmd(rootFlags, opts))

	return cmd
}

func newVarsGetCmd(rootFlags *rootFlags, opts *varsOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print the value of a variable",
		Example: `  toastlab vars get tl-radius
  toastlab vars get --mode dark -- --tl-primary`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, src, err := loadVarsSource(cmd, rootFlags, opts)
			if err != nil {
				return err
			}
			name := varName(args[0])
			value := cssvars.Get(src, name, mode)
			if value == "" {
				return newCommandError("vars get", "looking up "+name, errors.New("variable is not declared"), "Run 'toastlab vars list' to see the declared variables.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newVarsSetCmd(rootFlags *rootFlags, opts *varsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <name=value>...",
		Short: "Write variables into a stylesheet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updates, err := parseAssignments(args)
			if err != nil {
				return newCommandError("vars set", "parsing assignments", err, "Pass assignments as tl-radius=12px.")
			}
			mode, src, err := loadVarsSource(cmd, rootFlags, opts)
			if err != nil {
				return err
			}

			out := cssvars.Set(src, updates, mode)
			if opts.write {
				if opts.file == "" {
					return newCommandError("vars set", "writing result", errors.New("--write needs --file"), "Pass the stylesheet to rewrite with --file.")
				}
				info, err := os.Stat(opts.file)
				if err != nil {
					return newCommandError("vars set", "writing "+opts.file, err, "Check the file permissions.")
				}
				if err := os.WriteFile(opts.file, []byte(out), info.Mode().Perm()); err != nil {
					return newCommandError("vars set", "writing "+opts.file, err, "Check the file permissions.")
				}
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Rewrite --file in place instead of printing")
	return cmd
}

func newVarsListCmd(rootFlags *rootFlags, opts *varsOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the variables of both scopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, src, err := loadVarsSource(cmd, rootFlags, opts)
			if err != nil {
				return err
			}

			base, dark := cssvars.Scopes(src)
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "SCOPE\tNAME\tVALUE")
			writeScope(writer, cssvars.BaseSelector, base)
			writeScope(writer, cssvars.DarkSelector, dark)
			return writer.Flush()
		},
	}
}

func writeScope(writer *tabwriter.Writer, scope string, vars map[string]string) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", scope, name, vars[name])
	}
}

// loadVarsSource returns the preview mode and the stylesheet the vars
// commands operate on.
func loadVarsSource(cmd *cobra.Command, rootFlags *rootFlags, opts *varsOptions) (toast.PreviewMode, string, error) {
	mode := toast.PreviewMode(opts.mode)
	if !mode.Valid() {
		return "", "", newCommandError(cmd.CommandPath(), "parsing --mode", fmt.Errorf("unknown mode %q", opts.mode), "Use --mode light or --mode dark.")
	}

	if opts.file != "" {
		src, err := readSource(cmd, opts.file)
		if err != nil {
			return "", "", newCommandError(cmd.CommandPath(), "reading "+opts.file, err, "Pass a readable CSS file.")
		}
		return mode, src, nil
	}

	app, err := newAppContext(cmd, rootFlags, nil)
	if err != nil {
		return "", "", err
	}
	s, err := app.newStore()
	if err != nil {
		return "", "", newCommandError(cmd.CommandPath(), "building configuration", err, "Run 'toastlab themes list' to see the available themes.")
	}
	return mode, s.Snapshot().Theme.CustomCSS, nil
}
