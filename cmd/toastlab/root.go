package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose  bool
	profile  string
	envFile  string
	theme    string
	catalogs []string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "toastlab",
		Short:         "toastlab designs notification styles and exports them as code",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.profile, "profile", "p", "", "Studio profile (YAML or TOML) describing the starting configuration")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Read TOASTLAB_* settings from this dotenv file")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Starting theme id")
	cmd.PersistentFlags().StringArrayVar(&flags.catalogs, "catalog", nil, "Extra theme catalog file (repeatable)")

	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newCanonicalizeCmd())
	cmd.AddCommand(newVarsCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newStudioCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
