package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toastlab/internal/css"
)

func newCanonicalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canonicalize [file]",
		Short: "Merge repeated selectors and mark declarations !important",
		Long: `Rewrite a stylesheet the way exports are written: one block per selector,
every ordinary declaration marked !important, custom properties untouched.
Reads standard input when no file (or "-") is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			src, err := readSource(cmd, path)
			if err != nil {
				return newCommandError("canonicalize", "reading "+path, err, "Pass a readable CSS file or pipe one on stdin.")
			}
			fmt.Fprint(cmd.OutOrStdout(), css.Canonicalize(src))
			return nil
		},
	}

	return cmd
}

// readSource reads path, or the command's stdin for "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
