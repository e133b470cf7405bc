package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toastlab/internal/audio"
	"github.com/alexisbeaulieu97/toastlab/internal/ports"
	"github.com/alexisbeaulieu97/toastlab/internal/preview"
	"github.com/alexisbeaulieu97/toastlab/internal/tui/studio"
)

type studioOptions struct {
	logFile string
	mute    bool
}

func newStudioCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &studioOptions{}

	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Launch the interactive notification studio",
		Long: `Launch the interactive studio. Every edit is validated and, once the
configuration settles, previewed as a live notification with its sound.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStudio(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file while the studio runs")
	cmd.Flags().BoolVar(&opts.mute, "mute", false, "Never ring the terminal bell")

	return cmd
}

func runStudio(cmd *cobra.Command, rootFlags *rootFlags, opts *studioOptions) error {
	// The studio owns the terminal, so logs only go to an explicit file.
	var logWriter io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return newCommandError("studio", "opening log file", err, "Check the --log-file path.")
		}
		defer f.Close()
		logWriter = f
	}

	app, err := newAppContext(cmd, rootFlags, logWriter)
	if err != nil {
		return err
	}
	s, err := app.newStore()
	if err != nil {
		return newCommandError("studio", "building configuration", err, "Run 'toastlab themes list' to see the available themes.")
	}

	var engine ports.AudioEngine
	if !opts.mute {
		engine = audio.NewSynth(audio.BellFactory(cmd.OutOrStdout(), app.logger), app.logger)
	}

	notifier := studio.NewNotifier(8)
	driver := preview.NewDriver(preview.Options{
		Notifier:  notifier,
		Audio:     engine,
		Publisher: app.publisher,
		Debounce:  app.session.Debounce,
		Logger:    app.logger,
	})

	app.logger.Info("studio started")
	err = studio.Run(app.ctx, studio.Options{
		Store:            s,
		Driver:           driver,
		Notifier:         notifier,
		Logger:           app.logger,
		FollowHostScheme: app.profile == nil || app.profile.PreviewMode == "",
	})
	if err != nil {
		return newCommandError("studio", "running the studio", err, "Make sure the terminal supports full-screen applications.")
	}
	app.logger.Info("studio closed")
	return nil
}
