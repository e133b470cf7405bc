package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toastlab/internal/config"
	"github.com/alexisbeaulieu97/toastlab/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/toastlab/internal/logger"
	"github.com/alexisbeaulieu97/toastlab/internal/ports"
	"github.com/alexisbeaulieu97/toastlab/internal/store"
	"github.com/alexisbeaulieu97/toastlab/internal/theme"
)

// appContext bundles the services a command needs. It is built once per
// command execution.
type appContext struct {
	ctx       context.Context
	logger    *logger.Logger
	publisher *events.LoggingPublisher
	profile   *config.Profile
	session   config.Session
	catalog   *theme.Catalog
}

// newAppContext resolves configuration from the profile, the environment and
// the flags, in increasing order of precedence. logWriter receives the logs;
// nil means the command's stderr.
func newAppContext(cmd *cobra.Command, flags *rootFlags, logWriter io.Writer) (*appContext, error) {
	env, err := config.LoadEnv(flags.envFile, nil)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "reading environment", err, "Check the TOASTLAB_* variables and the --env-file path.")
	}

	var profile *config.Profile
	if flags.profile != "" {
		profile, err = config.LoadProfile(flags.profile)
		if err != nil {
			return nil, newCommandError(cmd.Name(), "loading profile "+flags.profile, err, "Fix the reported field or run without --profile.")
		}
	}

	session, err := config.Resolve(profile, env)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "resolving session settings", err, "Use 'persist' or 'reset' for the theme policy and a Go duration such as 200ms for the debounce.")
	}
	if flags.theme != "" {
		session.ThemeID = flags.theme
	}

	level := session.LogLevel
	if flags.verbose {
		level = "debug"
	}
	if logWriter == nil {
		logWriter = cmd.ErrOrStderr()
	}
	log, err := logger.New(logger.Options{Level: level, Auto: true, Writer: logWriter, Component: "cli"})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of trace, debug, info, warn or error for TOASTLAB_LOG_LEVEL.")
	}

	catalog, err := loadCatalog(profile, flags.catalogs)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading theme catalogs", err, "Check the catalog files passed with --catalog or listed in the profile.")
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	sessionID := ports.GenerateSessionID()
	ctx := ports.WithSessionID(parent, sessionID)
	log = log.WithFields(map[string]any{"session_id": sessionID})
	log.WithFields(map[string]any{
		"command": cmd.CommandPath(),
		"themes":  catalog.Len(),
		"policy":  string(session.Policy),
	}).Debug("session resolved")

	return &appContext{
		ctx:       ctx,
		logger:    log,
		publisher: events.NewLoggingPublisher(log.WithComponent("events")),
		profile:   profile,
		session:   session,
		catalog:   catalog,
	}, nil
}

func loadCatalog(profile *config.Profile, extra []string) (*theme.Catalog, error) {
	base, err := theme.Builtin()
	if err != nil {
		return nil, err
	}
	catalog, err := profile.Catalog(base)
	if err != nil {
		return nil, err
	}
	for _, path := range extra {
		more, err := theme.LoadCatalog(path)
		if err != nil {
			return nil, err
		}
		catalog = catalog.Merge(more)
	}
	return catalog, nil
}

// newStore builds the configuration store for the session and replays the
// profile into it.
func (a *appContext) newStore() (*store.Store, error) {
	s, err := store.New(a.ctx, store.Options{
		Workspace: theme.NewWorkspace(a.catalog, a.session.Policy),
		ThemeID:   a.session.ThemeID,
		Overrides: a.profile.Overrides(),
		Publisher: a.publisher,
		Logger:    a.logger,
	})
	if err != nil {
		return nil, err
	}
	if err := a.profile.ApplyTo(a.ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
