// Package studio is the interactive terminal editor. It drives the
// configuration store from key presses and renders the notifications fired by
// the preview driver.
package studio

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/logger"
	"github.com/alexisbeaulieu97/toastlab/internal/ports"
	"github.com/alexisbeaulieu97/toastlab/internal/preview"
	"github.com/alexisbeaulieu97/toastlab/internal/store"
	"github.com/alexisbeaulieu97/toastlab/internal/tui/components"
)

// maxToasts is how many notifications are shown at once.
const maxToasts = 3

// Options configures a studio Model.
type Options struct {
	Store    *store.Store
	Driver   *preview.Driver
	Notifier *Notifier
	Logger   *logger.Logger
	// FollowHostScheme mirrors the terminal background into the preview
	// mode at startup. Terminals send no change notification and lipgloss
	// caches its background query, so later changes are not picked up.
	FollowHostScheme bool
	// HasDarkBackground reports the host color scheme. Defaults to
	// lipgloss.HasDarkBackground.
	HasDarkBackground func() bool
}

type activeToast struct {
	id    int
	props ports.ToastProps
}

// Model is the studio state.
type Model struct {
	ctx      context.Context
	store    *store.Store
	driver   *preview.Driver
	notifier *Notifier
	logger   *logger.Logger
	hostDark func() bool
	follow   bool

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	meter    components.Meter

	fields  []field
	cursor  int
	editing toast.Kind
	pane    pane

	toasts      []activeToast
	nextToastID int
	lastError   string

	width  int
	height int
}

// New creates the studio model. The current configuration is observed once so
// that the first real edit is compared against it.
func New(ctx context.Context, opts Options) Model {
	hostDark := opts.HasDarkBackground
	if hostDark == nil {
		hostDark = lipgloss.HasDarkBackground
	}

	m := Model{
		ctx:      ctx,
		store:    opts.Store,
		driver:   opts.Driver,
		notifier: opts.Notifier,
		logger:   opts.Logger.WithComponent("studio"),
		hostDark: hostDark,
		follow:   opts.FollowHostScheme,
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(80, 20),
		meter:    components.NewMeter(1, 12),
		fields:   defaultFields(),
		editing:  toast.KindSuccess,
		width:    80,
		height:   24,
	}
	m.observe()
	return m
}

// Init reads the host color scheme and starts listening for notifications.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.follow {
		cmds = append(cmds, m.detectScheme())
	}
	if m.notifier != nil {
		cmds = append(cmds, m.notifier.wait())
	}
	return tea.Batch(cmds...)
}

func (m Model) detectScheme() tea.Cmd {
	return func() tea.Msg {
		return hostSchemeMsg{dark: m.hostDark()}
	}
}

// observe forwards the current configuration to the preview driver.
func (m *Model) observe() {
	if m.driver == nil || m.store == nil {
		return
	}
	m.driver.Observe(m.ctx, m.store.Snapshot(), m.editing)
}

// Editing returns the notification kind whose icon is being edited.
func (m Model) Editing() toast.Kind {
	return m.editing
}

// Cursor returns the selected row.
func (m Model) Cursor() int {
	return m.cursor
}

// LastError returns the message of the last rejected edit.
func (m Model) LastError() string {
	return m.lastError
}
