package studio

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/export"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1)
		return m, nil

	case hostSchemeMsg:
		mode := toast.Light
		if msg.dark {
			mode = toast.Dark
		}
		m.apply(func(m *Model) error { return m.store.SyncHostScheme(m.ctx, mode) })
		return m, nil

	case toastMsg:
		m.nextToastID++
		id := m.nextToastID
		m.toasts = append(m.toasts, activeToast{id: id, props: msg.props})
		if len(m.toasts) > maxToasts {
			m.toasts = m.toasts[len(m.toasts)-maxToasts:]
		}
		cmds := []tea.Cmd{expireAfter(id, msg.props.Duration)}
		if m.notifier != nil {
			cmds = append(cmds, m.notifier.wait())
		}
		return m, tea.Batch(cmds...)

	case toastExpiredMsg:
		for i, t := range m.toasts {
			if t.id == msg.id {
				m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func expireAfter(id, durationMS int) tea.Cmd {
	if durationMS <= 0 {
		durationMS = 4000
	}
	return tea.Tick(time.Duration(durationMS)*time.Millisecond, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.driver != nil {
			m.driver.Close()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.pane != paneEditor {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.pane = paneEditor
			return m, nil
		case key.Matches(msg, m.keys.Export):
			m.openExport()
			return m, nil
		case key.Matches(msg, m.keys.Diff):
			m.openDiff()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(m.fields)) % len(m.fields)
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.fields)
	case key.Matches(msg, m.keys.Left):
		m.step(-1)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Toggle):
		m.step(1)
	case key.Matches(msg, m.keys.Kind):
		m.editing = m.editing.Next()
		m.observe()
	case key.Matches(msg, m.keys.Mode):
		mode := m.store.Snapshot().PreviewMode.Next()
		m.apply(setPatchMode(mode))
	case key.Matches(msg, m.keys.Export):
		m.openExport()
	case key.Matches(msg, m.keys.Diff):
		m.openDiff()
	}
	return m, nil
}

// step moves the selected row.
func (m *Model) step(delta int) {
	f := m.fields[m.cursor]
	c := f.step(m, m.store.Snapshot(), delta)
	if c == nil {
		m.observe()
		return
	}
	m.apply(c)
}

// apply commits c, records a rejection and notifies the preview driver.
func (m *Model) apply(c change) {
	if err := c(m); err != nil {
		m.lastError = err.Error()
		m.logger.Warn("edit rejected: " + err.Error())
		return
	}
	m.lastError = ""
	m.observe()
}

func (m *Model) openExport() {
	artifacts, err := export.Generate(m.store.Snapshot())
	if err != nil {
		m.lastError = err.Error()
		return
	}
	m.pane = paneExport
	m.viewport.SetContent(artifacts.Snippet + "\n" + artifacts.Stylesheet)
	m.viewport.GotoTop()
}

func (m *Model) openDiff() {
	cfg := m.store.Snapshot()
	preset, ok := m.store.Workspace().Pristine(cfg.Theme.ID)
	if !ok {
		return
	}
	content := export.Diff(preset, cfg)
	if content == "" {
		content = "No stylesheet edits for " + cfg.Theme.Name + "."
	}
	m.pane = paneDiff
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}
