package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/toastlab/internal/cssvars"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/export"
	"github.com/alexisbeaulieu97/toastlab/internal/ports"
	"github.com/alexisbeaulieu97/toastlab/internal/theme"
	"github.com/alexisbeaulieu97/toastlab/internal/tui/components"
	"github.com/alexisbeaulieu97/toastlab/pkg/diff"
)

// View renders the current model state
func (m Model) View() string {
	if m.store == nil {
		return "Initializing..."
	}

	var content strings.Builder
	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	switch m.pane {
	case paneExport, paneDiff:
		content.WriteString(m.viewport.View())
	default:
		content.WriteString(m.renderEditor())
	}

	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))
	return content.String()
}

func (m Model) renderHeader() string {
	cfg := m.store.Snapshot()
	title := titleStyle.Render("toastlab studio")

	section := "editor"
	switch m.pane {
	case paneExport:
		section = "export"
	case paneDiff:
		section = "diff vs preset"
	}
	meta := mutedStyle.Render(fmt.Sprintf("%s · %s · %s", cfg.Theme.Name, cfg.PreviewMode, section))
	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Left, title, " ", meta))
}

func (m Model) renderEditor() string {
	cfg := m.store.Snapshot()

	entries := make([]components.FieldEntry, 0, len(m.fields))
	for _, f := range m.fields {
		entry := components.FieldEntry{Label: f.label, Value: f.value(&m, cfg)}
		if f.dim != nil {
			entry.Dim = f.dim(cfg)
		}
		entries = append(entries, entry)
	}
	list := components.NewFieldList(entries, m.cursor).View()

	side := []string{m.renderSummary(cfg)}
	for i := len(m.toasts) - 1; i >= 0; i-- {
		side = append(side, renderToast(m.toasts[i].props, cfg))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		panelStyle.Render(list),
		panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, side...)),
	)
}

func (m Model) renderSummary(cfg toast.Config) string {
	workspace := m.store.Workspace()
	data := components.SummaryData{
		Theme:     cfg.Theme.ID,
		Policy:    string(workspace.Policy()),
		Version:   m.store.Version(),
		Edited:    workspace.Edited(cfg.Theme.ID),
		LastError: m.lastError,
	}
	if preset, ok := workspace.Pristine(cfg.Theme.ID); ok {
		data.Stats = diff.Summarize(export.Stylesheet(preset.CustomCSS), export.Stylesheet(cfg.Theme.CustomCSS))
	}

	view := components.NewSummary(data).View()
	if m.lastError != "" {
		lines := strings.Split(view, "\n")
		lines[len(lines)-1] = errorStyle.Render(lines[len(lines)-1])
		view = strings.Join(lines, "\n")
	}
	return view
}

// renderToast draws a notification the way the host would, using the resolved
// stylesheet values carried in props.
func renderToast(props ports.ToastProps, cfg toast.Config) string {
	width := columns(props.Style[cssvars.Width])

	box := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		MarginTop(1).
		BorderStyle(lipgloss.RoundedBorder())
	if radius := props.Style[cssvars.Radius]; radius == "0" || radius == "0px" {
		box = box.BorderStyle(lipgloss.NormalBorder())
	}
	if color, ok := cssColor(props.Style[cssvars.Border]); ok {
		box = box.BorderForeground(color)
	}
	if color, ok := cssColor(props.Style[cssvars.Background]); ok {
		box = box.Background(color)
	}

	title := lipgloss.NewStyle().Bold(true)
	if color, ok := cssColor(props.Style[cssvars.Foreground]); ok {
		title = title.Foreground(color)
	}
	description := lipgloss.NewStyle()
	if color, ok := cssColor(props.Style[cssvars.Muted]); ok {
		description = description.Foreground(color)
	}

	heading := props.Title
	if glyph := iconGlyph(props.Icon); glyph != "" {
		heading = glyph + " " + heading
	}
	lines := []string{title.Render(heading), description.Render(props.Description)}

	if strings.Contains(props.ClassName, theme.LoaderClass) {
		bar := loaderBar(width-2, cfg)
		if cfg.LoaderPosition == toast.LoaderTop {
			lines = append([]string{bar}, lines...)
		} else {
			lines = append(lines, bar)
		}
	}
	return box.Render(strings.Join(lines, "\n"))
}

func iconGlyph(icon *ports.IconSpec) string {
	if icon == nil {
		return ""
	}
	glyph := icon.Glyph
	if icon.Mode == toast.IconCustom {
		glyph = "◆"
	}
	if icon.Spin {
		glyph += "↻"
	}
	return glyph
}

func loaderBar(width int, cfg toast.Config) string {
	if width < 1 {
		width = 1
	}
	style := lipgloss.NewStyle()
	if color, ok := cssColor(cssvars.Get(cfg.Theme.CustomCSS, cssvars.Primary, cfg.PreviewMode)); ok {
		style = style.Foreground(color)
	}
	glyph := "━"
	if cfg.LoaderVariant == toast.LoaderGradient {
		glyph = "▰"
	}
	return style.Render(strings.Repeat(glyph, width))
}
