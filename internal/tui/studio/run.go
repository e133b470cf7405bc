package studio

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the studio and blocks until the user quits.
func Run(ctx context.Context, opts Options, programOpts ...tea.ProgramOption) error {
	m := New(ctx, opts)
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, programOpts...)

	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if opts.Driver != nil {
		opts.Driver.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to run studio: %w", err)
	}
	return nil
}
