package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"humansize/internal/model"
)

// Run launches the interactive converter with the resolved options.
func Run(ctx context.Context, opts model.Options) error {
	m := NewModel(ctx, opts)
	prog := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := prog.Run()
	return err
}
