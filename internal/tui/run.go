package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run abre la TUI en pantalla completa hasta que el usuario sale o ctx se cancela.
func Run(ctx context.Context, backend Backend, opts Options) error {
	opts.Context = ctx
	p := tea.NewProgram(New(backend, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
