// Package tui implements the touch-style shell: a Bubbletea program with a
// digit-restricted input field, a scrollable results region, and a modal
// dialog for validation errors. It is the terminal analog of the original
// mobile layout and calls the same recipe pipeline as the console shell.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"cookiescale/internal/logging"
	"cookiescale/internal/tui/styles"
)

// App wraps the Bubbletea program.
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application.
func New(st styles.Styles, log *logging.Logger, showComparison bool) *App {
	return &App{
		model: NewModel(st, log, showComparison),
	}
}

// Run starts the TUI application and blocks until it exits. A validation
// error never ends the session; a broken pipeline invariant does, and is
// returned to the caller.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Translate termination signals into a clean TUI shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	finalModel, err := a.program.Run()

	signal.Stop(sigChan)

	if err != nil {
		return err
	}
	if m, ok := finalModel.(Model); ok {
		return m.FatalErr()
	}
	return nil
}
