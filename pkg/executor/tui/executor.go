// Package tui provides an interactive terminal executor built on Bubble Tea:
// a scrolling history of commands and answers above a single-line input with
// command-name completion.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Executor runs the interactive interface until the user exits.
type Executor struct {
	dispatcher Dispatcher
	options    []tea.ProgramOption
}

// NewExecutor creates a new TUI executor for the given dispatcher.
// Extra program options are passed to Bubble Tea, mainly for tests.
func NewExecutor(d Dispatcher, opts ...tea.ProgramOption) *Executor {
	return &Executor{dispatcher: d, options: opts}
}

// Run starts the TUI and blocks until an exit command, Ctrl+C or
// cancellation of ctx.
func (e *Executor) Run(ctx context.Context) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, e.options...)
	p := tea.NewProgram(newModel(e.dispatcher), opts...)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return ctx.Err()
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
