// Package cli provides a line-based executor: it reads one command per line
// from a reader and prints the answer to a writer.
//
// Example usage:
//
//	dispatcher := commands.New(directory, notebook)
//	executor := cli.NewExecutor(dispatcher)
//	if err := executor.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/entrhq/assistant/pkg/commands"
)

// Prompt is printed before every line of input.
const Prompt = "Type a command>>> "

// Dispatcher runs one line of input.
type Dispatcher interface {
	Execute(input string) commands.Result
}

// Executor is a CLI-based executor that runs commands typed on a terminal.
type Executor struct {
	dispatcher Dispatcher
	reader     *bufio.Reader
	writer     io.Writer
	prompt     string
}

// ExecutorOption is a function that configures an Executor.
type ExecutorOption func(*Executor)

// WithWriter sets a custom output writer (default is os.Stdout).
func WithWriter(w io.Writer) ExecutorOption {
	return func(e *Executor) {
		e.writer = w
	}
}

// WithReader sets a custom input reader (default is os.Stdin).
func WithReader(r io.Reader) ExecutorOption {
	return func(e *Executor) {
		e.reader = bufio.NewReader(r)
	}
}

// WithPrompt replaces the default prompt.
func WithPrompt(p string) ExecutorOption {
	return func(e *Executor) {
		e.prompt = p
	}
}

// NewExecutor creates a new CLI executor for the given dispatcher.
func NewExecutor(d Dispatcher, opts ...ExecutorOption) *Executor {
	e := &Executor{
		dispatcher: d,
		reader:     bufio.NewReader(os.Stdin),
		writer:     os.Stdout,
		prompt:     Prompt,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run reads and executes commands until an exit command, end of input or
// cancellation of ctx.
func (e *Executor) Run(ctx context.Context) error {
	fmt.Fprintln(e.writer, "Personal assistant. Run 'help' to see the available commands.")
	fmt.Fprintln(e.writer)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(e.writer, e.prompt)
		input, err := e.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		eof := err != nil

		if line := strings.TrimSpace(input); line != "" {
			res := e.dispatcher.Execute(line)
			if res.Output != "" {
				fmt.Fprintln(e.writer, res.Output)
			}
			if res.Exit {
				return nil
			}
		}

		if eof {
			fmt.Fprintln(e.writer)
			return nil
		}
	}
}
