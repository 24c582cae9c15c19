// Package commands turns a typed line into a call on the contact directory
// or the notebook and renders the outcome as text.
package commands

import (
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/entrhq/assistant/pkg/contacts"
	"github.com/entrhq/assistant/pkg/notes"
)

// Handler runs a command with the words that followed its name.
type Handler func(d *Dispatcher, args []string) (string, error)

// Command is one entry of the registry.
type Command struct {
	Name        string // Lower-case words the input must start with
	Usage       string // Argument synopsis shown by help and on missing arguments
	Description string
	MinArgs     int
	Exit        bool // Ends the session after running
	Handler     Handler
}

// Result is what the executor shows after a line was handled.
type Result struct {
	Output string
	Exit   bool
}

// Clipboard receives text for the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Logger is the subset of the session logger the dispatcher uses.
type Logger interface {
	Debugf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

// Dispatcher matches input against the registered commands and runs them.
type Dispatcher struct {
	contacts     *contacts.Directory
	notes        *notes.Notebook
	clipboard    Clipboard
	logger       Logger
	pageSize     int
	upcomingDays int

	// longest name first so "change note's title" wins over "change"
	commands []*Command
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(d *Dispatcher) { d.clipboard = c }
}

// WithLogger logs every dispatched command at debug level.
func WithLogger(l Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithPageSize sets the page size used when "show all" has no argument.
// Zero shows everything at once.
func WithPageSize(n int) Option {
	return func(d *Dispatcher) { d.pageSize = n }
}

// WithUpcomingDays sets the default window of "upcoming birthdays".
func WithUpcomingDays(n int) Option {
	return func(d *Dispatcher) { d.upcomingDays = n }
}

// New returns a dispatcher with every built-in command registered.
func New(dir *contacts.Directory, nb *notes.Notebook, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		contacts:     dir,
		notes:        nb,
		clipboard:    systemClipboard{},
		logger:       nopLogger{},
		upcomingDays: 7,
	}
	for _, opt := range opts {
		opt(d)
	}

	for _, cmd := range builtins() {
		d.register(cmd)
	}
	return d
}

func (d *Dispatcher) register(cmd *Command) {
	d.commands = append(d.commands, cmd)
	sort.SliceStable(d.commands, func(i, j int) bool {
		return len(d.commands[i].Name) > len(d.commands[j].Name)
	})
}

// match finds the longest command name that starts input on a word boundary
// and returns it with the remaining words.
func (d *Dispatcher) match(input string) (*Command, []string, bool) {
	for _, cmd := range d.commands {
		if len(input) < len(cmd.Name) || !strings.EqualFold(input[:len(cmd.Name)], cmd.Name) {
			continue
		}
		rest := input[len(cmd.Name):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		return cmd, strings.Fields(rest), true
	}
	return nil, nil, false
}

// Execute handles one line of input. Errors are rendered into the output;
// the session only ends through an exit command.
func (d *Dispatcher) Execute(input string) Result {
	input = strings.Join(strings.Fields(input), " ")
	if input == "" {
		return Result{}
	}

	cmd, args, ok := d.match(input)
	if !ok {
		return Result{Output: "Unknown command. Type 'help' to see what I can do."}
	}
	if len(args) < cmd.MinArgs {
		return Result{Output: "Not enough arguments. Usage: " + cmd.synopsis()}
	}

	d.logger.Debugf("command %q with %d argument(s)", cmd.Name, len(args))
	out, err := cmd.Handler(d, args)
	if err != nil {
		d.logger.Warnf("command %q failed: %v", cmd.Name, err)
		return Result{Output: Describe(err)}
	}
	return Result{Output: out, Exit: cmd.Exit}
}

// Names returns every command name, sorted, for completion.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.commands))
	for _, cmd := range d.commands {
		names = append(names, cmd.Name)
	}
	sort.Strings(names)
	return names
}

// Commands returns the registry sorted by name.
func (d *Dispatcher) Commands() []*Command {
	out := make([]*Command, len(d.commands))
	copy(out, d.commands)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *Command) synopsis() string {
	if c.Usage == "" {
		return c.Name
	}
	return c.Name + " " + c.Usage
}
