package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/assistant/pkg/commands"
)

// Dispatcher runs one line of input and lists command names for completion.
type Dispatcher interface {
	Execute(input string) commands.Result
	Names() []string
}

const toolbarHint = "Run 'help' to see every command • Tab completes • Ctrl+C to exit"

// Fixed rows around the viewport: header, input box with border, toolbar.
const chromeHeight = 1 + 3 + 1

type model struct {
	dispatcher Dispatcher
	input      textinput.Model
	viewport   viewport.Model
	content    *strings.Builder

	width    int
	height   int
	ready    bool
	quitting bool
}

func newModel(d Dispatcher) *model {
	ti := textinput.New()
	ti.Prompt = "Type a command>>> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(salmonPink)
	ti.Placeholder = "help"
	ti.ShowSuggestions = true
	ti.SetSuggestions(d.Names())
	ti.Focus()

	return &model{
		dispatcher: d,
		input:      ti,
		viewport:   viewport.New(80, 20),
		content:    &strings.Builder{},
	}
}

// appendExchange records a command and its answer in the history view.
func (m *model) appendExchange(line string, res commands.Result) {
	m.content.WriteString(commandStyle.Render("> " + line))
	m.content.WriteString("\n")
	if res.Output != "" {
		style := outputStyle
		if res.Exit {
			style = exitStyle
		}
		m.content.WriteString(style.Render(res.Output))
		m.content.WriteString("\n")
	}
	m.content.WriteString("\n")

	m.viewport.SetContent(m.content.String())
	m.viewport.GotoBottom()
}
