package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/assistant/pkg/commands"
)

type stubDispatcher struct {
	lines []string
}

func (s *stubDispatcher) Execute(input string) commands.Result {
	s.lines = append(s.lines, input)
	if input == "exit" {
		return commands.Result{Output: "Good bye!", Exit: true}
	}
	return commands.Result{Output: "answer to " + input}
}

func (s *stubDispatcher) Names() []string {
	return []string{"add contact", "add note", "exit", "hello"}
}

func submit(t *testing.T, m *model, line string) tea.Cmd {
	t.Helper()
	m.input.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestModelBeforeResize(t *testing.T) {
	m := newModel(&stubDispatcher{})
	assert.Equal(t, "Initializing...", m.View())
}

func TestModelRunsCommands(t *testing.T) {
	d := &stubDispatcher{}
	m := newModel(d)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.True(t, m.ready)
	assert.Equal(t, 96, m.viewport.Width)
	assert.Equal(t, 25, m.viewport.Height)

	cmd := submit(t, m, "  hello  ")
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"hello"}, d.lines)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.content.String(), "answer to hello")

	assert.Nil(t, submit(t, m, "   "))
	assert.Len(t, d.lines, 1)

	view := m.View()
	assert.Contains(t, view, "Personal assistant")
	assert.Contains(t, view, "Run 'help'")
}

func TestModelQuitsOnExitCommand(t *testing.T) {
	m := newModel(&stubDispatcher{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	cmd := submit(t, m, "exit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Contains(t, m.View(), "Good bye!")
}

func TestModelQuitsOnCtrlC(t *testing.T) {
	m := newModel(&stubDispatcher{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelOffersCommandSuggestions(t *testing.T) {
	m := newModel(&stubDispatcher{})
	assert.True(t, m.input.ShowSuggestions)
	assert.Equal(t, []string{"add contact", "add note", "exit", "hello"}, m.input.AvailableSuggestions())
}
