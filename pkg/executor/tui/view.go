package tui

import "github.com/charmbracelet/lipgloss"

// View renders the history, the input box and the toolbar.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.quitting {
		// Leave the final exchange on the terminal after the alt screen closes.
		return m.content.String()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Personal assistant"),
		m.viewport.View(),
		inputBoxStyle.Width(m.width-4).Render(m.input.View()),
		toolbarStyle.Render(toolbarHint),
	)
}
