package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	padStyle     = lipgloss.NewStyle().Padding(1)
)

// renderPreview shows the spoken confirmation question a preview produced.
func renderPreview(title, message string) string {
	return padStyle.Render(
		titleStyle.Render(title) + "\n\n" +
			messageStyle.Render(message) + "\n\n" +
			faintStyle.Render("Enter: confirm | Esc: back"),
	)
}

// renderResult shows the final message plus the deep link handed to the app.
func renderResult(title, message, deepLink string) string {
	body := titleStyle.Render(title) + "\n\n" +
		messageStyle.Render(message)

	if deepLink != "" {
		body += "\n\n" + linkStyle.Render(deepLink)
	}

	return padStyle.Render(body + "\n\n" + faintStyle.Render("Esc: back to menu"))
}
