package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// IsInteractive reports whether both stdin and stdout are terminals.
// The check-in form is refused when either is redirected.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// panel draws content in a rounded box. The title, if any, takes the
// border color so a success and a warning are told apart at a glance.
func panel(title, content string, border lipgloss.Color) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if title == "" {
		return box.Render(content)
	}
	heading := lipgloss.NewStyle().Bold(true).Foreground(border).Render(title)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, heading, content))
}

// RenderSuccessPanel frames the outcome of a check-in, export or import.
func RenderSuccessPanel(title, content string) string {
	return panel(title, content, ColorSuccess)
}

// RenderWarningPanel frames a confirmation before something destructive.
func RenderWarningPanel(title, content string) string {
	return panel(title, content, ColorWarning)
}
