package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/interncare/models"
)

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Text      lipgloss.Color
	Accent    lipgloss.Color
}

// DarkPalette suits dark terminal backgrounds.
var DarkPalette = Palette{
	Primary:   lipgloss.Color("141"), // Lavender
	Secondary: lipgloss.Color("241"), // Gray
	Success:   lipgloss.Color("42"),  // Green
	Error:     lipgloss.Color("203"), // Soft red
	Warning:   lipgloss.Color("214"), // Orange
	Text:      lipgloss.Color("252"), // Near white
	Accent:    lipgloss.Color("87"),  // Cyan
}

// LightPalette suits light terminal backgrounds.
var LightPalette = Palette{
	Primary:   lipgloss.Color("55"),  // Deep purple
	Secondary: lipgloss.Color("245"), // Gray
	Success:   lipgloss.Color("28"),  // Dark green
	Error:     lipgloss.Color("160"), // Red
	Warning:   lipgloss.Color("166"), // Dark orange
	Text:      lipgloss.Color("235"), // Near black
	Accent:    lipgloss.Color("31"),  // Teal
}

var (
	// Colors
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorError     lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorText      lipgloss.Color
	ColorAccent    lipgloss.Color

	// Base Styles
	StyleTitle   lipgloss.Style
	StyleSubtle  lipgloss.Style
	StylePrimary lipgloss.Style
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleText    lipgloss.Style

	// Components
	StyleHeader       lipgloss.Style
	StyleSectionTitle lipgloss.Style
	StyleBox          lipgloss.Style
)

var darkMode = true

func init() {
	ApplyTheme(true)
}

// ApplyTheme rebuilds every exported style from the dark or light palette.
func ApplyTheme(dark bool) {
	darkMode = dark
	p := LightPalette
	if dark {
		p = DarkPalette
	}

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorSuccess = p.Success
	ColorError = p.Error
	ColorWarning = p.Warning
	ColorText = p.Text
	ColorAccent = p.Accent

	StyleTitle = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText = lipgloss.NewStyle().Foreground(ColorText)

	StyleHeader = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	StyleSectionTitle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true)

	StyleBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(0, 1)
}

// IsDark reports which palette is active.
func IsDark() bool { return darkMode }

// PriorityStyle colors a priority: high red, medium orange, low green.
func PriorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return StyleError.Bold(true)
	case models.PriorityMedium:
		return StyleWarning
	default:
		return StyleSuccess
	}
}

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
