package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/interncare/models"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestStyles(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	out := StyleSuccess.Render("Test")
	assert.Contains(t, out, "Test")
	assert.NotEqual(t, "Test", out, "Style should add ANSI codes when forced")
}

func TestApplyTheme(t *testing.T) {
	t.Cleanup(func() { ApplyTheme(true) })

	ApplyTheme(false)
	assert.False(t, IsDark())
	assert.Equal(t, LightPalette.Primary, ColorPrimary)
	assert.Equal(t, LightPalette.Text, ColorText)

	ApplyTheme(true)
	assert.True(t, IsDark())
	assert.Equal(t, DarkPalette.Primary, ColorPrimary)
}

func TestPriorityStyle(t *testing.T) {
	ApplyTheme(true)

	assert.Equal(t, ColorError, PriorityStyle(models.PriorityHigh).GetForeground())
	assert.Equal(t, ColorWarning, PriorityStyle(models.PriorityMedium).GetForeground())
	assert.Equal(t, ColorSuccess, PriorityStyle(models.PriorityLow).GetForeground())
}

func TestIcon(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	out := Icon("X", StyleError)
	assert.Contains(t, out, "X")
	assert.NotEqual(t, "X", out)
}
