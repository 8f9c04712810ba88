package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanels(t *testing.T) {
	out := RenderSuccessPanel("Checked in", "Mood 7/10")
	assert.Contains(t, out, "Checked in")
	assert.Contains(t, out, "Mood 7/10")
	assert.True(t, strings.HasPrefix(out, "╭"), "rounded border")

	out = RenderWarningPanel("Reset", "All records will be deleted.")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4, "top border, title, content, bottom border")

	assert.Len(t, strings.Split(panel("", "only content", ColorSuccess), "\n"), 3)
}
