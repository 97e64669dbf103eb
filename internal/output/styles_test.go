package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		status string
		want   lipgloss.TerminalColor
	}{
		{StatusCreated, ColorGreen},
		{StatusWritten, ColorGreen},
		{StatusFailed, ColorBoldRed},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusStyle(tt.status).GetForeground())
		})
	}
}

func TestStatusStyle_Exists(t *testing.T) {
	assert.True(t, StatusStyle(StatusExists).GetFaint())
}

func TestStatusStyle_Unknown(t *testing.T) {
	style := StatusStyle("something-else")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestFormatStatusLine(t *testing.T) {
	line := FormatStatusLine("src/main/java", StatusCreated)
	assert.Contains(t, line, "src/main/java")
	assert.Contains(t, line, "created")

	// Long paths keep at least two spaces before the status.
	long := strings.Repeat("a", minPathColumnWidth+5)
	line = FormatStatusLine(long, StatusExists)
	assert.Contains(t, line, long+"  ")
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Project ready")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Project ready")
}
