package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: paths, package names, namespaces.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" and "written" statuses.
	ColorGreen = lipgloss.Color("82")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for tree connectors and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (paths, package names, namespaces).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings and the tree root.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (tree connectors, separators).
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Outcome status constants shared by directories and entry files.
const (
	StatusCreated = "created"
	StatusExists  = "exists"
	StatusWritten = "written"
	StatusFailed  = "failed"
)

// StatusStyle returns the lipgloss style for a given status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusWritten:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusExists:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth is the minimum width of the path column before the
// status suffix.
const minPathColumnWidth = 40

// FormatStatusLine renders a path with a right-aligned, color-coded status.
//
// Format: <path>  <status>
func FormatStatusLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleNoun.Render(path) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
