// Package report renders scan results for humans and machines. The text
// format reproduces the wording CI jobs already parse; json and markdown are
// richer exports of the same data.
package report

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles shared by the text writer.
// Lipgloss degrades colors automatically on limited terminals.
var (
	// StyleViolation marks violation section headers.
	StyleViolation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleSuccess marks the compliant imports header.
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleNotice is used for the remediation block.
	StyleNotice = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false the text passes through untouched, which keeps the
// piped output byte-stable.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// DetectColor decides whether styled output is wanted. Explicit force wins,
// then FORCE_COLOR, then a terminal on stdout. Piped output stays plain so
// scripts reading the report never see escape codes.
func DetectColor(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if info, err := os.Stdout.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
		return true
	}
	return false
}
