// Package ui provides terminal rendering helpers for console output.
// Styling degrades to plain text when stdout is not a terminal or when
// color is disabled, so styled output never changes the underlying
// message strings.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	enabled = detectColor()
)

// detectColor reports whether styled output should be emitted: stdout
// must be a terminal with a non-trivial color profile and NO_COLOR must
// be unset.
func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// SetEnabled overrides color detection, e.g. from a no_color config key.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled reports whether styled rendering is active.
func Enabled() bool {
	return enabled
}

// RenderAccent renders s in the accent style used for headings.
func RenderAccent(s string) string {
	return render(accentStyle, s)
}

// RenderPass renders s in the success style.
func RenderPass(s string) string {
	return render(passStyle, s)
}

// RenderWarn renders s in the warning style.
func RenderWarn(s string) string {
	return render(warnStyle, s)
}

// RenderErr renders s in the error style.
func RenderErr(s string) string {
	return render(errStyle, s)
}

func render(style lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return style.Render(s)
}
