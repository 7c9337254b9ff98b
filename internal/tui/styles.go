// Package tui renders command results for a terminal or as JSON lines.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette used by TTYOutput. AdaptiveColor picks the variant for light or
// dark backgrounds.
//
//nolint:gochecknoglobals // shared palette
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}
	colorOK     = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}
	colorFail   = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}
	colorFaint  = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// OutputStyles holds the per-message-kind styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
	Key     lipgloss.Style
}

// NewOutputStyles returns the default styles.
func NewOutputStyles() *OutputStyles {
	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	return &OutputStyles{
		Success: fg(colorOK).Bold(true),
		Error:   fg(colorFail).Bold(true),
		Warning: fg(colorWarn),
		Info:    fg(colorAccent),
		Dim:     fg(colorFaint),
		Key:     fg(colorAccent).Bold(true),
	}
}

// CheckNoColor drops to the ASCII profile when color is unwanted.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport is false when NO_COLOR is present (even empty) or TERM=dumb.
func HasColorSupport() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
