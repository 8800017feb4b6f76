package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles drawn around the pixel field.
type Theme struct {
	// Overlay styles
	OverlayTitle lipgloss.Style
	OverlayText  lipgloss.Style

	// Status line styles
	StatusLabel lipgloss.Style
	StatusValue lipgloss.Style
	StatusSep   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		StatusLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		StatusSep:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
