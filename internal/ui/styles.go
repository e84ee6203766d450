// Package ui provides terminal styling for todo CLI output.
// Uses the Ayu color theme with adaptive light/dark mode support.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Ayu theme color palette
// Dark: https://terminalcolors.com/themes/ayu/dark/
// Light: https://terminalcolors.com/themes/ayu/light/
var (
	ColorDone = lipgloss.AdaptiveColor{
		Light: "#86b300", // ayu light bright green
		Dark:  "#c2d94c", // ayu dark bright green
	}
	ColorDueToday = lipgloss.AdaptiveColor{
		Light: "#f2ae49", // ayu light bright yellow
		Dark:  "#ffb454", // ayu dark bright yellow
	}
	ColorOverdue = lipgloss.AdaptiveColor{
		Light: "#f07171", // ayu light bright red
		Dark:  "#f07178", // ayu dark bright red
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99", // ayu light muted
		Dark:  "#6c7680", // ayu dark muted
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6", // ayu light bright blue
		Dark:  "#59c2ff", // ayu dark bright blue
	}
)

// Styles shared across commands.
var (
	DoneStyle    = lipgloss.NewStyle().Foreground(ColorDone)
	DueStyle     = lipgloss.NewStyle().Foreground(ColorDueToday)
	OverdueStyle = lipgloss.NewStyle().Foreground(ColorOverdue)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

// RenderDone renders text with done (green) styling
func RenderDone(s string) string {
	return DoneStyle.Render(s)
}

// RenderDue renders text with due-today (yellow) styling
func RenderDue(s string) string {
	return DueStyle.Render(s)
}

// RenderOverdue renders text with overdue (red) styling
func RenderOverdue(s string) string {
	return OverdueStyle.Render(s)
}

// RenderMuted renders text with muted (gray) styling
func RenderMuted(s string) string {
	return MutedStyle.Render(s)
}

// RenderAccent renders text with accent (blue) styling
func RenderAccent(s string) string {
	return AccentStyle.Render(s)
}

// RenderHeader renders a section header in bold accent color
func RenderHeader(s string) string {
	return HeaderStyle.Render(s)
}
