// File: styles.go
// Title: Renderer Styles
// Description: Colour palette and lipgloss styles of the help screen.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package render

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorFg      = lipgloss.Color("#F9FAFB")
)

// styles is bound to one lipgloss renderer, which picks the colour profile
// of the writer it was created for
type styles struct {
	title      lipgloss.Style
	heading    lipgloss.Style
	name       lipgloss.Style
	flag       lipgloss.Style
	synopsis   lipgloss.Style
	muted      lipgloss.Style
	errorLabel lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorAccent),
		heading: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		name: r.NewStyle().
			Bold(true),
		flag: r.NewStyle().
			Foreground(colorPrimary),
		synopsis: r.NewStyle().
			Foreground(colorMuted),
		muted: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		errorLabel: r.NewStyle().
			Bold(true).
			Foreground(colorFg).
			Background(colorError),
	}
}
