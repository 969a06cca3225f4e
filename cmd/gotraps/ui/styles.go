// Package ui provides the visual styling for the gotraps CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette, shared by light and dark terminals via adaptive colors.
var (
	Accent  = lipgloss.AdaptiveColor{Light: "#005f87", Dark: "#5fd7ff"}
	Muted   = lipgloss.AdaptiveColor{Light: "#6c6c6c", Dark: "#8a8a8a"}
	Border  = lipgloss.AdaptiveColor{Light: "#d0d0d0", Dark: "#3a3a3a"}
	Danger  = lipgloss.AdaptiveColor{Light: "#af0000", Dark: "#ff5f5f"}
	Success = lipgloss.AdaptiveColor{Light: "#005f00", Dark: "#87d787"}
)

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Title    lipgloss.Style // document / app title
	Section  lipgloss.Style // section headings in list output
	EntryID  lipgloss.Style // entry identifiers
	Entry    lipgloss.Style // entry titles
	Selected lipgloss.Style // selected row in the browser
	Crash    lipgloss.Style // marker for crashing demonstrations
	OK       lipgloss.Style // verify pass marker
	Fail     lipgloss.Style // verify fail marker
	Help     lipgloss.Style // key hints
	Pane     lipgloss.Style // browser pane borders
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Section:  lipgloss.NewStyle().Bold(true),
		EntryID:  lipgloss.NewStyle().Foreground(Accent),
		Entry:    lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Crash:    lipgloss.NewStyle().Foreground(Danger),
		OK:       lipgloss.NewStyle().Foreground(Success),
		Fail:     lipgloss.NewStyle().Bold(true).Foreground(Danger),
		Help:     lipgloss.NewStyle().Foreground(Muted),
		Pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border),
	}
}
