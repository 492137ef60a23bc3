// ABOUTME: Lipgloss style palette for the suggestion TUI
// ABOUTME: Built once; adaptive colors keep light terminals readable

package tui

import "github.com/charmbracelet/lipgloss"

// palette groups the styles used across the TUI render paths.
type palette struct {
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Selected  lipgloss.Style
	Installed lipgloss.Style
	Match     lipgloss.Style
	Err       lipgloss.Style
	Notice    lipgloss.Style
	Prompt    lipgloss.Style
}

var styles = palette{
	Title:     lipgloss.NewStyle().Bold(true),
	Dim:       lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "244"}),
	Selected:  lipgloss.NewStyle().Reverse(true),
	Installed: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"}),
	Match:     lipgloss.NewStyle().Bold(true).Underline(true),
	Err:       lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"}),
	Notice:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "75"}),
	Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "75"}),
}
