// ABOUTME: Pre-sets lipgloss dark background before BubbleTea's init() sends OSC queries
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background set, lipgloss.HasDarkBackground never
	// fires its OSC 10/11 terminal query, whose async response would leak
	// into the suggestion input line.
	//
	// This package must not import bubbletea (directly or transitively)
	// so that Go's init order guarantees this runs first.
	lipgloss.SetHasDarkBackground(true)
}
