// ABOUTME: Custom tea.Msg types for the suggestion TUI
// ABOUTME: Session events arrive via Program.Send from the view bridge

package tui

import "github.com/pubpal/pubpal/internal/catalog"

// recordsMsg carries a freshly built catalog.
type recordsMsg struct{ recs []catalog.Record }

// loadingMsg switches the body to the loading placeholder.
type loadingMsg struct{}

// emptyMsg switches the body to an empty-state message.
type emptyMsg struct{ msg string }

// clearInputMsg resets the query input after a selection.
type clearInputMsg struct{}

// noticeMsg carries a transient status line.
type noticeMsg struct{ msg string }

// errorMsg carries a failure notification; the prior list stays visible.
type errorMsg struct{ msg string }

// spinnerTickMsg drives the loading spinner animation.
type spinnerTickMsg struct{}
