// ABOUTME: Program wiring for the interactive suggestion TUI
// ABOUTME: Connects the Bubble Tea model to a live session via the bridge view

package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pubpal/pubpal/internal/session"
)

// Deps carries everything the interactive session needs.
type Deps struct {
	Builder  session.Builder
	Mutator  session.Mutator
	Doc      session.DocumentHost
	Debounce time.Duration
}

// Run starts the interactive suggestion UI. Blocks until the user exits.
func Run(ctx context.Context, deps Deps) error {
	sh := &shared{}
	m := newModel(sh)

	p := tea.NewProgram(
		m,
		tea.WithOutput(os.Stderr),
	)

	// The model value is copied by NewProgram but shares the sh pointer,
	// so the session and program can be injected after construction.
	sh.program = p
	sh.ctrl = session.New(ctx, &bridgeView{sh: sh}, deps.Builder, deps.Mutator, deps.Doc, deps.Debounce)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
