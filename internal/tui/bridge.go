// ABOUTME: session.View implementation bridging engine callbacks into tea messages
// ABOUTME: Safe from any goroutine; Program.Send serializes into the update loop

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pubpal/pubpal/internal/catalog"
)

// shared links the model, the running program, and the session. The model
// is copied by Bubble Tea; the pointer keeps late-bound references stable.
type shared struct {
	program *tea.Program
	ctrl    controller
}

// controller is the slice of the session the model drives. An interface so
// model tests can fake it.
type controller interface {
	TextChanged(query string)
	Toggled()
	Selected(rec catalog.Record)
	ActionPressed(rec catalog.Record)
	Refresh()
	Close()
}

// bridgeView forwards session callbacks into the Bubble Tea update loop.
type bridgeView struct{ sh *shared }

func (v *bridgeView) send(msg tea.Msg) {
	if v.sh.program != nil {
		v.sh.program.Send(msg)
	}
}

func (v *bridgeView) ShowLoading() { v.send(loadingMsg{}) }

func (v *bridgeView) ShowRecords(recs []catalog.Record) { v.send(recordsMsg{recs: recs}) }

func (v *bridgeView) ShowEmpty(msg string) { v.send(emptyMsg{msg: msg}) }

func (v *bridgeView) ClearInput() { v.send(clearInputMsg{}) }

func (v *bridgeView) Notify(msg string) { v.send(noticeMsg{msg: msg}) }

func (v *bridgeView) NotifyError(msg string) { v.send(errorMsg{msg: msg}) }
