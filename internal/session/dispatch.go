// ABOUTME: Selection and action-button dispatch: import edits and mutations
// ABOUTME: One mutation at a time per record; state is re-queried, never assumed

package session

import (
	"strings"

	"github.com/pubpal/pubpal/internal/catalog"
	"github.com/pubpal/pubpal/internal/document"
)

// Selected handles the primary action on a record: installed packages are
// imported directly; available packages are added first and imported only
// after the add succeeds. Either path clears the input and collapses the
// list.
func (s *Session) Selected(rec catalog.Record) {
	s.mu.Lock()
	if !s.open || !s.beginMutationLocked(rec.Name) {
		s.mu.Unlock()
		return
	}
	s.query = ""
	s.mu.Unlock()

	s.view.ClearInput()

	go func() {
		defer s.endMutation(rec.Name)

		if !rec.Installed {
			if err := s.mutator.Add(s.ctx, rec.Name); err != nil {
				s.notifyError(err.Error())
				s.Refresh() // learn the manifest's true post-failure state
				return
			}
		}
		s.applyImport(rec.Name)
		s.Refresh()
	}()
}

// ActionPressed handles the secondary action button: remove an installed
// record, add an available one. Neither path edits the document.
func (s *Session) ActionPressed(rec catalog.Record) {
	s.mu.Lock()
	if !s.open || !s.beginMutationLocked(rec.Name) {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	go func() {
		defer s.endMutation(rec.Name)

		var err error
		if rec.Installed {
			err = s.mutator.Remove(s.ctx, rec.Name)
		} else {
			err = s.mutator.Add(s.ctx, rec.Name)
		}
		if err != nil {
			s.notifyError(err.Error())
		} else if rec.Installed {
			s.notify("removed " + rec.Name)
		} else {
			s.notify("added " + rec.Name)
		}
		s.Refresh()
	}()
}

// applyImport runs the import editor against the current document and
// reports the outcome.
func (s *Session) applyImport(name string) {
	text, outcome, err := document.EnsureImported(name, s.doc.Text(), s.doc.Selection())
	if err != nil {
		s.notifyError("import edit failed: " + err.Error())
		return
	}
	if err := s.doc.SetText(text); err != nil {
		s.notifyError("applying edit failed: " + err.Error())
		return
	}
	s.notify(name + ": " + outcome.String())
}

// beginMutationLocked marks a record busy; overlapping mutations for the
// same record are dropped, not queued.
func (s *Session) beginMutationLocked(name string) bool {
	key := strings.ToLower(name)
	if s.busy[key] {
		return false
	}
	s.busy[key] = true
	return true
}

func (s *Session) endMutation(name string) {
	s.mu.Lock()
	delete(s.busy, strings.ToLower(name))
	s.mu.Unlock()
}

// notify forwards to the view only while the session is open.
func (s *Session) notify(msg string) {
	s.mu.Lock()
	open := s.open
	s.mu.Unlock()
	if open {
		s.view.Notify(msg)
	}
}

func (s *Session) notifyError(msg string) {
	s.mu.Lock()
	open := s.open
	s.mu.Unlock()
	if open {
		s.view.NotifyError(msg)
	}
}
