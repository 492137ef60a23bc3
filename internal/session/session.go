// ABOUTME: Interactive suggestion session: debounce, generation tracking, dispatch
// ABOUTME: Owns all ephemeral state; talks to the UI only through the View interface

package session

import (
	"context"
	"sync"
	"time"

	"github.com/pubpal/pubpal/internal/catalog"
	"github.com/pubpal/pubpal/internal/document"
	"github.com/pubpal/pubpal/internal/log"
)

// View is the UI boundary. The session hands it plain data; rendering is
// the host's business. Implementations must tolerate calls from goroutines.
type View interface {
	ShowLoading()
	ShowRecords(recs []catalog.Record)
	ShowEmpty(msg string)
	ClearInput()
	Notify(msg string)
	NotifyError(msg string)
}

// Builder produces the catalog for a query/mode event.
type Builder interface {
	Build(ctx context.Context, query, docText string, mode catalog.Mode) ([]catalog.Record, error)
}

// Mutator performs dependency mutations through the external tool.
type Mutator interface {
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
}

// DocumentHost is the editor boundary: current text, the selection the
// session was opened from, and application of replacement text.
type DocumentHost interface {
	Text() string
	Selection() document.Range
	SetText(text string) error
}

// DefaultDebounce is the keystroke debounce window.
const DefaultDebounce = 500 * time.Millisecond

// Session drives one interactive suggestion UI. All state here is
// ephemeral and discarded when the session closes; nothing is cached
// across builds.
type Session struct {
	view    View
	builder Builder
	mutator Mutator
	doc     DocumentHost

	debounce time.Duration
	ctx      context.Context

	mu    sync.Mutex
	query string
	mode  catalog.Mode
	gen   uint64 // generation counter; stale fetch results are discarded
	open  bool
	timer *time.Timer
	busy  map[string]bool // per-record in-flight mutation guard
}

// New creates an open session. ctx bounds every build and mutation the
// session starts; debounce <= 0 selects DefaultDebounce.
func New(ctx context.Context, view View, builder Builder, mutator Mutator, doc DocumentHost, debounce time.Duration) *Session {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Session{
		view:     view,
		builder:  builder,
		mutator:  mutator,
		doc:      doc,
		debounce: debounce,
		ctx:      ctx,
		mode:     catalog.ModeAll,
		open:     true,
		busy:     make(map[string]bool),
	}
}

// Mode returns the current toggle mode.
func (s *Session) Mode() catalog.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// TextChanged records a keystroke event. Only the last event inside the
// debounce window triggers a fetch.
func (s *Session) TextChanged(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.query = query
	s.armTimerLocked()
}

// Toggled flips between installed-only and all-packages view and re-enters
// the debounce window with the unchanged query text.
func (s *Session) Toggled() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	if s.mode == catalog.ModeAll {
		s.mode = catalog.ModeInstalled
	} else {
		s.mode = catalog.ModeAll
	}
	s.armTimerLocked()
}

// Refresh rebuilds the catalog immediately, bypassing the debounce. Used
// after mutations, when prior results may be stale.
func (s *Session) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	s.startFetchLocked()
}

// Close tears down the debounce timer and discards all pending work. No
// fetch or mutation started before close may touch the view afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// armTimerLocked restarts the debounce window; an armed, unfired timer is
// the only cancellable fetch.
func (s *Session) armTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.open {
			return
		}
		s.startFetchLocked()
	})
}

// startFetchLocked issues a catalog build under a fresh generation. A
// result is applied only if its generation is still the newest and the
// session remains open: last-writer-wins by issuance time, not completion
// time.
func (s *Session) startFetchLocked() {
	s.gen++
	gen := s.gen
	query, mode := s.query, s.mode
	docText := s.doc.Text()

	s.view.ShowLoading()

	go func() {
		recs, err := s.builder.Build(s.ctx, query, docText, mode)

		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.open || gen != s.gen {
			log.Debug("discarding stale catalog result (gen %d, current %d)", gen, s.gen)
			return
		}

		switch {
		case err != nil:
			s.view.NotifyError(err.Error())
		case len(recs) == 0 && mode == catalog.ModeInstalled:
			s.view.ShowEmpty("no installed packages match")
		case len(recs) == 0:
			s.view.ShowEmpty("no packages found")
		default:
			s.view.ShowRecords(recs)
		}
	}()
}
