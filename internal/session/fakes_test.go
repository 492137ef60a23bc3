// ABOUTME: Test doubles for the session: view, builder, mutator, document host
// ABOUTME: All fakes are mutex-guarded; builders support per-query delays

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pubpal/pubpal/internal/catalog"
	"github.com/pubpal/pubpal/internal/document"
)

var errTest = errors.New("registry unavailable")

type fakeView struct {
	mu      sync.Mutex
	records []catalog.Record
	empty   string
	notes   []string
	errs    []string
	clears  int
	loads   int
	calls   int
}

func newFakeView() *fakeView { return &fakeView{} }

func (v *fakeView) ShowLoading() {
	v.mu.Lock()
	v.loads++
	v.calls++
	v.mu.Unlock()
}

func (v *fakeView) ShowRecords(recs []catalog.Record) {
	v.mu.Lock()
	v.records = recs
	v.calls++
	v.mu.Unlock()
}

func (v *fakeView) ShowEmpty(msg string) {
	v.mu.Lock()
	v.empty = msg
	v.records = nil
	v.calls++
	v.mu.Unlock()
}

func (v *fakeView) ClearInput() {
	v.mu.Lock()
	v.clears++
	v.calls++
	v.mu.Unlock()
}

func (v *fakeView) Notify(msg string) {
	v.mu.Lock()
	v.notes = append(v.notes, msg)
	v.calls++
	v.mu.Unlock()
}

func (v *fakeView) NotifyError(msg string) {
	v.mu.Lock()
	v.errs = append(v.errs, msg)
	v.calls++
	v.mu.Unlock()
}

func (v *fakeView) lastRecords() []catalog.Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.records
}

func (v *fakeView) lastEmpty() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.empty
}

func (v *fakeView) notices() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.notes...)
}

func (v *fakeView) errorCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.errs)
}

func (v *fakeView) total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.calls
}

type fakeBuilder struct {
	mu      sync.Mutex
	n       int
	query   string
	mode    catalog.Mode
	err     error
	records map[string][]catalog.Record
	delays  map[string]time.Duration
}

func newFakeBuilder() *fakeBuilder {
	return &fakeBuilder{
		records: make(map[string][]catalog.Record),
		delays:  make(map[string]time.Duration),
	}
}

func (b *fakeBuilder) Build(_ context.Context, query, _ string, mode catalog.Mode) ([]catalog.Record, error) {
	b.mu.Lock()
	b.n++
	b.query = query
	b.mode = mode
	delay := b.delays[query]
	err := b.err
	recs := b.records[query]
	b.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (b *fakeBuilder) calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.n
}

func (b *fakeBuilder) lastQuery() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

func (b *fakeBuilder) lastMode() catalog.Mode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mode
}

type fakeMutator struct {
	mu      sync.Mutex
	adds    []string
	removes []string
	addErr  error
	delay   time.Duration
}

func newFakeMutator() *fakeMutator { return &fakeMutator{} }

func (m *fakeMutator) Add(_ context.Context, name string) error {
	m.mu.Lock()
	m.adds = append(m.adds, name)
	delay, err := m.delay, m.addErr
	m.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	return err
}

func (m *fakeMutator) Remove(_ context.Context, name string) error {
	m.mu.Lock()
	m.removes = append(m.removes, name)
	m.mu.Unlock()
	return nil
}

func (m *fakeMutator) addCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.adds...)
}

func (m *fakeMutator) removeCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.removes...)
}

type fakeDoc struct {
	mu   sync.Mutex
	text string
	sel  document.Range
}

func (d *fakeDoc) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

func (d *fakeDoc) Selection() document.Range {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sel
}

func (d *fakeDoc) SetText(text string) error {
	d.mu.Lock()
	d.text = text
	d.sel = document.Range{}
	d.mu.Unlock()
	return nil
}
