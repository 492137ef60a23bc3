// ABOUTME: Tests for manifest reading: missing files, ordering, case-insensitive lookup
// ABOUTME: Uses t.TempDir fixtures; parse strategies covered in parse_test.go

package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRead_MissingFile(t *testing.T) {
	t.Parallel()
	s := Read(t.TempDir())
	if s.Len() != 0 {
		t.Errorf("expected empty state, got %d entries", s.Len())
	}
}

func TestRead_WellFormed(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	content := `name: demo
dependencies:
  http: ^1.2.0
  json_ext: ^1.0.0
  args: any
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := Read(dir)
	if s.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", s.Len())
	}

	// Declaration order is preserved.
	wantOrder := []string{"http", "json_ext", "args"}
	for i, e := range s.Entries() {
		if e.Name != wantOrder[i] {
			t.Errorf("entry %d = %q; want %q", i, e.Name, wantOrder[i])
		}
	}

	c, ok := s.Lookup("json_ext")
	if !ok || c != "^1.0.0" {
		t.Errorf("Lookup(json_ext) = %q, %v; want ^1.0.0, true", c, ok)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	t.Parallel()
	s := Parse([]byte("dependencies:\n  Http: ^1.0.0\n"))
	if !s.Has("HTTP") {
		t.Error("lookup must be case-insensitive")
	}
	if s.Entries()[0].Name != "Http" {
		t.Errorf("display name = %q; want case preserved", s.Entries()[0].Name)
	}
}

func TestRead_NeverFailsOnGarbage(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("\t{{{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Read(dir) // must not panic, must not error
	if s.Len() != 0 {
		t.Errorf("expected empty state from garbage, got %d entries", s.Len())
	}
}
