// ABOUTME: Manifest reading: pubspec-style dependency mapping with declaration order
// ABOUTME: Structured YAML parse first, line-oriented fallback on structural failure

package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pubpal/pubpal/internal/log"
)

// FileName is the manifest file expected at the project root.
const FileName = "pubspec.yaml"

// Entry is one declared dependency: name as written plus its raw
// version-constraint text.
type Entry struct {
	Name       string
	Constraint string
}

// State is the parsed dependency mapping of a manifest, rebuilt on every
// read so callers never see stale data after a mutation. Declaration order
// is preserved; lookups are case-insensitive.
type State struct {
	entries []Entry
	index   map[string]string
}

// Entries returns the declared dependencies in declaration order.
func (s State) Entries() []Entry { return s.entries }

// Len returns the number of declared dependencies.
func (s State) Len() int { return len(s.entries) }

// Lookup returns the raw constraint for name, matched case-insensitively.
func (s State) Lookup(name string) (string, bool) {
	c, ok := s.index[strings.ToLower(name)]
	return c, ok
}

// Has reports whether name is declared, matched case-insensitively.
func (s State) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

func (s *State) add(name, constraint string) {
	key := strings.ToLower(name)
	if s.index == nil {
		s.index = make(map[string]string)
	}
	if _, dup := s.index[key]; dup {
		return
	}
	s.index[key] = constraint
	s.entries = append(s.entries, Entry{Name: name, Constraint: constraint})
}

// Path returns the manifest location for a project root.
func Path(projectRoot string) string {
	return filepath.Join(projectRoot, FileName)
}

// Read loads and parses the manifest under projectRoot. A missing file and
// every flavor of parse failure produce a (possibly empty) State, never an
// error: the catalog must still build when the manifest is broken.
func Read(projectRoot string) State {
	data, err := os.ReadFile(Path(projectRoot))
	if os.IsNotExist(err) {
		return State{}
	}
	if err != nil {
		log.Debug("manifest read failed: %v", err)
		return State{}
	}
	return Parse(data)
}

// Parse parses manifest bytes: structured first, fallback on failure.
// Both strategies produce identical results for well-formed manifests.
func Parse(data []byte) State {
	s, err := parseStructured(data)
	if err != nil {
		log.Debug("structured manifest parse failed, using fallback: %v", err)
		return parseFallback(data)
	}
	return s
}
