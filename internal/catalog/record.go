// ABOUTME: PackageRecord and view mode types for the suggestion catalog
// ABOUTME: Records are value snapshots; the builder always produces fresh lists

package catalog

import "regexp"

// Mode selects which source feeds the catalog.
type Mode int

const (
	// ModeAll sources records from a registry search.
	ModeAll Mode = iota
	// ModeInstalled sources records from the manifest's declared dependencies.
	ModeInstalled
)

// String returns the mode's user-facing name.
func (m Mode) String() string {
	if m == ModeInstalled {
		return "installed"
	}
	return "all"
}

// Record is one annotated catalog entry: a snapshot of manifest, document,
// and registry state at build time. Records are never mutated after being
// handed to the UI; any state change rebuilds the whole list.
type Record struct {
	Name            string
	Description     string
	DeclaredVersion string // set only when Installed
	LatestVersion   string
	Popularity      *float64 // normalized [0,1], nil when unknown
	Capabilities    []string
	Installed       bool
	Imported        bool
}

// Actionable reports whether the record still offers the user something to
// do: anything not both installed and imported.
func (r Record) Actionable() bool {
	return !(r.Installed && r.Imported)
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidName reports whether name is a non-empty identifier of letters,
// digits, and underscores.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}
