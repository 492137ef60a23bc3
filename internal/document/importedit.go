// ABOUTME: Idempotent import statement insertion and removal
// ABOUTME: Deletion of the trigger selection and insertion happen as one atomic edit set

package document

import "strings"

// Outcome reports what EnsureImported did.
type Outcome int

const (
	// Imported means the canonical import line was inserted.
	Imported Outcome = iota
	// AlreadyImported means the document already contained the line.
	AlreadyImported
)

// String returns the user-facing description of the outcome.
func (o Outcome) String() string {
	switch o {
	case Imported:
		return "imported"
	case AlreadyImported:
		return "already imported"
	default:
		return "unknown"
	}
}

// EnsureImported guarantees that text contains the canonical import line
// for name, removing selection (the text the action was triggered from) in
// the same atomic edit. A second call never produces a duplicate line.
func EnsureImported(name, text string, selection Range) (string, Outcome, error) {
	line := ImportLine(name)

	edits := []Edit{}
	if !selection.Empty() {
		edits = append(edits, Edit{Range: selection})
	}

	if strings.Contains(text, line) {
		out, err := Apply(text, edits)
		return out, AlreadyImported, err
	}

	edits = append(edits, Edit{Range: Range{}, NewText: line + "\n"})
	out, err := Apply(text, edits)
	return out, Imported, err
}

// RemoveImport deletes the canonical import line for name if present,
// including its trailing newline. Returns the text unchanged when the
// line is absent.
func RemoveImport(name, text string) string {
	line := ImportLine(name)
	idx := strings.Index(text, line)
	if idx < 0 {
		return text
	}
	end := idx + len(line)
	if end < len(text) && text[end] == '\n' {
		end++
	}
	return text[:idx] + text[end:]
}
