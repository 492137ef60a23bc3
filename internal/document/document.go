// ABOUTME: Text document model shared by the import scanner and editor
// ABOUTME: Byte-offset ranges and atomic multi-edit application

package document

import (
	"fmt"
	"sort"
	"strings"
)

// Range is a half-open byte-offset span [Start, End) in a document.
// A zero Range is empty and valid at offset 0.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range spans no text.
func (r Range) Empty() bool { return r.Start == r.End }

// Edit replaces the text in Range with NewText. A deletion has empty
// NewText; an insertion has an empty Range.
type Edit struct {
	Range   Range
	NewText string
}

// Apply applies all edits to text as one atomic operation. Either every
// edit applies or none does: out-of-bounds or overlapping edits return the
// original text and an error. Edits may be given in any order.
func Apply(text string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return text, nil
	}

	for _, e := range edits {
		if e.Range.Start < 0 || e.Range.End < e.Range.Start || e.Range.End > len(text) {
			return text, fmt.Errorf("edit range [%d,%d) out of bounds for document of %d bytes",
				e.Range.Start, e.Range.End, len(text))
		}
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	// At equal start offsets an insertion (empty range) sorts before a
	// deletion so that inserting at the head of a deleted span is legal.
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Range.Start != sorted[j].Range.Start {
			return sorted[i].Range.Start < sorted[j].Range.Start
		}
		return sorted[i].Range.End < sorted[j].Range.End
	})

	var b strings.Builder
	last := 0
	for _, e := range sorted {
		if e.Range.Start < last {
			return text, fmt.Errorf("overlapping edits at offset %d", e.Range.Start)
		}
		b.WriteString(text[last:e.Range.Start])
		b.WriteString(e.NewText)
		last = e.Range.End
	}
	b.WriteString(text[last:])
	return b.String(), nil
}
