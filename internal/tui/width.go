// ABOUTME: Display-width helpers: grapheme-aware truncation with ellipsis
// ABOUTME: runewidth measures cells; uniseg keeps clusters intact when cutting

package tui

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// truncate cuts s to at most max display cells, appending an ellipsis when
// anything was removed. Grapheme clusters are never split.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}

	budget := max - 1 // reserve a cell for the ellipsis
	var out []byte
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if used+w > budget {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out) + "…"
}

// pad right-pads s with spaces to exactly max display cells, truncating
// first when it is too long.
func pad(s string, max int) string {
	s = truncate(s, max)
	for w := runewidth.StringWidth(s); w < max; w++ {
		s += " "
	}
	return s
}
