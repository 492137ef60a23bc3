// ABOUTME: Markdown details overlay for the selected package record
// ABOUTME: Rendered with glamour; falls back to plain text on render failure

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/pubpal/pubpal/internal/catalog"
)

// renderDetails builds a markdown card for rec and renders it for the
// terminal. Any renderer failure degrades to the raw markdown.
func (m Model) renderDetails(rec catalog.Record) string {
	md := detailsMarkdown(rec)

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func detailsMarkdown(rec catalog.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", rec.Name)
	if rec.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", rec.Description)
	}
	if rec.DeclaredVersion != "" {
		fmt.Fprintf(&b, "- declared: `%s`\n", rec.DeclaredVersion)
	}
	if rec.LatestVersion != "" {
		fmt.Fprintf(&b, "- latest: `%s`\n", rec.LatestVersion)
	}
	if rec.Popularity != nil {
		fmt.Fprintf(&b, "- popularity: %.0f%%\n", *rec.Popularity*100)
	}
	if rec.Installed {
		b.WriteString("- installed\n")
	}
	if rec.Imported {
		b.WriteString("- imported\n")
	}
	if len(rec.Capabilities) > 0 {
		fmt.Fprintf(&b, "\nCapabilities: %s\n", strings.Join(rec.Capabilities, ", "))
	}
	return b.String()
}
