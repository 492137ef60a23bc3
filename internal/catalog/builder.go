// ABOUTME: Reconciliation core: merges manifest, document, and registry state
// ABOUTME: Preserves source ordering; never re-sorts; manifest is re-read every build

package catalog

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pubpal/pubpal/internal/document"
	"github.com/pubpal/pubpal/internal/log"
	"github.com/pubpal/pubpal/internal/manifest"
	"github.com/pubpal/pubpal/internal/registry"
)

// enrichLimit bounds concurrent detail fetches for installed-mode builds.
const enrichLimit = 10

// Registry is the remote data source consumed by the builder.
type Registry interface {
	Search(ctx context.Context, query string) ([]registry.Package, error)
	Details(ctx context.Context, name string) registry.Details
}

// Builder assembles annotated Records for a query, document, and mode.
// Every build re-reads the manifest so results never go stale after a
// mutation.
type Builder struct {
	Root     string
	Registry Registry
	Scanner  document.Scanner

	// Enrich gates the registry detail fetches for installed-mode builds
	// (the enable_suggestions setting).
	Enrich bool
}

// Build produces the catalog for one query/toggle event. Installed mode
// lists manifest entries in declaration order, filtered by query; all mode
// lists registry search hits in relevance order, annotated against the
// manifest and the document text.
func (b *Builder) Build(ctx context.Context, query, docText string, mode Mode) ([]Record, error) {
	state := manifest.Read(b.Root)
	if mode == ModeInstalled {
		return b.buildInstalled(ctx, query, docText, state), nil
	}
	return b.buildAll(ctx, query, docText, state)
}

func (b *Builder) buildInstalled(ctx context.Context, query, docText string, state manifest.State) []Record {
	records := make([]Record, 0, state.Len())
	for _, e := range state.Entries() {
		records = append(records, Record{
			Name:            e.Name,
			DeclaredVersion: e.Constraint,
			Capabilities:    CapabilitiesFor(e.Name),
			Installed:       true,
			Imported:        b.Scanner.Referenced(docText, e.Name),
		})
	}

	if b.Enrich && b.Registry != nil {
		var g errgroup.Group
		g.SetLimit(enrichLimit)
		for i := range records {
			g.Go(func() error {
				d := b.Registry.Details(ctx, records[i].Name)
				records[i].Description = d.Description
				records[i].LatestVersion = d.LatestVersion
				records[i].Popularity = d.Popularity
				return nil
			})
		}
		g.Wait()
	}

	if query == "" {
		return records
	}
	filtered := records[:0]
	for _, r := range records {
		if matchesQuery(r, query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (b *Builder) buildAll(ctx context.Context, query, docText string, state manifest.State) ([]Record, error) {
	pkgs, err := b.Registry.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(pkgs))
	for _, p := range pkgs {
		if !ValidName(p.Name) {
			log.Debug("dropping registry hit with invalid name %q", p.Name)
			continue
		}
		installed := state.Has(p.Name)
		rec := Record{
			Name:          p.Name,
			Description:   p.Description,
			LatestVersion: p.LatestVersion,
			Popularity:    p.Popularity,
			Capabilities:  CapabilitiesFor(p.Name),
			Installed:     installed,
			Imported:      b.Scanner.Referenced(docText, p.Name),
		}
		if installed {
			rec.DeclaredVersion, _ = state.Lookup(p.Name)
		}
		records = append(records, rec)
	}
	return records, nil
}

// matchesQuery is the installed-mode filter: case-insensitive containment
// in name or description.
func matchesQuery(r Record, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}
