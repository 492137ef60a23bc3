// ABOUTME: Tests for registry search, enrichment fan-out, and degradation rules
// ABOUTME: Uses httptest.Server fakes; detail failures must never drop entries

package registry

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newFake(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestSearch_EnrichesAllHits(t *testing.T) {
	t.Parallel()
	c := newFake(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/search"):
			fmt.Fprint(w, `{"packages":[{"package":"http","description":"HTTP client"},{"package":"args"}]}`)
		case r.URL.Path == "/packages/http":
			fmt.Fprint(w, `{"latest":{"version":"1.2.0","pubspec":{"description":"HTTP client"}},"popularityScore":0.99}`)
		case r.URL.Path == "/packages/args":
			fmt.Fprint(w, `{"latest":{"version":"2.4.2","pubspec":{"description":"CLI arg parsing"}}}`)
		default:
			http.NotFound(w, r)
		}
	})

	pkgs, err := c.Search(context.Background(), "http")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pkgs) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(pkgs))
	}
	if pkgs[0].Name != "http" || pkgs[1].Name != "args" {
		t.Errorf("order not preserved: %v", []string{pkgs[0].Name, pkgs[1].Name})
	}
	if pkgs[0].LatestVersion != "1.2.0" {
		t.Errorf("LatestVersion = %q; want 1.2.0", pkgs[0].LatestVersion)
	}
	if pkgs[0].Popularity == nil || *pkgs[0].Popularity != 0.99 {
		t.Errorf("Popularity = %v; want 0.99", pkgs[0].Popularity)
	}
	// Description missing from search is filled from details.
	if pkgs[1].Description != "CLI arg parsing" {
		t.Errorf("Description = %q; want filled from details", pkgs[1].Description)
	}
}

func TestSearch_DetailFailureKeepsEntry(t *testing.T) {
	t.Parallel()
	c := newFake(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/search") {
			fmt.Fprint(w, `{"packages":[{"package":"flaky"}]}`)
			return
		}
		http.Error(w, "down", http.StatusBadGateway)
	})

	pkgs, err := c.Search(context.Background(), "flaky")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("entry dropped on detail failure: got %d", len(pkgs))
	}
	if pkgs[0].Description != NoDescription {
		t.Errorf("Description = %q; want sentinel %q", pkgs[0].Description, NoDescription)
	}
	if pkgs[0].LatestVersion != "" {
		t.Errorf("LatestVersion = %q; want empty", pkgs[0].LatestVersion)
	}
}

func TestSearch_NonSuccessIsVisible(t *testing.T) {
	t.Parallel()
	c := newFake(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	if _, err := c.Search(context.Background(), "x"); err == nil {
		t.Fatal("expected search error on non-200")
	}
}

func TestSearch_MalformedPayloadIsVisible(t *testing.T) {
	t.Parallel()
	c := newFake(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"packages": nope`)
	})
	if _, err := c.Search(context.Background(), "x"); err == nil {
		t.Fatal("expected error on malformed search payload")
	}
}

func TestSearch_CapsResults(t *testing.T) {
	t.Parallel()
	c := newFake(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/search") {
			var sb strings.Builder
			sb.WriteString(`{"packages":[`)
			for i := 0; i < 25; i++ {
				if i > 0 {
					sb.WriteString(",")
				}
				fmt.Fprintf(&sb, `{"package":"pkg%d","description":"d"}`, i)
			}
			sb.WriteString("]}")
			fmt.Fprint(w, sb.String())
			return
		}
		fmt.Fprint(w, `{}`)
	})

	pkgs, err := c.Search(context.Background(), "pkg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pkgs) != 10 {
		t.Errorf("expected 10 results, got %d", len(pkgs))
	}
}

func TestSearch_EnrichDisabledSkipsDetails(t *testing.T) {
	t.Parallel()
	detailCalls := 0
	c := newFake(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/search") {
			fmt.Fprint(w, `{"packages":[{"package":"http","description":"HTTP client"}]}`)
			return
		}
		detailCalls++
		fmt.Fprint(w, `{}`)
	})
	c.Enrich = false

	pkgs, err := c.Search(context.Background(), "http")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detailCalls != 0 {
		t.Errorf("details fetched despite enrichment disabled: %d calls", detailCalls)
	}
	if pkgs[0].Description != "HTTP client" {
		t.Errorf("Description = %q", pkgs[0].Description)
	}
}

func TestDetails_DegradesToZero(t *testing.T) {
	t.Parallel()
	c := newFake(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	d := c.Details(context.Background(), "ghost")
	if d != (Details{}) {
		t.Errorf("expected zero details, got %+v", d)
	}
}
