// ABOUTME: Remote package registry client: search by query, fetch details by name
// ABOUTME: Details are best-effort and degrade to empty; search failures are visible

package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	pphttp "github.com/pubpal/pubpal/internal/http"
	"github.com/pubpal/pubpal/internal/log"
)

// NoDescription is the sentinel shown when the registry has no summary
// for a package.
const NoDescription = "no description"

// maxResults caps how many search hits are returned and enriched.
const maxResults = 10

// maxBody bounds response reads against a misbehaving registry.
const maxBody = 2 << 20

// Package is a registry-side search result. Only registry fields are set;
// installed/imported annotation happens in the catalog.
type Package struct {
	Name          string
	Description   string
	LatestVersion string
	Popularity    *float64
}

// Details is the best-effort enrichment payload for one package.
type Details struct {
	Description   string
	LatestVersion string
	Popularity    *float64
}

// Client talks to a pub-style registry over HTTP. Every outgoing request
// passes the rate limiter.
type Client struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter

	// Enrich controls whether Search fans out to Details for each hit.
	// Disabled via the enable_suggestions setting.
	Enrich bool
}

// New creates a Client for the given registry base URL.
func New(base string) *Client {
	return &Client{
		base:    base,
		http:    pphttp.NewClient(10 * time.Second),
		limiter: rate.NewLimiter(rate.Every(50*time.Millisecond), maxResults),
		Enrich:  true,
	}
}

// Search queries the registry and returns at most maxResults packages in
// relevance order, each enriched with details before Search returns. A
// non-success response or malformed payload is a visible error; detail
// failures only degrade individual entries.
func (c *Client) Search(ctx context.Context, query string) ([]Package, error) {
	body, err := c.get(ctx, c.base+"/search?q="+url.QueryEscape(query))
	if err != nil {
		return nil, fmt.Errorf("registry search %q: %w", query, err)
	}

	var payload struct {
		Packages []struct {
			Package     string `json:"package"`
			Description string `json:"description"`
		} `json:"packages"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("registry search %q: malformed response: %w", query, err)
	}

	hits := payload.Packages
	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}

	pkgs := make([]Package, len(hits))
	for i, h := range hits {
		pkgs[i] = Package{Name: h.Package, Description: h.Description}
	}

	if c.Enrich {
		var g errgroup.Group
		for i := range pkgs {
			g.Go(func() error {
				d := c.Details(ctx, pkgs[i].Name)
				if d.Description != "" && pkgs[i].Description == "" {
					pkgs[i].Description = d.Description
				}
				pkgs[i].LatestVersion = d.LatestVersion
				pkgs[i].Popularity = d.Popularity
				return nil
			})
		}
		g.Wait() // details never fail; wait for all to settle
	}

	for i := range pkgs {
		if pkgs[i].Description == "" {
			pkgs[i].Description = NoDescription
		}
	}
	return pkgs, nil
}

// Details fetches latest-release metadata for one package. Any network
// error, non-success status, or malformed payload degrades to the zero
// Details; this call never fails the caller.
func (c *Client) Details(ctx context.Context, name string) Details {
	body, err := c.get(ctx, c.base+"/packages/"+url.PathEscape(name))
	if err != nil {
		log.Debug("details fetch for %s degraded: %v", name, err)
		return Details{}
	}

	var payload struct {
		Latest struct {
			Version string `json:"version"`
			Pubspec struct {
				Description string `json:"description"`
			} `json:"pubspec"`
		} `json:"latest"`
		PopularityScore *float64 `json:"popularityScore"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Debug("details payload for %s malformed: %v", name, err)
		return Details{}
	}

	return Details{
		Description:   payload.Latest.Pubspec.Description,
		LatestVersion: payload.Latest.Version,
		Popularity:    payload.PopularityScore,
	}
}

// get performs one rate-limited GET and returns the body of a 200 response.
func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBody))
}
