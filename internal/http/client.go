// ABOUTME: Shared HTTP client construction with conservative transport limits
// ABOUTME: All registry traffic goes through a client built here

package http

import (
	"net/http"
	"time"
)

// NewClient creates an HTTP client with bounded handshake and header
// timeouts and a small idle pool. Registry hosts are few, so two idle
// connections per host is plenty.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			IdleConnTimeout:       30 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
		},
	}
}
