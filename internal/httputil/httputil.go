// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages: client
// construction from HTTPConfig, a single-attempt GET, and the typed errors
// callers match on.
package httputil

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Accept headers for the two kinds of upstream content.
const (
	AcceptHTML = "text/html,application/xhtml+xml"
	AcceptJSON = "application/json"
)

// NewClient returns a client with the configured timeout. Redirects are
// followed by the default policy.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// Get performs one GET request with the configured User-Agent and the given
// Accept header. There is no retry. Transport failures are returned as
// *UpstreamError; the response status is left for the caller to judge.
func Get(ctx context.Context, client *http.Client, rawURL, accept string, cfg types.HTTPConfig) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", accept)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &UpstreamError{URL: rawURL, Err: err}
	}
	return resp, nil
}

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
