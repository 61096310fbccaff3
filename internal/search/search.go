// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the web search engine and the scholarly metadata
// API, normalizes their hits into types.SearchResult records, and renders
// each result list as the text block embedded in research reports.
package search

import (
	"context"
	"regexp"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Adapter searches a single backend. The web and academic adapters
// implement it; the orchestrator treats them uniformly through Outcome.
type Adapter interface {
	Kind() types.SourceKind
	Search(ctx context.Context, query string, limit int) Outcome
}

// Outcome is the result of one adapter call: either a rendered block with
// the URLs it exposes, or an error.
//
// An adapter may report a failure in-band as Block text with a nil Err; the
// academic adapter does this for non-200 responses.
type Outcome struct {
	Block string
	URLs  []string
	Err   error
}

// Ok builds a successful Outcome.
func Ok(block string, urls []string) Outcome {
	return Outcome{Block: block, URLs: urls}
}

// Fail builds a failed Outcome.
func Fail(err error) Outcome {
	return Outcome{Err: err}
}

// OK reports whether the adapter produced a block.
func (o Outcome) OK() bool { return o.Err == nil }

// followablePattern matches the URLs a report exposes as "URL: <url>" lines
// that are worth following: absolute http(s), ending at whitespace.
var followablePattern = regexp.MustCompile(`^https?://\S+`)

// followableURLs returns the followable URL of each result, in order.
func followableURLs(results []types.SearchResult) []string {
	var urls []string
	for _, r := range results {
		if u := followablePattern.FindString(r.URL); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
