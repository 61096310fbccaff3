// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/research-assistant/internal/httputil"
	"github.com/pdiddy/research-assistant/pkg/types"
)

const noSnippet = "No snippet available"

// uddgPattern captures the destination of a DuckDuckGo redirect link.
var uddgPattern = regexp.MustCompile(`uddg=([^&]+)`)

// WebAdapter scrapes the DuckDuckGo HTML results page.
type WebAdapter struct {
	Client *http.Client
	Config types.SearchConfig
	Logger *slog.Logger
}

// NewWebAdapter returns a WebAdapter with its own client built from cfg.
func NewWebAdapter(cfg types.SearchConfig, logger *slog.Logger) *WebAdapter {
	return &WebAdapter{
		Client: httputil.NewClient(cfg.HTTPConfig),
		Config: cfg,
		Logger: logger,
	}
}

// Kind returns types.SourceWeb.
func (a *WebAdapter) Kind() types.SourceKind { return types.SourceWeb }

// Search fetches the results page for query and renders up to limit hits.
// An unsuccessful status or transport failure is returned as an error.
func (a *WebAdapter) Search(ctx context.Context, query string, limit int) Outcome {
	reqURL := a.Config.WebEndpoint + "?" + url.Values{"q": {query}}.Encode()

	resp, err := httputil.Get(ctx, a.Client, reqURL, httputil.AcceptHTML, a.Config.HTTPConfig)
	if err != nil {
		return Fail(fmt.Errorf("web search request: %w", err))
	}
	defer resp.Body.Close()

	if !httputil.IsSuccess(resp.StatusCode) {
		return Fail(&httputil.UpstreamError{URL: reqURL, StatusCode: resp.StatusCode})
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Fail(&httputil.ParseError{What: "web results page", Err: err})
	}

	results := parseWebResults(doc, limit)
	a.logger().Debug("web search complete", "query", query, "results", len(results))

	return Ok(FormatWeb(query, results), followableURLs(results))
}

func (a *WebAdapter) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

// parseWebResults extracts at most limit records from the result blocks.
// Blocks without a title link are skipped.
func parseWebResults(doc *goquery.Document, limit int) []types.SearchResult {
	var results []types.SearchResult
	doc.Find(".result").EachWithBreak(func(_ int, block *goquery.Selection) bool {
		if len(results) >= limit {
			return false
		}

		link := block.Find(".result__title a").First()
		if link.Length() == 0 {
			return true
		}
		href, _ := link.Attr("href")

		snippet := noSnippet
		if s := block.Find(".result__snippet").First(); s.Length() > 0 {
			snippet = strings.TrimSpace(s.Text())
		}

		results = append(results, types.SearchResult{
			Title:   types.Clip(strings.TrimSpace(link.Text()), types.MaxTitleLen),
			URL:     types.Clip(unwrapRedirect(href), types.MaxURLLen),
			Snippet: types.Clip(snippet, types.MaxSnippetLen),
		})
		return true
	})
	return results
}

// unwrapRedirect returns the destination of a search-engine redirect link,
// or href unchanged when it is not one.
func unwrapRedirect(href string) string {
	if !strings.Contains(href, "duckduckgo.com") {
		return href
	}
	m := uddgPattern.FindStringSubmatch(href)
	if m == nil {
		return href
	}
	if dest, err := url.PathUnescape(m[1]); err == nil {
		return dest
	}
	return m[1]
}

// FormatWeb renders web results as a numbered list. An empty list renders
// as a "no results" sentence.
func FormatWeb(query string, results []types.SearchResult) string {
	if len(results) == 0 {
		return "No web results found for: " + query
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Web search results for: %s\n\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Title)
		fmt.Fprintf(&b, "   URL: %s\n", r.URL)
		fmt.Fprintf(&b, "   %s\n\n", r.Snippet)
	}
	return b.String()
}
