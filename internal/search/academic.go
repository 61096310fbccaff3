// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/research-assistant/internal/httputil"
	"github.com/pdiddy/research-assistant/pkg/types"
)

const academicFields = "title,authors,year,venue,url,abstract"

// Defaults for missing paper fields.
const (
	untitledPaper  = "Untitled Paper"
	unknownAuthors = "Unknown authors"
	noAbstract     = "No abstract available"
	etAl           = "et al."
	maxAuthors     = 3
)

// AcademicAdapter queries the Semantic Scholar paper search API.
type AcademicAdapter struct {
	Client *http.Client
	Config types.SearchConfig
	Logger *slog.Logger
}

// NewAcademicAdapter returns an AcademicAdapter with its own client built from cfg.
func NewAcademicAdapter(cfg types.SearchConfig, logger *slog.Logger) *AcademicAdapter {
	return &AcademicAdapter{
		Client: httputil.NewClient(cfg.HTTPConfig),
		Config: cfg,
		Logger: logger,
	}
}

// Kind returns types.SourceAcademic.
func (a *AcademicAdapter) Kind() types.SourceKind { return types.SourceAcademic }

// Search queries the API for up to limit papers. A non-200 response is not
// an error: it is rendered as a status sentence in the block.
func (a *AcademicAdapter) Search(ctx context.Context, query string, limit int) Outcome {
	params := url.Values{
		"query":  {query},
		"limit":  {strconv.Itoa(limit)},
		"fields": {academicFields},
	}
	reqURL := a.Config.AcademicEndpoint + "?" + params.Encode()

	resp, err := httputil.Get(ctx, a.Client, reqURL, httputil.AcceptJSON, a.Config.HTTPConfig)
	if err != nil {
		return Fail(fmt.Errorf("Semantic Scholar API request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger().Warn("academic search returned error status", "status", resp.StatusCode)
		return Ok(fmt.Sprintf("Academic search error: API returned status %d", resp.StatusCode), nil)
	}

	var sr academicResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return Fail(&httputil.ParseError{What: "Semantic Scholar response", Err: err})
	}
	if len(sr.Data) == 0 {
		return Ok("No academic results found. Try refining your search.", nil)
	}

	results := make([]types.AcademicResult, 0, len(sr.Data))
	plain := make([]types.SearchResult, 0, len(sr.Data))
	for _, paper := range sr.Data {
		r := normalizePaper(paper)
		results = append(results, r)
		plain = append(plain, r.SearchResult)
	}
	a.logger().Debug("academic search complete", "query", query, "results", len(results))

	return Ok(FormatAcademic(query, results), followableURLs(plain))
}

func (a *AcademicAdapter) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

// normalizePaper maps one API paper onto an AcademicResult, filling defaults
// and applying the field caps.
func normalizePaper(p academicPaper) types.AcademicResult {
	title := p.Title
	if title == "" {
		title = untitledPaper
	}
	abstract := p.Abstract
	if abstract == "" {
		abstract = noAbstract
	}

	year := ""
	if p.Year != nil {
		year = strconv.Itoa(*p.Year)
	}
	info := fmt.Sprintf("%s (%s)", authorList(p.Authors), year)
	if p.Venue != "" {
		info += " - " + p.Venue
	}

	return types.AcademicResult{
		SearchResult: types.SearchResult{
			Title:   types.Clip(title, types.MaxTitleLen),
			URL:     types.Clip(p.URL, types.MaxURLLen),
			Snippet: types.Clip(abstract, types.MaxSnippetLen),
		},
		AuthorsInfo: types.Clip(info, types.MaxAuthorsInfoLen),
	}
}

// authorList joins the first three named authors. "et al." is added whenever
// the paper lists more than three authors, named or not.
func authorList(authors []academicAuthor) string {
	var names []string
	for _, a := range authors {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	if len(names) > maxAuthors {
		names = names[:maxAuthors]
	}
	if len(authors) > maxAuthors {
		names = append(names, etAl)
	}
	if len(names) == 0 {
		return unknownAuthors
	}
	return strings.Join(names, ", ")
}

// FormatAcademic renders papers as a numbered list. The URL line is omitted
// for papers without a URL.
func FormatAcademic(query string, results []types.AcademicResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Academic search results for: %s\n\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Title)
		if r.URL != "" {
			fmt.Fprintf(&b, "   URL: %s\n", r.URL)
		}
		fmt.Fprintf(&b, "   %s\n", r.AuthorsInfo)
		fmt.Fprintf(&b, "   %s\n\n", r.Snippet)
	}
	return b.String()
}

// Semantic Scholar API JSON structures.
type academicResponse struct {
	Total int             `json:"total"`
	Data  []academicPaper `json:"data"`
}

type academicPaper struct {
	PaperID  string           `json:"paperId"`
	Title    string           `json:"title"`
	Abstract string           `json:"abstract"`
	Year     *int             `json:"year"`
	Venue    string           `json:"venue"`
	URL      string           `json:"url"`
	Authors  []academicAuthor `json:"authors"`
}

type academicAuthor struct {
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
}
