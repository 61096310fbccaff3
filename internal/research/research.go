// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research drives one research request end to end: it runs the
// selected search adapters, picks an interleaved set of result URLs,
// follows each one, and assembles a single size-bounded text report.
//
// Everything within a request runs sequentially. Research never returns an
// error; failures become annotated sections of the report.
package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pdiddy/research-assistant/internal/budget"
	"github.com/pdiddy/research-assistant/internal/extract"
	"github.com/pdiddy/research-assistant/internal/search"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// DefaultNumResults is used when a caller asks for zero or fewer sources.
const DefaultNumResults = 2

const (
	defaultMaxResults     = 3
	defaultMaxContentSize = 8000

	// footerSlack is kept free between the truncated body and the footer.
	footerSlack = 50

	searchErrLen   = 100
	extractErrLen  = 100
	researchErrLen = 200

	noResults = "No valid search results found. Please try a different query."
)

var separator = strings.Repeat("=", 40)

// Extractor follows one URL and summarizes the page.
type Extractor interface {
	Extract(ctx context.Context, rawURL string) (types.PageExtract, error)
}

// Researcher holds the collaborators for research requests. A Researcher
// keeps no per-request state and may serve concurrent requests.
type Researcher struct {
	Web       search.Adapter
	Academic  search.Adapter
	Extractor Extractor
	Config    types.ResearchConfig
	Logger    *slog.Logger
}

// New wires the web and academic adapters and the page extractor from cfg.
func New(cfg types.ResearchConfig, logger *slog.Logger) *Researcher {
	return &Researcher{
		Web:       search.NewWebAdapter(cfg.Search, logger),
		Academic:  search.NewAcademicAdapter(cfg.Search, logger),
		Extractor: extract.New(cfg.Extract, logger),
		Config:    cfg,
		Logger:    logger,
	}
}

// Research answers query from the selected sources and returns the report.
// sources is one of web, academic or both (anything else means both).
// numResults is capped at the configured maximum; values of zero or less
// select DefaultNumResults.
func (r *Researcher) Research(ctx context.Context, query, sources string, numResults int) (report string) {
	log := r.logger().With("request_id", uuid.NewString())

	defer func() {
		if p := recover(); p != nil {
			msg := fmt.Sprint(p)
			log.Error("research failed", "error", msg)
			report = "Research error: " + types.Clip(msg, researchErrLen)
		}
	}()

	kind := types.ParseSourceKind(sources)
	n := r.normalizeNumResults(numResults)
	log.Info("research started", "query", query, "sources", kind, "num_results", n)

	var body strings.Builder
	fmt.Fprintf(&body, "Research Query: %s\n\n", query)
	fmt.Fprintf(&body, "Searching %s...\n\n", describeSources(kind, "sources"))

	var webURLs, academicURLs []string
	if kind.Includes(types.SourceWeb) {
		webURLs = r.runAdapter(ctx, log, &body, r.Web, query, n)
	}
	if kind.Includes(types.SourceAcademic) {
		academicURLs = r.runAdapter(ctx, log, &body, r.Academic, query, n)
	}

	if len(webURLs) == 0 && len(academicURLs) == 0 {
		log.Info("research finished without results")
		return body.String() + noResults
	}

	targets := Interleave(kind, webURLs, academicURLs, n)
	fmt.Fprintf(&body, "DETAILED CONTENT FROM TOP %d SOURCES:\n\n", len(targets))
	for i, target := range targets {
		r.follow(ctx, log, &body, i+1, target)
	}

	report = r.assemble(body.String(), footer(query, kind, len(targets)))
	log.Info("research complete", "sources_examined", len(targets), "report_chars", utf8.RuneCountInString(report))
	return report
}

// runAdapter appends one adapter's section to body and returns its URLs
// capped at n.
func (r *Researcher) runAdapter(ctx context.Context, log *slog.Logger, body *strings.Builder, a search.Adapter, query string, n int) []string {
	heading := strings.ToUpper(string(a.Kind()))
	out := a.Search(ctx, query, n)
	if !out.OK() {
		log.Error("search failed", "kind", a.Kind(), "error", out.Err)
		fmt.Fprintf(body, "%s SEARCH ERROR: %s\n\n", heading, types.Clip(out.Err.Error(), searchErrLen))
		return nil
	}
	fmt.Fprintf(body, "%s SEARCH RESULTS:\n%s\n\n", heading, out.Block)
	return capURLs(out.URLs, n)
}

// follow extracts one target and appends its SOURCE block.
func (r *Researcher) follow(ctx context.Context, log *slog.Logger, body *strings.Builder, i int, target types.SourcedURL) {
	page, err := r.Extractor.Extract(ctx, target.URL)
	if err != nil {
		log.Error("following URL failed", "url", target.URL, "error", err)
		fmt.Fprintf(body, "%s\nSOURCE %d (%s): Error following URL\n%s\n", separator, i, target.Kind, separator)
		fmt.Fprintf(body, "Error: %s\n\n", types.Clip(err.Error(), extractErrLen))
		return
	}
	fmt.Fprintf(body, "%s\nSOURCE %d (%s): %s\n%s\n\n", separator, i, target.Kind, sourceTitle(page, i), separator)
	body.WriteString(page.String())
	body.WriteString("\n\n")
}

// assemble truncates body so that it and the footer fit the content budget,
// then appends the footer. The footer itself is never truncated.
func (r *Researcher) assemble(body, footer string) string {
	allowed := r.maxContentSize() - utf8.RuneCountInString(footer) - footerSlack
	if utf8.RuneCountInString(body) > allowed {
		body = budget.Truncate(body, allowed)
	}
	return body + footer
}

// Interleave builds the ordered list of URLs to follow. For both sources it
// alternates web and academic URLs, web first in each round, until both
// lists are exhausted. The result is capped at n.
func Interleave(kind types.SourceKind, web, academic []string, n int) []types.SourcedURL {
	var out []types.SourcedURL
	switch kind {
	case types.SourceWeb:
		out = tag(types.SourceWeb, web)
	case types.SourceAcademic:
		out = tag(types.SourceAcademic, academic)
	default:
		for i := 0; i < max(len(web), len(academic)); i++ {
			if i < len(web) {
				out = append(out, types.SourcedURL{Kind: types.SourceWeb, URL: web[i]})
			}
			if i < len(academic) {
				out = append(out, types.SourcedURL{Kind: types.SourceAcademic, URL: academic[i]})
			}
		}
	}
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func tag(kind types.SourceKind, urls []string) []types.SourcedURL {
	out := make([]types.SourcedURL, 0, len(urls))
	for _, u := range urls {
		out = append(out, types.SourcedURL{Kind: kind, URL: u})
	}
	return out
}

func capURLs(urls []string, n int) []string {
	if len(urls) > n {
		return urls[:n]
	}
	return urls
}

// sourceTitle is the first line of the rendered extract title.
func sourceTitle(page types.PageExtract, i int) string {
	title := page.Title
	if page.PDF {
		title = types.PDFTitle
	}
	title, _, _ = strings.Cut(types.Clip(title, types.MaxTitleLen), "\n")
	if title == "" {
		return fmt.Sprintf("Source %d", i)
	}
	return title
}

func footer(query string, kind types.SourceKind, examined int) string {
	var b strings.Builder
	b.WriteString("\nRESEARCH SUMMARY:\n")
	fmt.Fprintf(&b, "Completed research on: %s\n", query)
	fmt.Fprintf(&b, "Examined %d sources from %s\n", examined, describeSources(kind, "databases"))
	b.WriteString("The information above represents the most relevant content found on this topic.\n")
	return b.String()
}

// describeSources names the selected sources, e.g. "web sources" or, for
// both, "web and academic <plural>".
func describeSources(kind types.SourceKind, plural string) string {
	if kind == types.SourceBoth {
		return "web and academic " + plural
	}
	return string(kind) + " sources"
}

func (r *Researcher) normalizeNumResults(n int) int {
	limit := r.Config.MaxResults
	if limit <= 0 {
		limit = defaultMaxResults
	}
	if n <= 0 {
		n = DefaultNumResults
	}
	return min(n, limit)
}

func (r *Researcher) maxContentSize() int {
	if r.Config.MaxContentSize <= 0 {
		return defaultMaxContentSize
	}
	return r.Config.MaxContentSize
}

func (r *Researcher) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
