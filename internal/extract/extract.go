// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract follows a result URL and reduces the page to a short
// readable excerpt: title, meta description, and a handful of text
// fragments chosen by an ordered cascade of selection strategies.
package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/pdiddy/research-assistant/internal/httputil"
	"github.com/pdiddy/research-assistant/pkg/types"
)

const defaultMaxBodyChars = 100000

// Extractor fetches pages and builds PageExtracts. Each Extract call makes
// exactly one request.
type Extractor struct {
	Client *http.Client
	Config types.ExtractConfig
	Logger *slog.Logger

	// Strategies is the excerpt cascade; nil means DefaultStrategies.
	Strategies []Strategy
}

// New returns an Extractor with its own client built from cfg.
func New(cfg types.ExtractConfig, logger *slog.Logger) *Extractor {
	return &Extractor{
		Client: httputil.NewClient(cfg.HTTPConfig),
		Config: cfg,
		Logger: logger,
	}
}

// Extract fetches rawURL and summarizes it. PDF responses short-circuit to a
// placeholder without reading the body. The response status is not
// checked, so error pages are summarized like any other page.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (types.PageExtract, error) {
	resp, err := httputil.Get(ctx, e.Client, rawURL, httputil.AcceptHTML, e.Config.HTTPConfig)
	if err != nil {
		return types.PageExtract{}, err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(strings.ToLower(contentType), "application/pdf") {
		return types.PageExtract{Title: types.PDFTitle, URL: rawURL, PDF: true}, nil
	}

	body, err := readBody(resp.Body, contentType, e.maxBodyChars())
	if err != nil {
		return types.PageExtract{}, &httputil.UpstreamError{URL: rawURL, Err: fmt.Errorf("reading body: %w", err)}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return types.PageExtract{}, &httputil.ParseError{What: "page " + rawURL, Err: err}
	}

	page, strategy := Page(doc, rawURL, e.strategies())
	e.logger().Debug("page extracted", "url", rawURL, "strategy", strategy, "excerpt_chars", utf8.RuneCountInString(page.Excerpt))
	return page, nil
}

// Page builds the extract for an already parsed document and reports which
// strategy produced the excerpt.
func Page(doc *goquery.Document, rawURL string, strategies []Strategy) (types.PageExtract, string) {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = types.NoTitle
	}

	description := types.NoDescription
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		description = content
	}

	strategy, fragments := Cascade(doc, strategies)
	return types.PageExtract{
		Title:       title,
		URL:         rawURL,
		Description: description,
		Excerpt:     strings.Join(fragments, "\n\n"),
	}, strategy
}

// readBody decodes the body to UTF-8 using the declared or sniffed charset
// and keeps at most maxChars characters.
func readBody(r io.Reader, contentType string, maxChars int) (string, error) {
	decoded, err := charset.NewReader(r, contentType)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(io.LimitReader(decoded, int64(maxChars)*utf8.UTFMax))
	if err != nil {
		return "", err
	}
	return types.Clip(string(data), maxChars), nil
}

func (e *Extractor) maxBodyChars() int {
	if e.Config.MaxBodyChars <= 0 {
		return defaultMaxBodyChars
	}
	return e.Config.MaxBodyChars
}

func (e *Extractor) strategies() []Strategy {
	if e.Strategies == nil {
		return DefaultStrategies
	}
	return e.Strategies
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}
