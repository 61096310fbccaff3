// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/internal/httputil"
	"github.com/pdiddy/research-assistant/pkg/types"
)

func testCfg() types.ExtractConfig {
	return types.ExtractConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "test/0.1"},
	}
}

func servePage(t *testing.T, contentType, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

const articleHTML = `<html><head>
<title>
  Quantum Computing Basics
</title>
<meta name="description" content="An introduction to qubits.">
</head><body>
<nav><p>Home</p></nav>
<p>Quantum computers exploit superposition and entanglement.</p>
<p>short one</p>
<p>Qubits can represent zero and one at the same time.</p>
</body></html>`

func TestExtractArticle(t *testing.T) {
	ts := servePage(t, "text/html; charset=utf-8", articleHTML)

	page, err := New(testCfg(), nil).Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "Quantum Computing Basics", page.Title)
	assert.Equal(t, ts.URL, page.URL)
	assert.Equal(t, "An introduction to qubits.", page.Description)
	assert.Equal(t,
		"Quantum computers exploit superposition and entanglement.\n\nQubits can represent zero and one at the same time.",
		page.Excerpt)
	assert.False(t, page.PDF)

	want := "Title: Quantum Computing Basics\nURL: " + ts.URL +
		"\nDescription: An introduction to qubits.\n\nContent:\n" + page.Excerpt
	assert.Equal(t, want, page.String())
}

func TestExtractPDFPlaceholder(t *testing.T) {
	ts := servePage(t, "Application/PDF", "%PDF-1.7 <p>this paragraph must never be read</p>")

	page, err := New(testCfg(), nil).Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.True(t, page.PDF)
	assert.Equal(t, types.PDFTitle, page.Title)
	assert.Equal(t,
		"Title: PDF Document\nURL: "+ts.URL+"\n\nContent: [PDF document - contents cannot be extracted directly]",
		page.String())
}

func TestExtractDefaults(t *testing.T) {
	ts := servePage(t, "text/html", `<html><body><div>bare</div></body></html>`)

	page, err := New(testCfg(), nil).Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, types.NoTitle, page.Title)
	assert.Equal(t, types.NoDescription, page.Description)
	assert.Equal(t, "bare", page.Excerpt)
}

func TestExtractErrorStatusIsStillParsed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `<html><head><title>Not Found</title></head><body></body></html>`)
	}))
	defer ts.Close()

	page, err := New(testCfg(), nil).Extract(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "Not Found", page.Title)
}

func TestExtractTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := New(testCfg(), nil).Extract(context.Background(), url)
	var upErr *httputil.UpstreamError
	assert.True(t, errors.As(err, &upErr))
}

func TestExtractBodyLimit(t *testing.T) {
	// The second paragraph lies beyond the parse limit.
	html := "<p>" + strings.Repeat("a", 40) + "</p>" + strings.Repeat(" ", 200) + "<p>" + strings.Repeat("b", 40) + "</p>"
	ts := servePage(t, "text/html", html)

	cfg := testCfg()
	cfg.MaxBodyChars = 100
	page, err := New(cfg, nil).Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.NotContains(t, page.Excerpt, "bbb")
	assert.Contains(t, page.Excerpt, strings.Repeat("a", 40))
}

func TestExtractDecodesCharset(t *testing.T) {
	// "café" in ISO-8859-1.
	body := "<html><head><title>caf\xe9</title></head><body></body></html>"
	ts := servePage(t, "text/html; charset=iso-8859-1", body)

	page, err := New(testCfg(), nil).Extract(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "café", page.Title)
}

func TestExtractCustomStrategies(t *testing.T) {
	ts := servePage(t, "text/html", articleHTML)

	e := New(testCfg(), nil)
	e.Strategies = []Strategy{{
		Name:   "fixed",
		Select: func(*goquery.Document) []string { return []string{"x", "y"} },
	}}
	page, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "x\n\ny", page.Excerpt)
}

func TestPageTitleAndDescriptionCaps(t *testing.T) {
	long := strings.Repeat("t", 300)
	d := doc(t, fmt.Sprintf(`<title>%s</title><meta name="description" content="%s">`, long, long))

	page, _ := Page(d, "https://e.com", DefaultStrategies)
	rendered := page.String()
	assert.Contains(t, rendered, "Title: "+strings.Repeat("t", types.MaxTitleLen)+"\n")
	assert.Contains(t, rendered, "Description: "+strings.Repeat("t", types.MaxDescriptionLen)+"\n")
}

func TestPageEmptyDescriptionAttribute(t *testing.T) {
	page, _ := Page(doc(t, `<meta name="description" content="">`), "https://e.com", DefaultStrategies)
	assert.Equal(t, "", page.Description)
}
