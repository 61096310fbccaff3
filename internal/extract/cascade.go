// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// Strategy selects excerpt fragments from a page. Its result is accepted
// when it yields at least MinFragments fragments.
type Strategy struct {
	Name         string
	MinFragments int
	Select       func(doc *goquery.Document) []string
}

// DefaultStrategies is the excerpt cascade: leading paragraphs, then
// headings mixed with paragraphs, then the whole visible text.
var DefaultStrategies = []Strategy{
	{Name: "paragraphs", MinFragments: 2, Select: SelectParagraphs},
	{Name: "headings", MinFragments: 1, Select: SelectHeadings},
	{Name: "fulltext", MinFragments: 0, Select: SelectFullText},
}

// Cascade tries strategies in order and returns the first accepted result.
// When none is accepted the last strategy's fragments are returned.
func Cascade(doc *goquery.Document, strategies []Strategy) (string, []string) {
	var name string
	var fragments []string
	for _, s := range strategies {
		name, fragments = s.Name, s.Select(doc)
		if len(fragments) >= s.MinFragments {
			break
		}
	}
	return name, fragments
}

// SelectParagraphs looks at the first 5 <p> elements and keeps those with
// more than 15 characters, each capped at 300.
func SelectParagraphs(doc *goquery.Document) []string {
	return selectText(doc, "p", 5, 15, 300)
}

// SelectHeadings looks at the first 8 h1-h3 and <p> elements in document
// order and keeps those with more than 10 characters, each capped at 200.
func SelectHeadings(doc *goquery.Document) []string {
	return selectText(doc, "h1, h2, h3, p", 8, 10, 200)
}

// SelectFullText returns the page's visible text, whitespace-collapsed and
// capped at 500 characters, as a single fragment.
func SelectFullText(doc *goquery.Document) []string {
	visible := doc.Selection.Clone()
	visible.Find("script, style, noscript").Remove()
	text := strings.Join(strings.Fields(visible.Text()), " ")
	return []string{types.Clip(text, 500)}
}

// selectText scans the first limit elements matching selector. Elements
// whose trimmed text is not longer than minChars are skipped but still
// count toward limit.
func selectText(doc *goquery.Document, selector string, limit, minChars, maxChars int) []string {
	var fragments []string
	doc.Find(selector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= limit {
			return false
		}
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) > minChars {
			fragments = append(fragments, types.Clip(text, maxChars))
		}
		return true
	})
	return fragments
}
