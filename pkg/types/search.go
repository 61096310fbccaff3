// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the research pipeline:
// normalized search records, page extracts, the URLs selected for following,
// and stage configuration.
package types

import "strings"

// SourceKind names where a URL or record came from.
type SourceKind string

const (
	SourceWeb      SourceKind = "web"
	SourceAcademic SourceKind = "academic"
	// SourceBoth is only meaningful as a request selector.
	SourceBoth SourceKind = "both"
)

// ParseSourceKind normalizes a user-supplied source selector. Matching is
// case-insensitive and ignores surrounding whitespace; anything unrecognized
// selects both sources.
func ParseSourceKind(s string) SourceKind {
	switch k := SourceKind(strings.ToLower(strings.TrimSpace(s))); k {
	case SourceWeb, SourceAcademic, SourceBoth:
		return k
	default:
		return SourceBoth
	}
}

// Includes reports whether a selector covers kind.
func (k SourceKind) Includes(kind SourceKind) bool {
	return k == SourceBoth || k == kind
}

// Field length caps applied by the search adapters.
const (
	MaxTitleLen       = 100
	MaxURLLen         = 150
	MaxSnippetLen     = 200
	MaxAuthorsInfoLen = 150
)

// SearchResult is one normalized hit from a search backend.
type SearchResult struct {
	// Title is capped at MaxTitleLen characters.
	Title string `json:"title" yaml:"title"`

	// URL is capped at MaxURLLen characters. Empty when the backend had none.
	URL string `json:"url" yaml:"url"`

	// Snippet is the result summary (or abstract), capped at MaxSnippetLen.
	Snippet string `json:"snippet" yaml:"snippet"`
}

// AcademicResult is a SearchResult carrying publication details.
type AcademicResult struct {
	SearchResult `yaml:",inline"`

	// AuthorsInfo combines up to three author names, an "et al." marker,
	// the year, and the venue. Capped at MaxAuthorsInfoLen.
	AuthorsInfo string `json:"authors_info" yaml:"authors_info"`
}

// SourcedURL is a URL selected for following, tagged with its origin.
type SourcedURL struct {
	Kind SourceKind `json:"kind" yaml:"kind"`
	URL  string     `json:"url" yaml:"url"`
}

// Clip returns the first n characters of s.
func Clip(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
