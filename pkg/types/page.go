// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Defaults used when a page lacks the corresponding element.
const (
	NoTitle       = "No title"
	NoDescription = "No description available"

	PDFTitle       = "PDF Document"
	PDFPlaceholder = "[PDF document - contents cannot be extracted directly]"

	MaxDescriptionLen = 200
)

// PageExtract is the readable summary of one followed URL.
type PageExtract struct {
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`

	// Excerpt is unbounded here; the report budget limits it later.
	Excerpt string `json:"excerpt" yaml:"excerpt"`

	// PDF marks the placeholder extract for PDF responses.
	PDF bool `json:"pdf,omitempty" yaml:"pdf,omitempty"`
}

// String renders the extract as the text block embedded in reports.
func (p PageExtract) String() string {
	if p.PDF {
		return fmt.Sprintf("Title: %s\nURL: %s\n\nContent: %s", PDFTitle, p.URL, PDFPlaceholder)
	}
	return fmt.Sprintf("Title: %s\nURL: %s\nDescription: %s\n\nContent:\n%s",
		Clip(p.Title, MaxTitleLen), p.URL, Clip(p.Description, MaxDescriptionLen), p.Excerpt)
}
