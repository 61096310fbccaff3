// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package budget bounds report text to a character budget.
package budget

import "strings"

// Suffix is appended to every truncated text.
const Suffix = "...\n[Content truncated due to size limits]"

// paragraphSlack is how far before the budget the paragraph search starts.
const paragraphSlack = 50

// Truncate shortens text to at most maxLength characters, preferring to cut
// at a paragraph break in the second half of the budget, and appends Suffix.
// Lengths are counted in runes. The result is never longer than
// maxLength+len(Suffix).
//
// Text that already carries Suffix with a body inside the budget is returned
// as is, which makes Truncate idempotent.
func Truncate(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	if body, ok := strings.CutSuffix(text, Suffix); ok && runeLen(body) <= maxLength {
		return text
	}

	window := maxLength - paragraphSlack
	if window < 0 {
		window = 0
	}
	head := string(runes[:window])
	if cut := strings.LastIndex(head, "\n\n"); cut >= 0 {
		// cut is a byte offset; the budget comparison is in runes.
		if at := runeLen(head[:cut]); at > maxLength/2 {
			return string(runes[:at]) + "\n\n" + Suffix
		}
	}
	return string(runes[:maxLength]) + Suffix
}

func runeLen(s string) int {
	return len([]rune(s))
}
