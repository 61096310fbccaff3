package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepResearch(t *testing.T) {
	got := DeepResearch("coral reef bleaching")

	assert.True(t, strings.HasPrefix(got, "I need to do comprehensive research on: coral reef bleaching\n\n"))
	assert.Equal(t, 2, strings.Count(got, "coral reef bleaching"))
	assert.True(t, strings.HasSuffix(got, "visually enhanced format."))

	for _, step := range []string{
		"1. INITIAL EXPLORATION:",
		"2. PRELIMINARY SYNTHESIS:",
		"3. VISUAL REPRESENTATION:",
		"4. FOLLOW-UP RESEARCH:",
		"5. COMPREHENSIVE SYNTHESIS:",
		"6. REFERENCES:",
	} {
		assert.Contains(t, got, step)
	}
}

func TestDeepResearchLeavesTopicVerbatim(t *testing.T) {
	// text/template does no escaping, so markup in the topic survives.
	got := DeepResearch("<b>R&D</b> {{.Topic}}")
	assert.Contains(t, got, "research on: <b>R&D</b> {{.Topic}}\n")
}

func TestDeepResearchIsPure(t *testing.T) {
	assert.Equal(t, DeepResearch("x"), DeepResearch("x"))
}
