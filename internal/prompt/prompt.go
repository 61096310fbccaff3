// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt renders the instruction text that guides an assistant
// through a multi-stage research session built on the deep_research tool.
package prompt

import (
	"fmt"
	"strings"
	"text/template"
)

// deepResearchTmpl walks the assistant through six stages: exploration,
// synthesis, visuals, follow-up, final synthesis and APA references.
var deepResearchTmpl = template.Must(template.New("deep_research").Parse(`I need to do comprehensive research on: {{.Topic}}

Please follow this multi-step research process:

1. INITIAL EXPLORATION: Use the deep_research tool to gather information from both web and academic sources.

2. PRELIMINARY SYNTHESIS: Organize the key findings, identifying main concepts, perspectives, and knowledge gaps. Create an artifact for your synthesis to improve readability and organization. Include sections for methodology, key findings, and areas requiring further investigation.

3. VISUAL REPRESENTATION: Where appropriate, create data visualizations to illustrate key concepts, trends, or relationships found in the research. Consider using:
   - Timeline charts for historical developments
   - Comparison tables for contrasting perspectives
   - Concept maps to show relationships between ideas
   - Flowcharts to illustrate processes
   - Bar/pie charts for statistical information
Present these visualizations as part of your analysis artifact.

4. FOLLOW-UP RESEARCH: Based on the initial findings, identify 2-3 specific aspects that need deeper investigation. Conduct targeted follow-up research on these aspects using the deep_research tool again with more specific queries.

5. COMPREHENSIVE SYNTHESIS: Integrate all gathered information into a coherent summary that explains the main points, different perspectives, and current understanding of the topic. Highlight how the follow-up research addressed the knowledge gaps or expanded on key concepts from the initial exploration. Create a final artifact that includes:
   - Executive summary
   - Methodology
   - Key findings with visualizations
   - Analysis and interpretation
   - Conclusions and implications

6. REFERENCES: Include a properly formatted reference list at the end in APA 7th edition format. For each source used in your synthesis, create an appropriate citation. When exact publication dates are unavailable, use the best available information (like website copyright dates or 'n.d.' if no date is found). Format web sources as:
Author, A. A. (Year, Month Day). Title of page. Site Name. URL

For academic sources, use:
Author, A. A., & Author, B. B. (Year). Title of article. Journal Name, Volume(Issue), page range. DOI or URL

This iterative approach with proper citations and visual elements will provide a thorough understanding of {{.Topic}} that integrates information from multiple authoritative sources and presents it in a well-organized, visually enhanced format.`))

// DeepResearch returns the research instructions for topic.
func DeepResearch(topic string) string {
	var b strings.Builder
	if err := deepResearchTmpl.Execute(&b, struct{ Topic string }{topic}); err != nil {
		panic(fmt.Sprintf("rendering deep_research prompt: %v", err))
	}
	return b.String()
}
