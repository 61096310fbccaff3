// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pdiddy/research-assistant/internal/prompt"
)

// ResearchInput is the input schema for the deep_research tool.
type ResearchInput struct {
	Query      string `json:"query" jsonschema:"the research question or topic"`
	Sources    string `json:"sources,omitempty" jsonschema:"which sources to use: web, academic or both (default both)"`
	NumResults int    `json:"num_results,omitempty" jsonschema:"number of sources to examine (default 2, max 3)"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "deep_research",
		Description: "Perform comprehensive research on a topic and return detailed information combining web and academic sources.",
	}, s.handleResearch)
}

// handleResearch never reports a tool error; research failures are part of
// the report text.
func (s *Server) handleResearch(ctx context.Context, _ *mcp.CallToolRequest, in ResearchInput) (*mcp.CallToolResult, any, error) {
	report := s.researcher.Research(ctx, in.Query, in.Sources, in.NumResults)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: report}},
	}, nil, nil
}

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "deep_research",
		Description: "Create a prompt for comprehensive, multi-stage research on a topic.",
		Arguments: []*mcp.PromptArgument{
			{Name: "topic", Description: "The topic to research", Required: true},
		},
	}, s.handleResearchPrompt)
}

func (s *Server) handleResearchPrompt(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	var topic string
	if req != nil && req.Params != nil {
		topic = req.Params.Arguments["topic"]
	}
	return &mcp.GetPromptResult{
		Description: "Comprehensive iterative research with APA citations",
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: prompt.DeepResearch(topic)}},
		},
	}, nil
}
