// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes research as a Model Context Protocol server: the
// deep_research tool runs a research request, and the deep_research prompt
// returns the multi-stage research instructions. The server runs over stdio
// or over streamable HTTP.
package mcpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Name is the MCP implementation name.
const Name = "research-assistant"

// Researcher runs one research request and returns the report text.
type Researcher interface {
	Research(ctx context.Context, query, sources string, numResults int) string
}

// Server is the MCP server for research-assistant.
type Server struct {
	researcher Researcher
	server     *mcp.Server
	logger     *slog.Logger
}

// New creates a server with the deep_research tool and prompt registered.
func New(r Researcher, version string, logger *slog.Logger) (*Server, error) {
	if r == nil {
		return nil, errors.New("mcpserver: nil researcher")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		researcher: r,
		server:     mcp.NewServer(&mcp.Implementation{Name: Name, Version: version}, nil),
		logger:     logger,
	}
	s.registerTools()
	s.registerPrompts()
	return s, nil
}

// MCP returns the underlying SDK server.
func (s *Server) MCP() *mcp.Server { return s.server }

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server starting", "transport", "stdio")
	defer s.logger.Info("mcp server stopped", "transport", "stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the HTTP routes: the streamable MCP endpoint at /mcp and a
// liveness probe at /healthz.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	r.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil))
	return r
}

// RunHTTP serves Handler on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	s.logger.Info("mcp server starting", "transport", "http", "addr", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		s.logger.Info("mcp server stopped", "transport", "http")
		return nil
	}
	return err
}
