// Package mcp assembles the Model Context Protocol server for careermcp
// using the mcp-go library.
//
// The wire protocol (streamable HTTP, JSON-RPC 2.0 framing, session
// handling) is owned entirely by mcp-go; this package registers the
// gateway's tool descriptors with the framework, adapts each incoming
// CallToolRequest into a gateway dispatch, and mounts the transport in a
// chi router next to a health endpoint.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"careermcp/internal/auth"
	"careermcp/internal/config"
	"careermcp/internal/gateway"
	"careermcp/internal/logging"
	"careermcp/internal/tools"
	"careermcp/internal/upstream"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "Career & Business Intelligence Suite"
	serverVersion = "1.0.0"

	shutdownTimeout = 10 * time.Second
)

// Server wires the gateway, the mcp-go server, and the HTTP transport.
type Server struct {
	cfg       *config.Config
	logger    *logging.AppLogger
	gateway   *gateway.Gateway
	mcpServer *server.MCPServer
	streaming *server.StreamableHTTPServer
}

// NewServer builds the full server: descriptor table, gateway, mcp-go tool
// registrations, and the streamable HTTP transport.
func NewServer(cfg *config.Config, logger *logging.AppLogger) (*Server, error) {
	var insights *upstream.Client
	if cfg.InsightsAPIURL != "" {
		insights = upstream.New(cfg.InsightsAPIURL, cfg.UpstreamTimeout)
		logger.Info("Market insights enrichment enabled", "url", cfg.InsightsAPIURL, "timeout", cfg.UpstreamTimeout)
	}

	gw, err := gateway.New(cfg.AuthToken, logger, tools.All(cfg, insights))
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		gateway: gw,
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, d := range gw.Descriptors() {
		s.mcpServer.AddTool(d.MCPTool(), s.toolHandler(d.Name))
		logger.Debug("Registered tool", "name", d.Name)
	}

	// The Authorization header travels to the gateway through the request
	// context; mcp-go handlers never see the *http.Request itself.
	s.streaming = server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithHTTPContextFunc(auth.FromRequest),
		server.WithStateLess(true),
	)

	return s, nil
}

// toolHandler adapts a CallToolRequest to a gateway dispatch. Gateway
// errors are returned as-is so the framework surfaces them as
// protocol-level errors carrying the kind and message.
func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		text, err := s.gateway.Dispatch(ctx, name, request.GetArguments())
		if err != nil {
			return nil, err
		}
		return mcpgo.NewToolResultText(text), nil
	}
}

// Router returns the root HTTP handler: the MCP transport under /mcp and
// a health endpoint.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Mount("/mcp", s.streaming)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	s.logger.Info("MCP server listening", "addr", s.cfg.Addr(), "path", "/mcp")

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down MCP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
