// Package mcpserver exposes the character record operations as tools
// over the Model Context Protocol, on stdio or streamable HTTP.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/grimward/charkeeper/internal/game/roster"
)

const (
	// serverName identifies this server to MCP clients.
	serverName = "game-characters"
	// serverVersion identifies the server version to MCP clients.
	serverVersion = "0.1.0"
)

// Server hosts the MCP tool surface over a roster service.
type Server struct {
	mcpServer *mcp.Server
	logger    *zap.Logger
	httpSrv   *http.Server
}

// New creates a configured MCP server with every character tool
// registered.
//
// Precondition: svc and logger must be non-nil.
func New(svc *roster.Service, logger *zap.Logger) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, createCharacterTool(), createCharacterHandler(svc))
	mcp.AddTool(mcpServer, getCharacterTool(), getCharacterHandler(svc))
	mcp.AddTool(mcpServer, playerCharactersTool(), playerCharactersHandler(svc))
	mcp.AddTool(mcpServer, updateCharacterTool(), updateCharacterHandler(svc))
	mcp.AddTool(mcpServer, addExperienceTool(), addExperienceHandler(svc))
	mcp.AddTool(mcpServer, progressionInfoTool(), progressionInfoHandler(svc))
	mcp.AddTool(mcpServer, deleteCharacterTool(), deleteCharacterHandler(svc))
	mcp.AddTool(mcpServer, listCharactersTool(), listCharactersHandler(svc))

	return &Server{mcpServer: mcpServer, logger: logger}
}

// Serve runs the server over the given transport until the context is
// cancelled or the transport closes.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return errors.New("mcp server is not configured")
	}
	if err := s.mcpServer.Run(ctx, transport); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serving mcp: %w", err)
	}
	return nil
}

// ServeStdio runs the server on stdin/stdout. Logs must go to stderr
// while this is active.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info("serving tools on stdio")
	return s.Serve(ctx, &mcp.StdioTransport{})
}

// ServeHTTP runs the server as a streamable HTTP endpoint on addr,
// blocking until Shutdown is called or the listener fails.
func (s *Server) ServeHTTP(addr string) error {
	if s == nil || s.mcpServer == nil {
		return errors.New("mcp server is not configured")
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("serving tools on http", zap.String("addr", addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP listener if one is running. Stdio serving
// stops through context cancellation instead.
func (s *Server) Shutdown(ctx context.Context) {
	if s.httpSrv == nil {
		return
	}
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		s.logger.Warn("http shutdown", zap.Error(err))
	}
}
