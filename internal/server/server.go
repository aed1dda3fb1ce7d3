// Package server exposes yman operations as Model Context Protocol tools.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/yman/internal/service"
	"github.com/mj1618/yman/internal/version"
)

// Server wraps the MCP server around a yman service.
type Server struct {
	svc        *service.Service
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// New creates an MCP server with all yman tools registered.
func New(svc *service.Service) *Server {
	s := &Server{svc: svc}
	s.mcp = mcpserver.NewMCPServer(
		"yman",
		version.Version,
	)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_sessions",
			mcp.WithDescription("List the names of stored Yakuake sessions"),
		),
		s.handleList,
	)

	s.mcp.AddTool(
		mcp.NewTool("show_session",
			mcp.WithDescription("Show the tabs of a stored session: title, directory, command and environment"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Session name")),
		),
		s.handleShow,
	)

	s.mcp.AddTool(
		mcp.NewTool("store_session",
			mcp.WithDescription("Store the currently open Yakuake tabs under a new name. Fails if the name is taken."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Session name")),
			mcp.WithBoolean("keep", mcp.Description("Include the active tab (default: skip it)")),
		),
		s.handleStore,
	)

	s.mcp.AddTool(
		mcp.NewTool("restore_session",
			mcp.WithDescription("Open one new Yakuake tab per stored tab and replay its directory, environment and command"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Session name")),
			mcp.WithBoolean("clear", mcp.Description("Clear each terminal after setup")),
		),
		s.handleRestore,
	)

	s.mcp.AddTool(
		mcp.NewTool("diff_session",
			mcp.WithDescription("Compare a stored session with the currently open tabs. Idle shells receive a short probe command."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Session name")),
			mcp.WithBoolean("keep", mcp.Description("Include the active tab (default: skip it)")),
		),
		s.handleDiff,
	)

	s.mcp.AddTool(
		mcp.NewTool("remove_session",
			mcp.WithDescription("Delete a stored session. Requires confirm=true."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Session name")),
			mcp.WithBoolean("confirm", mcp.Description("Must be true to delete")),
		),
		s.handleRemove,
	)
}
