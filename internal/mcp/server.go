package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/codeexplainer/internal/explainer"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the code explainer as tools.
type Server struct {
	svc *explainer.Service
	mcp *server.MCPServer
}

// NewServer creates a new MCP server backed by svc.
func NewServer(svc *explainer.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"codeexplainer",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(explainCodeTool, s.handleExplainCode)
	s.mcp.AddTool(listLanguagesTool, s.handleListLanguages)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
