// Package server exposes the provisioning helpers as MCP tools over stdio
package server

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"github.com/vagrant-mcp/gpdb-vagrant/internal/config"
)

// Version is reported to MCP clients
const Version = "0.1.0"

// Server manages the MCP server instance
type Server struct {
	mcpServer *server.MCPServer
	cfg       config.Config
}

// NewServer creates an MCP server whose tools default to cfg
func NewServer(cfg config.Config) *Server {
	srv := &Server{
		mcpServer: server.NewMCPServer(
			"gpdb-vagrant",
			Version,
			server.WithToolCapabilities(false),
		),
		cfg: cfg,
	}
	srv.registerTools()
	return srv
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(buildArgsTool(), handleBuildArgs(s.cfg))
	s.mcpServer.AddTool(renderVagrantfileTool(), handleRenderVagrantfile(s.cfg))
	log.Debug().Msg("All MCP tools registered")
}

// MCPServer returns the underlying mcp-go server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve speaks MCP over in/out until ctx is cancelled or in is closed
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	log.Info().Msg("gpdb-vagrant MCP server started")
	err := server.NewStdioServer(s.mcpServer).Listen(ctx, in, out)
	log.Info().Msg("gpdb-vagrant MCP server stopped")
	return err
}
