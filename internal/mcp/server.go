// Package mcp exposes the Unipile tool registry over the Model Context
// Protocol. Each registry tool becomes one MCP tool routed through a
// generic resolve/dispatch/translate pipeline.
package mcp

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/omnimsg/unipile-mcp/internal/common"
	"github.com/omnimsg/unipile-mcp/internal/config"
	"github.com/omnimsg/unipile-mcp/internal/registry"
	"github.com/omnimsg/unipile-mcp/internal/unipile"
)

// Version is the server version reported during the MCP handshake.
const Version = "1.0.0"

// NewServer builds the MCP server with every registry tool registered.
// The registry is validated first; a validation failure is a programming
// error and aborts startup.
func NewServer(cfg *config.Config, logger *common.Logger) (*mcpserver.MCPServer, error) {
	tools := registry.All()
	if err := registry.Validate(tools); err != nil {
		return nil, fmt.Errorf("invalid tool registry: %w", err)
	}

	srv := mcpserver.NewMCPServer(
		cfg.Server.Name,
		Version,
		mcpserver.WithToolCapabilities(true),
	)

	client := unipile.NewClient(cfg.Unipile.BaseURL, cfg.Unipile.APIKey, logger)
	dispatcher := NewDispatcher(client, tools, &cfg.Unipile, logger)
	for _, t := range tools {
		srv.AddTool(BuildMCPTool(t), dispatcher.Handler(t.Name))
	}

	logger.Info().
		Int("tools", len(tools)).
		Str("base_url", cfg.Unipile.BaseURL).
		Msg("MCP server initialized")

	return srv, nil
}
