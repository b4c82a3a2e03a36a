package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/omnimsg/unipile-mcp/internal/common"
	"github.com/omnimsg/unipile-mcp/internal/config"
	"github.com/omnimsg/unipile-mcp/internal/mcp"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "unipile-mcp.toml", "Path to config file")
	flag.Parse()

	// Credentials usually arrive through the environment; a local .env is
	// a convenience for development.
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)

	srv, err := mcp.NewServer(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build MCP server")
		fmt.Fprintf(os.Stderr, "failed to build MCP server: %v\n", err)
		os.Exit(1)
	}

	if *stdio {
		// Stdio transport reads stdin and writes stdout; all logging
		// stays on stderr and the log file.
		if err := mcpserver.ServeStdio(srv); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	httpServer := mcpserver.NewStreamableHTTPServer(srv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().Str("port", cfg.Server.Port).Msg("starting MCP streamable HTTP server")
	if err := httpServer.Start(":" + cfg.Server.Port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
