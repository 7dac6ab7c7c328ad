package server

import (
	"context"
	"os/signal"
	"syscall"

	mcp "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"
	"go.uber.org/zap"

	"github.com/cnosuke/mcp-product-search/config"
	"github.com/cnosuke/mcp-product-search/searcher"
	"github.com/cnosuke/mcp-product-search/server/tools"
	"github.com/cockroachdb/errors"
)

// NewExecutor - Create the search executor described by cfg
func NewExecutor(cfg *config.Config) (*searcher.Executor, error) {
	client := searcher.NewHTTPClient(&searcher.ClientConfig{
		Timeout:   cfg.Search.Timeout,
		UserAgent: cfg.Search.UserAgent,
	})

	exec, err := searcher.NewExecutor(client, &searcher.Config{
		Endpoint:     cfg.Search.Endpoint,
		MaxErrorBody: cfg.Search.MaxErrorBody,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create search executor")
	}
	return exec, nil
}

// Run - Execute the MCP server
func Run(cfg *config.Config, name string, version string, revision string) error {
	zap.S().Infow("starting MCP Product Search Server")

	// Format version string with revision if available
	versionString := version
	if revision != "" && revision != "xxx" {
		versionString = versionString + " (" + revision + ")"
	}

	zap.S().Debugw("creating search executor", "endpoint", cfg.Search.Endpoint)
	exec, err := NewExecutor(cfg)
	if err != nil {
		zap.S().Errorw("failed to create search executor", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create MCP server with server name and version
	zap.S().Debugw("creating MCP server",
		"name", name,
		"version", versionString,
	)
	mcpServer := mcp.NewServer(
		stdio.NewStdioServerTransport(),
		mcp.WithName(name),
		mcp.WithVersion(versionString),
	)

	// Register all tools
	zap.S().Debugw("registering tools")
	if err := tools.RegisterAllTools(ctx, mcpServer, exec, cfg.Search.MaxQueries); err != nil {
		zap.S().Errorw("failed to register tools", "error", err)
		return err
	}

	// Start the server with stdio transport
	zap.S().Infow("starting MCP server")
	if err := mcpServer.Serve(); err != nil {
		zap.S().Errorw("failed to start server", "error", err)
		return errors.Wrap(err, "failed to start server")
	}

	// Serve returns once the transport is running; block until a signal arrives
	<-ctx.Done()
	zap.S().Infow("server shutting down")
	return nil
}
