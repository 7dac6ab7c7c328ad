package tools

import (
	"context"

	"github.com/cnosuke/mcp-product-search/searcher"
	mcp "github.com/metoro-io/mcp-golang"
)

// RegisterAllTools - Register all tools with the server. ctx bounds every
// search started by a tool call.
func RegisterAllTools(ctx context.Context, mcpServer *mcp.Server, exec searcher.QueryExecutor, maxQueries int) error {
	// Register search tool
	if err := RegisterSearchTool(ctx, mcpServer, exec); err != nil {
		return err
	}

	// Register search_multiple tool
	if err := RegisterSearchMultipleTool(ctx, mcpServer, exec, maxQueries); err != nil {
		return err
	}

	return nil
}
