package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cnosuke/mcp-product-search/searcher"
	"github.com/cnosuke/mcp-product-search/types"
	"github.com/cockroachdb/errors"
	mcp "github.com/metoro-io/mcp-golang"
	"go.uber.org/zap"
)

// SearchArgs - Arguments for search tool
type SearchArgs struct {
	Query string `json:"query" jsonschema:"description=Search term,required=true"`
}

// RegisterSearchTool - Register the search tool
func RegisterSearchTool(ctx context.Context, mcpServer *mcp.Server, exec searcher.QueryExecutor) error {
	zap.S().Debugw("registering search tool")
	err := mcpServer.RegisterTool("search", "Searches the product catalog for a single term",
		func(args SearchArgs) (*mcp.ToolResponse, error) {
			text, err := search(ctx, exec, args)
			if err != nil {
				return nil, err
			}
			return mcp.NewToolResponse(mcp.NewTextContent(text)), nil
		})

	if err != nil {
		zap.S().Errorw("failed to register search tool", "error", err)
		return errors.Wrap(err, "failed to register search tool")
	}

	return nil
}

func search(ctx context.Context, exec searcher.QueryExecutor, args SearchArgs) (string, error) {
	zap.S().Infow("executing search", "query", args.Query)

	// Validate query
	if strings.TrimSpace(args.Query) == "" {
		return "", errors.New("query is required")
	}

	result := types.NewSearchResult(exec.Execute(ctx, args.Query))

	// Convert response to JSON
	jsonResponse, err := json.Marshal(result)
	if err != nil {
		zap.S().Errorw("failed to marshal response to JSON",
			"error", err)
		return "", errors.Wrap(err, "failed to marshal response to JSON")
	}
	return string(jsonResponse), nil
}
