package tools

import (
	"context"
	"encoding/json"

	"github.com/cnosuke/mcp-product-search/searcher"
	"github.com/cnosuke/mcp-product-search/types"
	"github.com/cockroachdb/errors"
	mcp "github.com/metoro-io/mcp-golang"
	"go.uber.org/zap"
)

// SearchMultipleArgs - Arguments for search_multiple tool
type SearchMultipleArgs struct {
	Queries []string `json:"queries" jsonschema:"description=Search terms (maximum depends on config),required=true"`
}

// RegisterSearchMultipleTool - Register the search_multiple tool
func RegisterSearchMultipleTool(ctx context.Context, mcpServer *mcp.Server, exec searcher.QueryExecutor, maxQueries int) error {
	zap.S().Debugw("registering search_multiple tool", "max_queries", maxQueries)
	err := mcpServer.RegisterTool("search_multiple", "Searches the product catalog for several terms at once. Results keep the order of queries",
		func(args SearchMultipleArgs) (*mcp.ToolResponse, error) {
			response, err := searchMultiple(ctx, exec, args, maxQueries)
			if err != nil {
				return nil, err
			}

			// Convert response to JSON
			jsonResponse, err := json.Marshal(response)
			if err != nil {
				zap.S().Errorw("failed to marshal response to JSON",
					"error", err)
				return nil, errors.Wrap(err, "failed to marshal response to JSON")
			}

			return mcp.NewToolResponse(mcp.NewTextContent(string(jsonResponse))), nil
		})

	if err != nil {
		zap.S().Errorw("failed to register search_multiple tool", "error", err)
		return errors.Wrap(err, "failed to register search_multiple tool")
	}

	return nil
}

func searchMultiple(ctx context.Context, exec searcher.QueryExecutor, args SearchMultipleArgs, maxQueries int) (*types.MultipleSearchResponse, error) {
	zap.S().Debugw("executing search_multiple",
		"queries_count", len(args.Queries))

	// Validate queries count
	if len(args.Queries) == 0 {
		return nil, errors.New("at least one query is required")
	}

	if maxQueries > 0 && len(args.Queries) > maxQueries {
		return nil, errors.Newf("too many queries: maximum allowed is %d", maxQueries)
	}

	response := &types.MultipleSearchResponse{
		Results: make([]*types.SearchResult, 0, len(args.Queries)),
	}
	for res := range searcher.Run(ctx, exec, args.Queries).All() {
		response.Results = append(response.Results, types.NewSearchResult(res))
	}

	return response, nil
}
