package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cnosuke/mcp-product-search/config"
	"github.com/cnosuke/mcp-product-search/logger"
	"github.com/cnosuke/mcp-product-search/searcher"
	"github.com/cnosuke/mcp-product-search/server"
	"github.com/cnosuke/mcp-product-search/types"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	// Version and Revision are replaced at build time.
	Version  = "0.0.1"
	Revision = "xxx"
)

const appName = "mcp-product-search"

func main() {
	app := &cli.App{
		Name:    appName,
		Usage:   "Product search fan-out client and MCP server",
		Version: fmt.Sprintf("%s (%s)", Version, Revision),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yml",
				Usage:   "path to the configuration file",
			},
		},
		Before: func(c *cli.Context) error {
			// .env is optional
			if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
				return errors.Wrap(err, "failed to load .env")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run every query against the search endpoint and print the results in order",
				ArgsUsage: "QUERY...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print one JSON object per result",
					},
				},
				Action: runSearch,
			},
			{
				Name:  "server",
				Usage: "Start the MCP server on stdio",
				Action: func(c *cli.Context) error {
					cfg, err := setup(c)
					if err != nil {
						return err
					}
					defer logger.Sync()
					return server.Run(cfg, appName, Version, Revision)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	if err := logger.InitLogger(cfg.Debug, cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSearch(c *cli.Context) error {
	queries := c.Args().Slice()
	if len(queries) == 0 {
		return errors.New("at least one query is required")
	}

	cfg, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync()

	exec, err := server.NewExecutor(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	failed, err := printResults(ctx, c.App.Writer, exec, queries, c.Bool("json"))
	if err != nil {
		return err
	}
	zap.S().Debugw("search finished", "queries", len(queries), "failed", failed)
	return nil
}

func printResults(ctx context.Context, w io.Writer, exec searcher.QueryExecutor, queries []string, asJSON bool) (int, error) {
	failed := 0
	enc := json.NewEncoder(w)
	for res := range searcher.Run(ctx, exec, queries).All() {
		if res.Err != nil {
			failed++
		}
		if !asJSON {
			if _, err := fmt.Fprintln(w, res.String()); err != nil {
				return failed, errors.Wrap(err, "failed to write result")
			}
			continue
		}

		if err := enc.Encode(types.NewSearchResult(res)); err != nil {
			return failed, errors.Wrap(err, "failed to encode result")
		}
	}
	return failed, nil
}
