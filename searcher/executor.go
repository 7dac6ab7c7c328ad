package searcher

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/cnosuke/mcp-product-search/types"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// QueryParam is the URL parameter the search term is bound to.
const QueryParam = "q"

// Decoder turns a 2xx body into a Response.
type Decoder func(body []byte) (*types.Response, error)

// DecodeJSON decodes body as a search response. Unknown fields are ignored.
func DecodeJSON(body []byte) (*types.Response, error) {
	resp := &types.Response{}
	if err := json.Unmarshal(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

type Config struct {
	Endpoint string
	// MaxErrorBody caps the excerpt kept on StatusError. Zero keeps none.
	MaxErrorBody int
}

// Executor issues single search queries against a fixed endpoint.
type Executor struct {
	client       Client
	endpoint     string
	decode       Decoder
	maxErrorBody int
}

type ExecutorOption func(*Executor)

// WithDecoder replaces DecodeJSON.
func WithDecoder(d Decoder) ExecutorOption {
	return func(e *Executor) {
		e.decode = d
	}
}

// NewExecutor validates the endpoint and creates an Executor that sends
// every query through client.
func NewExecutor(client Client, cfg *Config, opts ...ExecutorOption) (*Executor, error) {
	if client == nil {
		return nil, errors.New("client is required")
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint %q", cfg.Endpoint)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.Newf("invalid endpoint %q: expected an absolute http(s) URL", cfg.Endpoint)
	}

	e := &Executor{
		client:       client,
		endpoint:     cfg.Endpoint,
		decode:       DecodeJSON,
		maxErrorBody: cfg.MaxErrorBody,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Execute runs one query. Failures are reported in the result's Err as
// *TransportError, *StatusError or *DecodeError; Execute itself never fails.
func (e *Executor) Execute(ctx context.Context, query string) types.QueryResult {
	result := types.QueryResult{Query: query}

	status, body, err := e.client.Get(ctx, e.endpoint, url.Values{QueryParam: {query}})
	if err != nil {
		zap.S().Debugw("search request failed", "query", query, "error", err)
		result.Err = &TransportError{Err: err}
		return result
	}

	if status < 200 || status > 299 {
		zap.S().Debugw("search returned non-success status", "query", query, "status", status)
		result.Err = &StatusError{
			StatusCode: status,
			Detail:     errorDetail(body, e.maxErrorBody),
		}
		return result
	}

	resp, err := e.safeDecode(body)
	if err != nil {
		zap.S().Debugw("failed to decode search response", "query", query, "bytes", len(body), "error", err)
		result.Err = &DecodeError{Err: err}
		return result
	}

	result.Response = resp
	return result
}

func (e *Executor) safeDecode(body []byte) (resp *types.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, errors.Newf("decoder panicked: %v", r)
		}
	}()

	resp, err = e.decode(body)
	if err == nil && resp == nil {
		err = errors.New("decoder returned no response")
	}
	return resp, err
}
