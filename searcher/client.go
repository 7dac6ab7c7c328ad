package searcher

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	ierrors "github.com/cnosuke/mcp-product-search/internal/errors"
	"go.uber.org/zap"
)

// Client is the transport used by the Executor. Implementations must be safe
// for concurrent use by multiple in-flight requests.
type Client interface {
	// Get sends a GET to baseURL with params as the query string and returns
	// the status code and full body.
	Get(ctx context.Context, baseURL string, params url.Values) (int, []byte, error)
}

// ClientConfig holds HTTP transport settings.
type ClientConfig struct {
	// Timeout in seconds. Zero disables the client timeout.
	Timeout   int
	UserAgent string
}

// httpClient implements Client on top of net/http.
type httpClient struct {
	client    *http.Client
	userAgent string
}

// NewHTTPClient creates a Client backed by a pooled *http.Client.
func NewHTTPClient(cfg *ClientConfig) Client {
	zap.S().Infow("creating new HTTP client",
		"timeout", cfg.Timeout,
		"user_agent", cfg.UserAgent)

	return &httpClient{
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		userAgent: cfg.UserAgent,
	}
}

func (c *httpClient) Get(ctx context.Context, baseURL string, params url.Values) (int, []byte, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return 0, nil, ierrors.Wrap(err, "failed to parse endpoint")
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, nil, ierrors.Wrap(err, "failed to create request")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, ierrors.Wrap(err, "failed to execute request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, ierrors.Wrap(err, "failed to read response body")
	}

	zap.S().Debugw(
		"response received",
		"url", u.String(),
		"status", resp.StatusCode,
		"content-length", resp.ContentLength,
		"bytes", len(body),
		"content_type", resp.Header.Get("Content-Type"),
	)

	return resp.StatusCode, body, nil
}
