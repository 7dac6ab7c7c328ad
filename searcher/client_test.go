package searcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() Client {
	return NewHTTPClient(&ClientConfig{
		Timeout:   5, // Short timeout for tests
		UserAgent: "test-agent/1.0",
	})
}

func TestHTTPClient_Get_SendsQueryParams(t *testing.T) {
	var gotQuery, gotAgent, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"total":0}`))
		require.NoError(t, err)
	}))
	t.Cleanup(server.Close)

	status, body, err := newTestClient().Get(context.Background(), server.URL+"/products/search", url.Values{"q": {"hd tv & more"}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `{"total":0}`, string(body))
	assert.Equal(t, "/products/search", gotPath)
	assert.Equal(t, "hd tv & more", gotQuery)
	assert.Equal(t, "test-agent/1.0", gotAgent)
}

func TestHTTPClient_Get_NonSuccessIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Not Found"))
		require.NoError(t, err)
	}))
	t.Cleanup(server.Close)

	status, body, err := newTestClient().Get(context.Background(), server.URL, url.Values{"q": {"x"}})

	// The transport reports the status; classifying it is the executor's job
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not Found", string(body))
}

func TestHTTPClient_Get_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	serverURL := server.URL
	server.Close()

	_, _, err := newTestClient().Get(context.Background(), serverURL, url.Values{"q": {"x"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute request")
}

func TestHTTPClient_Get_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newTestClient().Get(ctx, server.URL, url.Values{"q": {"x"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
