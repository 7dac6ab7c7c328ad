package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Product - A single product returned by the search endpoint
type Product struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// String renders a product by its id only.
func (p Product) String() string {
	return strconv.Itoa(p.ID)
}

// Response - Decoded payload of one search request
type Response struct {
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
	Products []Product `json:"products"`
}

// QueryResult pairs a query with its outcome. Exactly one of Response and Err is set.
type QueryResult struct {
	// Index is the position of the query in the submitted batch.
	Index    int
	Query    string
	Response *Response
	Err      error
}

// OK reports whether the query succeeded.
func (r QueryResult) OK() bool {
	return r.Err == nil && r.Response != nil
}

// String formats the result as `[  query   ] => [11 12]` or `[  query   ] => Error: 404`.
func (r QueryResult) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(center(r.Query, 10))
	sb.WriteString("] => ")

	if r.Err != nil {
		sb.WriteString("Error: ")
		if code, ok := statusCoder(r.Err); ok {
			sb.WriteString(strconv.Itoa(code))
		} else {
			sb.WriteString(r.Err.Error())
		}
		return sb.String()
	}
	if r.Response == nil {
		sb.WriteString("Error: empty response")
		return sb.String()
	}
	sb.WriteString(fmt.Sprint(r.Response.Products))
	return sb.String()
}

// statusCoder extracts a status code from errors that carry one.
func statusCoder(err error) (int, bool) {
	var c interface{ HTTPStatus() int }
	if errors.As(err, &c) {
		return c.HTTPStatus(), true
	}
	return 0, false
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// SearchResult - Per-query entry of a search_multiple response
type SearchResult struct {
	Index      int       `json:"index"`
	Query      string    `json:"query"`
	Total      int       `json:"total,omitempty"`
	Products   []Product `json:"products,omitempty"`
	Error      string    `json:"error,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
}

// MultipleSearchResponse - Search results in submission order
type MultipleSearchResponse struct {
	Results []*SearchResult `json:"results"`
}

// NewSearchResult flattens a QueryResult into its JSON view.
func NewSearchResult(res QueryResult) *SearchResult {
	out := &SearchResult{Index: res.Index, Query: res.Query}
	if res.Err != nil {
		out.Error = res.Err.Error()
		out.StatusCode, _ = statusCoder(res.Err)
		return out
	}
	if res.Response != nil {
		out.Total = res.Response.Total
		out.Products = res.Response.Products
	}
	return out
}
