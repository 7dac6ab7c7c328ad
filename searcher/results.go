package searcher

import (
	"iter"

	"github.com/cnosuke/mcp-product-search/types"
)

// Results is a single-pass, ordered sequence of query results returned by Run.
// It is meant for one consumer: Next and Close must not be called concurrently.
type Results struct {
	p *pipeline
}

// Next blocks until the next result in submission order is available.
// It returns false once every query has been emitted or after Close.
func (r *Results) Next() (types.QueryResult, bool) {
	return r.p.next()
}

// Len returns the number of results not yet emitted.
func (r *Results) Len() int {
	return r.p.remaining()
}

// Close stops dispatching, cancels in-flight queries and waits for them to
// return. It is safe to call more than once.
func (r *Results) Close() {
	r.p.finish()
}

// All iterates over the remaining results and closes r when the loop ends,
// including on break.
func (r *Results) All() iter.Seq[types.QueryResult] {
	return func(yield func(types.QueryResult) bool) {
		defer r.Close()
		for {
			res, ok := r.Next()
			if !ok || !yield(res) {
				return
			}
		}
	}
}

// Collect drains the remaining results into a slice.
func (r *Results) Collect() []types.QueryResult {
	out := make([]types.QueryResult, 0, r.Len())
	for res := range r.All() {
		out = append(out, res)
	}
	return out
}
