package searcher

import (
	"context"
	"sync"

	"github.com/cnosuke/mcp-product-search/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxConcurrency is the number of queries that may be in flight at once.
// A finished result that has not been consumed yet still holds its slot.
const MaxConcurrency = 10

// QueryExecutor runs a single query and always returns a result.
type QueryExecutor interface {
	Execute(ctx context.Context, query string) types.QueryResult
}

// Run returns the results of queries in submission order. Queries are
// dispatched lazily as the caller pulls results, at most MaxConcurrency at a
// time. The caller must Close the returned Results if it stops early.
func Run(ctx context.Context, exec QueryExecutor, queries []string) *Results {
	return &Results{p: newPipeline(ctx, exec, queries, MaxConcurrency)}
}

// pipeline keeps one slot per dispatched query. Slots are drained in index
// order while later ones may finish first and wait in their buffered channel.
type pipeline struct {
	ctx     context.Context
	cancel  context.CancelFunc
	exec    QueryExecutor
	queries []string
	limit   int
	batchID string

	dispatched int
	emitted    int
	failed     int
	slots      []chan types.QueryResult
	wg         sync.WaitGroup
	done       bool
}

func newPipeline(ctx context.Context, exec QueryExecutor, queries []string, limit int) *pipeline {
	ctx, cancel := context.WithCancel(ctx)
	p := &pipeline{
		ctx:     ctx,
		cancel:  cancel,
		exec:    exec,
		queries: queries,
		limit:   limit,
		batchID: uuid.New().String(),
		slots:   make([]chan types.QueryResult, 0, limit),
	}

	zap.S().Debugw("starting search batch",
		"batch_id", p.batchID,
		"count", len(queries),
		"concurrency", limit)

	return p
}

// fill starts queries until every slot is taken or the input is exhausted.
func (p *pipeline) fill() {
	for !p.done && p.dispatched < len(p.queries) && len(p.slots) < p.limit {
		p.dispatch(p.dispatched)
		p.dispatched++
	}
}

func (p *pipeline) dispatch(index int) {
	query := p.queries[index]
	slot := make(chan types.QueryResult, 1)
	p.slots = append(p.slots, slot)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		res := p.exec.Execute(p.ctx, query)
		res.Index = index
		res.Query = query
		slot <- res
	}()
}

func (p *pipeline) next() (types.QueryResult, bool) {
	if p.done {
		return types.QueryResult{}, false
	}

	p.fill()
	if len(p.slots) == 0 {
		p.finish()
		return types.QueryResult{}, false
	}

	res := <-p.slots[0]
	p.slots[0] = nil
	p.slots = p.slots[1:]
	p.emitted++
	if res.Err != nil {
		p.failed++
	}

	// Keep the freed slot busy while the caller handles res.
	p.fill()
	if p.emitted == len(p.queries) {
		p.finish()
	}
	return res, true
}

func (p *pipeline) remaining() int {
	if p.done {
		return 0
	}
	return len(p.queries) - p.emitted
}

func (p *pipeline) finish() {
	if p.done {
		return
	}
	p.done = true
	p.cancel()
	p.wg.Wait()
	p.slots = nil

	zap.S().Infow("completed search batch",
		"batch_id", p.batchID,
		"total", len(p.queries),
		"emitted", p.emitted,
		"dispatched", p.dispatched,
		"errors", p.failed,
		"abandoned", p.emitted < len(p.queries))
}
