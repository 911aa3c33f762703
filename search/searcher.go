// Package search fans a query out to several search engine backends and
// consolidates what they return.
package search

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/metasearch"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of backends queried at once when
// Searcher.Concurrency is not set.
const DefaultConcurrency = 4

// DefaultLimits returns the per-engine caps on raw results.
func DefaultLimits() map[metasearch.Engine]int {
	return map[metasearch.Engine]int{
		metasearch.EngineDuckDuckGo: 10,
	}
}

// Searcher queries every backend concurrently and hands the combined raw
// results to the Consolidator. A failing backend does not fail the search
// as long as at least one backend succeeds.
type Searcher struct {
	Backends     []metasearch.Backend
	Consolidator metasearch.Consolidator
	RateLimiter  metasearch.RateLimiter

	// Limits caps the number of raw results kept per engine.
	// Engines missing from the map, or mapped to 0, are not capped.
	Limits map[metasearch.Engine]int

	Concurrency int
	Logger      *slog.Logger
	Progress    ProgressFunc
}

// Response is the outcome of a search.
type Response struct {
	// ID identifies the search in log output.
	ID       string
	Query    string
	Raw      int
	Results  []*metasearch.Result
	Failures map[metasearch.Engine]error
}

// ProgressEvent reports progress during a search.
type ProgressEvent struct {
	Type      ProgressType
	Engine    metasearch.Engine
	Completed int
	Total     int
	Count     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting search progress.
type ProgressFunc func(event ProgressEvent)

// backendResult holds the outcome of querying a single backend.
type backendResult struct {
	position int
	engine   metasearch.Engine
	results  []*metasearch.Result
	err      error
}

// Search queries all backends for query and returns the consolidated results.
// Returns EINVALID for an empty query and EINTERNAL if every backend failed.
func (s *Searcher) Search(ctx context.Context, query string) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, metasearch.Errorf(metasearch.EINVALID, "empty query")
	}
	if s.Consolidator == nil {
		return nil, metasearch.Errorf(metasearch.EINVALID, "consolidator required")
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	resp := &Response{
		ID:       uuid.New().String(),
		Query:    query,
		Failures: make(map[metasearch.Engine]error),
	}
	defer func(begin time.Time) {
		logger.Info("search",
			"id", resp.ID,
			"query", query,
			"backends", len(s.Backends),
			"raw", resp.Raw,
			"results", len(resp.Results),
			"failed", len(resp.Failures),
			"duration", time.Since(begin),
		)
	}(time.Now())

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(s.Backends)
	s.notify(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan backendResult, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, b := range s.Backends {
			g.Go(func() error {
				resultCh <- s.query(gctx, i, b, query)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results, then restore backend order.
	var completed, failed int
	collected := make([]backendResult, total)
	for result := range resultCh {
		completed++
		collected[result.position] = result

		if result.err != nil {
			failed++
			resp.Failures[result.engine] = result.err
			logger.Warn("backend failed", "id", resp.ID, "engine", result.engine, "err", result.err)
			s.notify(ProgressEvent{Type: ProgressFailed, Engine: result.engine, Completed: completed, Total: total, Error: result.err})
			continue
		}
		s.notify(ProgressEvent{Type: ProgressCompleted, Engine: result.engine, Completed: completed, Total: total, Count: len(result.results)})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if total > 0 && failed == total {
		return nil, metasearch.Errorf(metasearch.EINTERNAL, "all %d search backends failed", total)
	}

	var raw []*metasearch.Result
	for _, result := range collected {
		if result.err != nil {
			continue
		}
		raw = append(raw, s.truncate(result.engine, result.results)...)
	}

	resp.Raw = len(raw)
	resp.Results = s.Consolidator.Consolidate(raw)

	s.notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total, Count: len(resp.Results)})
	return resp, nil
}

// query searches a single backend, waiting for the rate limiter first if one is configured.
func (s *Searcher) query(ctx context.Context, position int, b metasearch.Backend, query string) backendResult {
	result := backendResult{position: position, engine: b.Engine()}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, string(result.engine)); err != nil {
			result.err = err
			return result
		}
	}

	result.results, result.err = b.Search(ctx, query)
	return result
}

func (s *Searcher) truncate(engine metasearch.Engine, results []*metasearch.Result) []*metasearch.Result {
	if limit := s.Limits[engine]; limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}

func (s *Searcher) notify(event ProgressEvent) {
	if s.Progress != nil {
		s.Progress(event)
	}
}
