package mock

import (
	"context"

	"github.com/fwojciec/metasearch"
)

var _ metasearch.Backend = (*Backend)(nil)

// Backend is a mock implementation of metasearch.Backend.
type Backend struct {
	EngineFn func() metasearch.Engine
	SearchFn func(ctx context.Context, query string) ([]*metasearch.Result, error)
}

func (b *Backend) Engine() metasearch.Engine {
	return b.EngineFn()
}

func (b *Backend) Search(ctx context.Context, query string) ([]*metasearch.Result, error) {
	return b.SearchFn(ctx, query)
}

var _ metasearch.ResultParser = (*ResultParser)(nil)

// ResultParser is a mock implementation of metasearch.ResultParser.
type ResultParser struct {
	ParseFn func(body string) ([]*metasearch.Result, error)
}

func (p *ResultParser) Parse(body string) ([]*metasearch.Result, error) {
	return p.ParseFn(body)
}

var _ metasearch.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of metasearch.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, key string) error
}

func (l *RateLimiter) Wait(ctx context.Context, key string) error {
	return l.WaitFn(ctx, key)
}
