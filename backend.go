package metasearch

import "context"

// Backend retrieves results for a query from a single search engine.
type Backend interface {
	// Engine returns the engine the backend queries.
	Engine() Engine

	// Search returns the engine's results for query, ranked from 1.
	// The context controls timeout and cancellation.
	Search(ctx context.Context, query string) ([]*Result, error)
}

// Fetcher retrieves raw response bodies from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// ResultParser extracts results from an engine's raw response body.
type ResultParser interface {
	// Parse returns the results found in body in page order.
	// Entries that cannot be turned into a valid Result are skipped.
	Parse(body string) ([]*Result, error)
}

// RateLimiter provides keyed rate limiting.
type RateLimiter interface {
	// Wait blocks until the rate limit allows a request for key.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, key string) error
}
