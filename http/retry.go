package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/metasearch"
)

var _ metasearch.Fetcher = (*RetryFetcher)(nil)

// DefaultRetryDelays returns the backoff delays between fetch attempts: 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

// RetryFetcher retries failed fetches of the wrapped Fetcher, waiting
// Delays[i] before attempt i+2. A nil Logger disables retry logging.
type RetryFetcher struct {
	Fetcher metasearch.Fetcher
	Delays  []time.Duration
	Logger  *slog.Logger
}

// NewRetryFetcher wraps f with DefaultRetryDelays.
func NewRetryFetcher(f metasearch.Fetcher, logger *slog.Logger) *RetryFetcher {
	return &RetryFetcher{
		Fetcher: f,
		Delays:  DefaultRetryDelays(),
		Logger:  logger,
	}
}

// Fetch returns the first successful response or the error of the last attempt.
func (r *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(r.Delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := r.Fetcher.Fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if r.Logger != nil {
			r.Logger.Debug("fetch retry", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.Delays[attempt]):
		}
	}

	return "", lastErr
}

// Close closes the wrapped Fetcher.
func (r *RetryFetcher) Close() error {
	return r.Fetcher.Close()
}
