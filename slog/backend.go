package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/metasearch"
)

// Ensure LoggingBackend implements metasearch.Backend.
var _ metasearch.Backend = (*LoggingBackend)(nil)

// LoggingBackend wraps a Backend with debug logging.
type LoggingBackend struct {
	next   metasearch.Backend
	logger *slog.Logger
}

// NewLoggingBackend creates a new LoggingBackend.
func NewLoggingBackend(next metasearch.Backend, logger *slog.Logger) *LoggingBackend {
	return &LoggingBackend{next: next, logger: logger}
}

// Engine delegates to the wrapped backend.
func (b *LoggingBackend) Engine() metasearch.Engine {
	return b.next.Engine()
}

// Search delegates to the wrapped backend and logs the operation.
func (b *LoggingBackend) Search(ctx context.Context, query string) (results []*metasearch.Result, err error) {
	defer func(begin time.Time) {
		b.logger.Info("backend search",
			"engine", b.next.Engine(),
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Search(ctx, query)
}
