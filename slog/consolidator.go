package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/metasearch"
)

// Ensure LoggingConsolidator implements metasearch.Consolidator.
var _ metasearch.Consolidator = (*LoggingConsolidator)(nil)

// LoggingConsolidator wraps a Consolidator with debug logging. At debug
// level every surviving result is logged as well.
type LoggingConsolidator struct {
	next   metasearch.Consolidator
	logger *slog.Logger
}

// NewLoggingConsolidator creates a new LoggingConsolidator.
func NewLoggingConsolidator(next metasearch.Consolidator, logger *slog.Logger) *LoggingConsolidator {
	return &LoggingConsolidator{next: next, logger: logger}
}

// Consolidate delegates to the wrapped consolidator and logs the operation.
func (c *LoggingConsolidator) Consolidate(results []*metasearch.Result) (out []*metasearch.Result) {
	defer func(begin time.Time) {
		c.logger.Info("consolidate",
			"in", len(results),
			"out", len(out),
			"duration", time.Since(begin),
		)
		for _, r := range out {
			c.logger.Debug("result", "result", r.String())
		}
	}(time.Now())
	return c.next.Consolidate(results)
}
