package search

import (
	"context"
	"sync"

	"github.com/fwojciec/metasearch"
	"golang.org/x/time/rate"
)

var _ metasearch.RateLimiter = (*EngineLimiter)(nil)

// EngineLimiter spaces out requests per engine using token buckets with a
// burst of 1. Every engine shares the default rate unless SetRate gives it
// its own. A rate <= 0 means unlimited.
type EngineLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rates    map[string]float64
	rps      float64
}

// NewEngineLimiter creates an EngineLimiter allowing rps requests per
// second to each engine.
func NewEngineLimiter(rps float64) *EngineLimiter {
	return &EngineLimiter{
		limiters: make(map[string]*rate.Limiter),
		rates:    make(map[string]float64),
		rps:      rps,
	}
}

// SetRate overrides the rate for the engine named key. It applies to
// requests already waiting on that engine as well.
func (l *EngineLimiter) SetRate(key string, rps float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rates[key] = rps
	if limiter, ok := l.limiters[key]; ok {
		limiter.SetLimit(limitOf(rps))
	}
}

// Rate returns the requests per second applied to the engine named key.
func (l *EngineLimiter) Rate(key string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rateLocked(key)
}

// Wait blocks until the engine named key may be queried again.
// Returns an error if the context is canceled before the wait completes.
func (l *EngineLimiter) Wait(ctx context.Context, key string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(limitOf(l.rateLocked(key)), 1)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}

func (l *EngineLimiter) rateLocked(key string) float64 {
	if rps, ok := l.rates[key]; ok {
		return rps
	}
	return l.rps
}

func limitOf(rps float64) rate.Limit {
	if rps <= 0 {
		return rate.Inf
	}
	return rate.Limit(rps)
}
