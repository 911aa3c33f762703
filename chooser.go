package metasearch

import (
	"math/rand/v2"
	"sync"
)

// Chooser picks one of n equally likely candidates.
// It is the only source of randomness used by selection.
type Chooser interface {
	// Choose returns an index in [0, n). n is always positive.
	Choose(n int) int
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(n int) int

// Choose calls f(n).
func (f ChooserFunc) Choose(n int) int {
	return f(n)
}

var _ Chooser = (*RandomChooser)(nil)

// RandomChooser chooses uniformly at random from a seeded generator.
// It is safe for concurrent use by multiple goroutines.
type RandomChooser struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomChooser creates a RandomChooser. The same seed always produces
// the same sequence of choices.
func NewRandomChooser(seed uint64) *RandomChooser {
	return &RandomChooser{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Choose returns a uniformly distributed index in [0, n).
func (c *RandomChooser) Choose(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.IntN(n)
}
