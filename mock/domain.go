package mock

import "github.com/fwojciec/metasearch"

var _ metasearch.DomainExtractor = (*DomainExtractor)(nil)

// DomainExtractor is a mock implementation of metasearch.DomainExtractor.
type DomainExtractor struct {
	RegistrableDomainFn func(rawURL string) (string, error)
}

func (x *DomainExtractor) RegistrableDomain(rawURL string) (string, error) {
	return x.RegistrableDomainFn(rawURL)
}

var _ metasearch.Consolidator = (*Consolidator)(nil)

// Consolidator is a mock implementation of metasearch.Consolidator.
type Consolidator struct {
	ConsolidateFn func(results []*metasearch.Result) []*metasearch.Result
}

func (c *Consolidator) Consolidate(results []*metasearch.Result) []*metasearch.Result {
	return c.ConsolidateFn(results)
}
