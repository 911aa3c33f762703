package metasearch

// DomainExtractor maps a URL to its registrable domain: the public suffix
// plus the one label directly preceding it (e.g. "example.co.jp").
type DomainExtractor interface {
	// RegistrableDomain returns the registrable domain of rawURL.
	// Returns EDOMAIN if the URL is empty, malformed or has no registrable domain.
	RegistrableDomain(rawURL string) (string, error)
}

// DomainSet is an immutable set of registrable domains.
type DomainSet struct {
	domains map[string]struct{}
}

// NewDomainSet creates a DomainSet holding domains. Duplicates are ignored.
func NewDomainSet(domains ...string) DomainSet {
	s := DomainSet{domains: make(map[string]struct{}, len(domains))}
	for _, d := range domains {
		s.domains[d] = struct{}{}
	}
	return s
}

// Contains reports whether domain is in the set. Matching is exact and case-sensitive.
func (s DomainSet) Contains(domain string) bool {
	_, ok := s.domains[domain]
	return ok
}

// Len returns the number of distinct domains in the set.
func (s DomainSet) Len() int {
	return len(s.domains)
}

// matchesDomain reports whether the registrable domain of r is in s.
// A result whose domain cannot be extracted never matches.
func matchesDomain(r *Result, s DomainSet, x DomainExtractor) bool {
	domain, err := r.Domain(x)
	if err != nil {
		return false
	}
	return s.Contains(domain)
}
