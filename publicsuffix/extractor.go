// Package publicsuffix provides a metasearch.DomainExtractor backed by the
// Public Suffix List compiled into golang.org/x/net/publicsuffix.
package publicsuffix

import (
	"net/url"
	"strings"

	"github.com/fwojciec/metasearch"
	"golang.org/x/net/publicsuffix"
)

// Ensure Extractor implements metasearch.DomainExtractor at compile time.
var _ metasearch.DomainExtractor = (*Extractor)(nil)

// Extractor computes registrable domains (eTLD+1) of URLs.
// Host names are lowercased; no IDNA conversion is applied.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// RegistrableDomain returns the public suffix of the URL's host plus the
// label preceding it, e.g. "example.co.jp" for "https://www.example.co.jp/x".
func (e *Extractor) RegistrableDomain(rawURL string) (string, error) {
	if rawURL == "" {
		return "", metasearch.Errorf(metasearch.EDOMAIN, "empty URL")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", metasearch.Errorf(metasearch.EDOMAIN, "malformed URL %q: %v", rawURL, err)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", metasearch.Errorf(metasearch.EDOMAIN, "URL %q has no host", rawURL)
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", metasearch.Errorf(metasearch.EDOMAIN, "no registrable domain for %q: %v", host, err)
	}
	return domain, nil
}
