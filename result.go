package metasearch

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Rank bounds. Rank 1 is the best position a search engine can report.
const (
	HighestRank = 1
	LowestRank  = 100
	DefaultRank = LowestRank
)

// urlPattern matches the URLs a Result accepts.
var urlPattern = regexp.MustCompile(`^https?://[\pL\pN_!?/+\-~:;.,*&@#$%=()'\[\]]+$`)

// Result is a single search result, possibly merged from several engines.
//
// A Result remembers every engine it was retrieved from and the best and
// worst rank any of them reported. Fields are only changed through
// AddEngine, UpdateRank, SetAbstract and Merge so that the rank bounds
// stay consistent.
type Result struct {
	title    string
	url      string
	engines  []Engine
	highest  int
	lowest   int
	ranked   bool
	abstract string
}

// ResultOption configures a Result at construction.
type ResultOption func(*resultConfig)

type resultConfig struct {
	rank     int
	hasRank  bool
	abstract string
}

// WithRank sets the initial rank of the result.
func WithRank(rank int) ResultOption {
	return func(c *resultConfig) {
		c.rank = rank
		c.hasRank = true
	}
}

// WithAbstract sets the snippet shown below the result.
func WithAbstract(abstract string) ResultOption {
	return func(c *resultConfig) {
		c.abstract = abstract
	}
}

// NewResult creates a Result retrieved from engine.
//
// Returns EINVALIDURL and a nil Result if rawURL is malformed. An unknown
// engine or an out-of-range rank does not prevent construction: the
// Result is returned together with an EUNKNOWNENGINE or EINVALIDRANK
// error, without the engine or rank. Callers must check both values.
func NewResult(title, rawURL string, engine Engine, opts ...ResultOption) (*Result, error) {
	cfg := &resultConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	u, err := normalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	r := &Result{
		title:    strings.ReplaceAll(title, "\n", ""),
		url:      u,
		highest:  DefaultRank,
		lowest:   DefaultRank,
		abstract: cfg.abstract,
	}

	var errs []error
	if err := r.AddEngine(engine); err != nil {
		errs = append(errs, err)
	}
	if cfg.hasRank {
		if err := r.UpdateRank(cfg.rank); err != nil {
			errs = append(errs, err)
		}
	}
	return r, errors.Join(errs...)
}

// normalizeURL validates rawURL and strips the trailing slash of URLs
// pointing at an HTML file.
func normalizeURL(rawURL string) (string, error) {
	if !urlPattern.MatchString(rawURL) {
		return "", Errorf(EINVALIDURL, "malformed URL %q", rawURL)
	}
	if strings.HasSuffix(rawURL, ".html/") {
		return strings.TrimSuffix(rawURL, "/"), nil
	}
	return rawURL, nil
}

// Title returns the page title.
func (r *Result) Title() string { return r.title }

// URL returns the page URL.
func (r *Result) URL() string { return r.url }

// Abstract returns the snippet, or an empty string if none was set.
func (r *Result) Abstract() string { return r.abstract }

// SetAbstract replaces the snippet.
func (r *Result) SetAbstract(abstract string) { r.abstract = abstract }

// HighestRank returns the best rank reported for the result.
// Returns DefaultRank if no rank was accepted yet.
func (r *Result) HighestRank() int { return r.highest }

// LowestRank returns the worst rank reported for the result.
// Returns DefaultRank if no rank was accepted yet.
func (r *Result) LowestRank() int { return r.lowest }

// Ranked reports whether any rank has been accepted.
func (r *Result) Ranked() bool { return r.ranked }

// Engines returns the engines the result was retrieved from, in the
// order they were added.
func (r *Result) Engines() []Engine {
	engines := make([]Engine, len(r.engines))
	copy(engines, r.engines)
	return engines
}

// HasEngine reports whether the result was retrieved from engine.
func (r *Result) HasEngine(engine Engine) bool {
	for _, e := range r.engines {
		if e == engine {
			return true
		}
	}
	return false
}

// AddEngine records engine as a source of the result.
// Returns EUNKNOWNENGINE for an unsupported engine and EDUPLICATEENGINE
// if the engine is already recorded; the engine set is unchanged in both cases.
func (r *Result) AddEngine(engine Engine) error {
	if !engine.Valid() {
		return Errorf(EUNKNOWNENGINE, "unknown search engine %q", engine)
	}
	if r.HasEngine(engine) {
		return Errorf(EDUPLICATEENGINE, "search engine %q already registered", engine)
	}
	r.engines = append(r.engines, engine)
	return nil
}

// UpdateRank records a rank reported for the result.
//
// The first accepted rank sets both bounds. Later ranks only move a bound
// outward: a rank better than the highest replaces the highest, otherwise
// a rank worse than the lowest replaces the lowest. Ranks within the
// current bounds are accepted without effect.
// Returns EINVALIDRANK if rank is outside [HighestRank, LowestRank].
func (r *Result) UpdateRank(rank int) error {
	if rank < HighestRank || rank > LowestRank {
		return Errorf(EINVALIDRANK, "rank %d out of range [%d, %d]", rank, HighestRank, LowestRank)
	}

	switch {
	case !r.ranked:
		r.highest = rank
		r.lowest = rank
		r.ranked = true
	case rank < r.highest:
		r.highest = rank
	case rank > r.lowest:
		r.lowest = rank
	}
	return nil
}

// Merge folds other into r: other's engines are added to r and both of
// other's rank bounds are fed through UpdateRank.
// Engines already present on r are skipped.
func (r *Result) Merge(other *Result) {
	for _, e := range other.engines {
		_ = r.AddEngine(e)
	}
	_ = r.UpdateRank(other.highest)
	_ = r.UpdateRank(other.lowest)
}

// Domain returns the registrable domain of the result URL.
func (r *Result) Domain(x DomainExtractor) (string, error) {
	return x.RegistrableDomain(r.url)
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	c := *r
	c.engines = r.Engines()
	return &c
}

// Equal reports whether r and other have the same title, URL, engine set
// and rank bounds. Engine order is ignored.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.title != other.title || r.url != other.url {
		return false
	}
	if r.highest != other.highest || r.lowest != other.lowest {
		return false
	}
	if len(r.engines) != len(other.engines) {
		return false
	}
	for _, e := range r.engines {
		if !other.HasEngine(e) {
			return false
		}
	}
	return true
}

// String returns a one-line description used in logs and debug output.
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString("[Title] ")
	b.WriteString(r.title)
	b.WriteString(" [URL] ")
	b.WriteString(r.url)
	b.WriteString(" [Engine] ")
	for i, e := range r.engines {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(e))
	}
	b.WriteString(" [HRank] ")
	b.WriteString(strconv.Itoa(r.highest))
	b.WriteString(" [LRank] ")
	b.WriteString(strconv.Itoa(r.lowest))
	return b.String()
}
