package metasearch

// Stage is one step of the classification cascade: results whose
// registrable domain is in Domains are assigned Category.
type Stage struct {
	Category Category
	Domains  DomainSet
}

// DefaultStages returns the classification cascade in priority order.
// Results left unmatched fall through to CategoryPortalsOrBlogs.
func DefaultStages() []Stage {
	return []Stage{
		{Category: CategoryEncyclopedia, Domains: EncyclopediaDomains},
		{Category: CategoryFamousNewsAgency, Domains: FamousNewsAgencyDomains},
		{Category: CategoryOnlineNewsAgency, Domains: OnlineNewsAgencyDomains},
	}
}

// Classifier assigns every result exactly one category by running it
// through an ordered cascade of domain allowlists.
type Classifier struct {
	// Stages are evaluated in order; a result is claimed by the first
	// stage it matches and is not offered to later stages.
	Stages []Stage

	// Fallback is assigned to results no stage matched.
	Fallback Category

	Extractor DomainExtractor
}

// NewClassifier returns a Classifier running DefaultStages with
// CategoryPortalsOrBlogs as fallback.
func NewClassifier(x DomainExtractor) *Classifier {
	return &Classifier{
		Stages:    DefaultStages(),
		Fallback:  CategoryPortalsOrBlogs,
		Extractor: x,
	}
}

// Classify tags each result with its category.
// Results whose domain cannot be extracted match no stage and receive the
// fallback category. Input order is preserved within each category.
func (c *Classifier) Classify(results []*Result) []Classified {
	classified := make([]Classified, 0, len(results))
	remaining := results
	for _, stage := range c.Stages {
		var matched []*Result
		matched, remaining = Partition(remaining, stage.Domains, c.Extractor)
		for _, r := range matched {
			classified = append(classified, Classified{Category: stage.Category, Result: r})
		}
	}
	for _, r := range remaining {
		classified = append(classified, Classified{Category: c.Fallback, Result: r})
	}
	return classified
}

// CategoryOf returns the category a single result would be classified into.
func (c *Classifier) CategoryOf(r *Result) Category {
	domain, err := r.Domain(c.Extractor)
	if err != nil {
		return c.Fallback
	}
	return c.CategoryOfDomain(domain)
}

// CategoryOfDomain returns the category of the first stage listing domain,
// or the fallback.
func (c *Classifier) CategoryOfDomain(domain string) Category {
	for _, stage := range c.Stages {
		if stage.Domains.Contains(domain) {
			return stage.Category
		}
	}
	return c.Fallback
}

// Partition splits results into those whose registrable domain is in
// domains and the rest. Both returned slices are new; results keep their
// relative order.
func Partition(results []*Result, domains DomainSet, x DomainExtractor) (matched, rest []*Result) {
	matched = []*Result{}
	rest = []*Result{}
	for _, r := range results {
		if matchesDomain(r, domains, x) {
			matched = append(matched, r)
		} else {
			rest = append(rest, r)
		}
	}
	return matched, rest
}

// FilterBlocked drops results whose registrable domain is in blocked.
// Results whose domain cannot be extracted are kept.
func FilterBlocked(results []*Result, blocked DomainSet, x DomainExtractor) []*Result {
	_, kept := Partition(results, blocked, x)
	return kept
}
