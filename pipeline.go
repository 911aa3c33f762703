package metasearch

// Consolidator reduces raw results from several engines to the list
// presented to the user.
type Consolidator interface {
	Consolidate(results []*Result) []*Result
}

var _ Consolidator = (*Pipeline)(nil)

// Pipeline is the default Consolidator. It deduplicates results, drops
// blocked domains, classifies the rest and applies diversity selection.
//
// A Pipeline performs no I/O and keeps no state between calls; the only
// non-determinism comes from the Selector's Chooser.
type Pipeline struct {
	Blocklist  DomainSet
	Classifier *Classifier
	Selector   *Selector
	Extractor  DomainExtractor
}

// NewPipeline creates a Pipeline using the default blocklist and
// classification cascade.
func NewPipeline(x DomainExtractor, c Chooser) *Pipeline {
	return &Pipeline{
		Blocklist:  DefaultBlocklist,
		Classifier: NewClassifier(x),
		Selector:   NewSelector(x, c),
		Extractor:  x,
	}
}

// Consolidate returns the selected results, ordered by category.
// Bad records never abort consolidation: nil entries are skipped and
// results whose domain cannot be extracted are kept and classified as
// unmatched.
func (p *Pipeline) Consolidate(results []*Result) []*Result {
	deduplicated := Deduplicate(results)
	usable := FilterBlocked(deduplicated, p.Blocklist, p.Extractor)
	classified := p.Classifier.Classify(usable)
	return p.Selector.Select(GroupByCategory(classified))
}
