package metasearch

// maxPerGroup is the number of results a collapsed group keeps: its best
// and its worst ranked member.
const maxPerGroup = 2

// Selector bounds redundancy in classified results. Within every category
// except Encyclopedia it keeps at most the best and worst ranked result
// per domain, then at most the best and worst ranked result overall.
// Encyclopedia contributes a single randomly chosen result.
type Selector struct {
	Extractor DomainExtractor
	Chooser   Chooser
}

// NewSelector creates a Selector.
func NewSelector(x DomainExtractor, c Chooser) *Selector {
	return &Selector{Extractor: x, Chooser: c}
}

// Select returns the selected results, ordered by category enumeration
// order and then by selection order within the category.
// Categories missing from grouped are treated as empty.
func (s *Selector) Select(grouped map[Category][]*Result) []*Result {
	var selected []*Result
	for _, category := range Categories {
		selected = append(selected, s.selectCategory(category, grouped[category])...)
	}
	if selected == nil {
		return []*Result{}
	}
	return selected
}

func (s *Selector) selectCategory(category Category, results []*Result) []*Result {
	if category == CategoryEncyclopedia {
		if pick := s.pickOne(results); pick != nil {
			return []*Result{pick}
		}
		return nil
	}

	var perDomain []*Result
	for _, group := range GroupByDomain(results, s.Extractor) {
		perDomain = append(perDomain, s.Collapse(group)...)
	}
	return s.Collapse(perDomain)
}

// Collapse reduces results to its best and worst ranked members.
// Groups of two or fewer are returned unchanged. Ties on either side are
// broken by the Chooser, and the chosen best result is never also chosen
// as the worst.
func (s *Selector) Collapse(results []*Result) []*Result {
	if len(results) <= maxPerGroup {
		out := make([]*Result, len(results))
		copy(out, results)
		return out
	}

	best := s.pickOne(PickHighestRanked(results))
	rest := without(results, best)
	worst := s.pickOne(PickLowestRanked(rest))
	if worst == nil {
		return []*Result{best}
	}
	return []*Result{best, worst}
}

func (s *Selector) pickOne(results []*Result) *Result {
	if len(results) == 0 {
		return nil
	}
	return results[s.Chooser.Choose(len(results))]
}

// without returns results minus the first occurrence of target.
func without(results []*Result, target *Result) []*Result {
	out := make([]*Result, 0, len(results))
	removed := false
	for _, r := range results {
		if !removed && r == target {
			removed = true
			continue
		}
		out = append(out, r)
	}
	return out
}

// PickHighestRanked returns every result sharing the numerically smallest
// HighestRank.
func PickHighestRanked(results []*Result) []*Result {
	if len(results) == 0 {
		return []*Result{}
	}
	best := results[0].HighestRank()
	for _, r := range results[1:] {
		best = min(best, r.HighestRank())
	}
	var picked []*Result
	for _, r := range results {
		if r.HighestRank() == best {
			picked = append(picked, r)
		}
	}
	return picked
}

// PickLowestRanked returns every result sharing the numerically largest
// LowestRank.
func PickLowestRanked(results []*Result) []*Result {
	if len(results) == 0 {
		return []*Result{}
	}
	worst := results[0].LowestRank()
	for _, r := range results[1:] {
		worst = max(worst, r.LowestRank())
	}
	var picked []*Result
	for _, r := range results {
		if r.LowestRank() == worst {
			picked = append(picked, r)
		}
	}
	return picked
}

// GroupByDomain groups results by registrable domain. Groups appear in the
// order their domain was first seen and keep input order. Results whose
// domain cannot be extracted share a single group.
func GroupByDomain(results []*Result, x DomainExtractor) [][]*Result {
	index := make(map[string]int)
	var groups [][]*Result
	for _, r := range results {
		domain, err := r.Domain(x)
		if err != nil {
			domain = ""
		}
		i, ok := index[domain]
		if !ok {
			i = len(groups)
			index[domain] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}
