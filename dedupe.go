package metasearch

import (
	"cmp"
	"slices"
)

// Deduplicate merges results that refer to the same page.
//
// Results are sorted by URL, then title, so that duplicates become
// adjacent. Two neighbours are duplicates if their URLs match or their
// titles match; the later one is merged into the earlier one and dropped.
// The input is cloned first, so the caller's results are never modified.
// Callers must not rely on the order of the returned slice.
func Deduplicate(results []*Result) []*Result {
	sorted := make([]*Result, 0, len(results))
	for _, r := range results {
		if r != nil {
			sorted = append(sorted, r.Clone())
		}
	}
	slices.SortStableFunc(sorted, func(a, b *Result) int {
		if c := cmp.Compare(a.url, b.url); c != 0 {
			return c
		}
		return cmp.Compare(a.title, b.title)
	})

	// After a merge the next neighbour slides into i and is compared
	// against the merged record too, so no adjacent duplicates remain.
	for i := len(sorted) - 1; i > 0; i-- {
		for i < len(sorted) && duplicates(sorted[i-1], sorted[i]) {
			sorted[i-1].Merge(sorted[i])
			sorted = slices.Delete(sorted, i, i+1)
		}
	}
	return sorted
}

func duplicates(a, b *Result) bool {
	return a.url == b.url || a.title == b.title
}
