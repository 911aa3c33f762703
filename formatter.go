package metasearch

import (
	"fmt"
	"strings"
)

// FormatResults formats selected results for terminal display, one block
// per result with a category heading whenever the category changes.
// The classifier decides each heading; results are printed in the given order.
func FormatResults(results []*Result, c *Classifier) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	var current Category
	for i, r := range results {
		if category := c.CategoryOf(r); category != current {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "## %s\n", category)
			current = category
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", r.Title(), r.URL())
		if r.Abstract() != "" {
			fmt.Fprintf(&b, "%s\n", r.Abstract())
		}
		fmt.Fprintf(&b, "engines: %s  rank: %d-%d\n", joinEngines(r.Engines()), r.HighestRank(), r.LowestRank())
	}
	return b.String()
}

// FormatResultList returns the one-line String form of each result,
// newline-terminated, as written to debug logs.
func FormatResultList(results []*Result) string {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}

func joinEngines(engines []Engine) string {
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}
