package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/metasearch"
)

var _ metasearch.ResultParser = (*DuckDuckGoParser)(nil)

// DuckDuckGoParser extracts results from the DuckDuckGo HTML-only page
// (html.duckduckgo.com). Ads and other non-web blocks are ignored.
type DuckDuckGoParser struct{}

// NewDuckDuckGoParser creates a new DuckDuckGoParser.
func NewDuckDuckGoParser() *DuckDuckGoParser {
	return &DuckDuckGoParser{}
}

// Parse returns the web results of the page in page order.
// Blocks without a title or with an unusable URL are skipped and do not
// count towards the rank of later results.
func (p *DuckDuckGoParser) Parse(html string) ([]*metasearch.Result, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	results := []*metasearch.Result{}
	doc.Find("div.result.web-result, div.result.results_links_deep").Each(func(_ int, item *goquery.Selection) {
		title := text(item.Find("h2.result__title a.result__a").First())
		href, ok := item.Find("a.result__url").First().Attr("href")
		if title == "" || !ok {
			return
		}

		r, err := metasearch.NewResult(title, unwrapRedirect(href, "uddg"), metasearch.EngineDuckDuckGo,
			metasearch.WithRank(len(results)+1),
			metasearch.WithAbstract(text(item.Find(".result__snippet").First())),
		)
		if err != nil && r == nil {
			return
		}
		results = append(results, r)
	})
	return results, nil
}
