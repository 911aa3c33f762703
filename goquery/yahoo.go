package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/metasearch"
)

var _ metasearch.ResultParser = (*YahooParser)(nil)

// YahooParser extracts organic results from a search.yahoo.com page.
type YahooParser struct{}

// NewYahooParser creates a new YahooParser.
func NewYahooParser() *YahooParser {
	return &YahooParser{}
}

// Parse returns the organic results of the page in page order.
// The rank is the position of the block on the page, so a block whose
// URL is unusable is dropped but still takes up its rank.
func (p *YahooParser) Parse(html string) ([]*metasearch.Result, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	results := []*metasearch.Result{}
	doc.Find("div.algo").Each(func(i int, item *goquery.Selection) {
		link := item.Find("h3.title a").First()
		href, _ := link.Attr("href")

		r, err := metasearch.NewResult(text(link), unwrapYahooRedirect(href), metasearch.EngineYahoo,
			metasearch.WithRank(i+1),
			metasearch.WithAbstract(yahooSnippet(item)),
		)
		if err != nil && r == nil {
			return
		}
		results = append(results, r)
	})
	return results, nil
}

func yahooSnippet(item *goquery.Selection) string {
	if p := item.Find("div.compText p").First(); p.Length() > 0 {
		return text(p)
	}
	if ul := item.Find("ul.pl-15").First(); ul.Length() > 0 {
		return text(ul)
	}
	return ""
}

// unwrapYahooRedirect extracts the target of an r.search.yahoo.com link,
// which carries it as a path segment "RU=<escaped>" rather than a query
// parameter.
func unwrapYahooRedirect(href string) string {
	_, after, ok := strings.Cut(href, "/RU=")
	if !ok {
		return href
	}
	escaped, _, _ := strings.Cut(after, "/")
	target, err := url.QueryUnescape(escaped)
	if err != nil {
		return href
	}
	return target
}
