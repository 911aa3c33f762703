// Package goquery parses search engine HTML result pages.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/metasearch"
)

func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, metasearch.Errorf(metasearch.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// text returns the trimmed text of sel with runs of whitespace collapsed.
func text(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// unwrapRedirect returns the target of a click-tracking link, or href
// itself if it is not one. param names the query parameter holding the
// escaped target.
func unwrapRedirect(href, param string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get(param); target != "" {
		return target
	}
	return href
}
