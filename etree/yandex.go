// Package etree parses XML search API responses using beevik/etree.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/metasearch"
)

// Ensure YandexParser implements metasearch.ResultParser at compile time.
var _ metasearch.ResultParser = (*YandexParser)(nil)

// passageSeparator joins the passages of a Yandex document into one abstract.
const passageSeparator = "<br/>"

// YandexParser extracts results from a Yandex XML search response.
type YandexParser struct{}

// NewYandexParser creates a new YandexParser.
func NewYandexParser() *YandexParser {
	return &YandexParser{}
}

// Parse returns one result per doc element in document order.
// Returns EINTERNAL if the response reports an error and EINVALID if the
// body is not well-formed XML.
func (p *YandexParser) Parse(body string) ([]*metasearch.Result, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, metasearch.Errorf(metasearch.EINVALID, "failed to parse Yandex XML: %v", err)
	}
	if doc.Root() == nil {
		return nil, metasearch.Errorf(metasearch.EINVALID, "empty Yandex XML response")
	}

	if e := doc.FindElement("//response/error"); e != nil {
		return nil, metasearch.Errorf(metasearch.EINTERNAL, "yandex error %s: %s", e.SelectAttrValue("code", "unknown"), strings.TrimSpace(innerText(e)))
	}

	results := []*metasearch.Result{}
	for i, d := range doc.FindElements("//doc") {
		title := ""
		if t := d.SelectElement("title"); t != nil {
			title = strings.ReplaceAll(innerText(t), "  ", "")
		}
		url := ""
		if u := d.SelectElement("url"); u != nil {
			url = strings.TrimSpace(strings.ReplaceAll(u.Text(), "\n", ""))
		}

		r, err := metasearch.NewResult(title, url, metasearch.EngineYandex,
			metasearch.WithRank(i+1),
			metasearch.WithAbstract(abstract(d)),
		)
		if err != nil && r == nil {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

// abstract returns the passages of d, falling back to its headline.
func abstract(d *etree.Element) string {
	if passages := d.FindElements("passages/passage"); len(passages) > 0 {
		texts := make([]string, len(passages))
		for i, p := range passages {
			texts[i] = strings.TrimSpace(innerText(p))
		}
		return strings.Join(texts, passageSeparator)
	}
	if h := d.SelectElement("headline"); h != nil {
		return strings.TrimSpace(innerText(h))
	}
	return ""
}

// innerText concatenates the character data of e and all its descendants.
// Yandex wraps matched query words in hlword elements.
func innerText(e *etree.Element) string {
	var b strings.Builder
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			b.WriteString(innerText(t))
		}
	}
	return b.String()
}
