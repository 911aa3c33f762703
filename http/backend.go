package http

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/metasearch"
)

// Result page endpoints.
const (
	DuckDuckGoURL = "https://html.duckduckgo.com/html/"
	YahooURL      = "https://search.yahoo.com/search"
	YandexURL     = "https://yandex.com/search/xml"
)

// yandexResultsPerPage is the number of documents requested from Yandex.
const yandexResultsPerPage = 10

// Ensure Backend implements metasearch.Backend at compile time.
var _ metasearch.Backend = (*Backend)(nil)

// Backend queries a search engine by fetching its result page and parsing
// it into results.
type Backend struct {
	engine  metasearch.Engine
	fetcher metasearch.Fetcher
	parser  metasearch.ResultParser
	baseURL string
	params  func(query string) url.Values
}

// BackendOption configures a Backend.
type BackendOption func(*Backend)

// WithBaseURL overrides the endpoint the backend queries.
func WithBaseURL(u string) BackendOption {
	return func(b *Backend) {
		b.baseURL = u
	}
}

// NewDuckDuckGo creates a Backend for the DuckDuckGo HTML-only page.
func NewDuckDuckGo(f metasearch.Fetcher, p metasearch.ResultParser, opts ...BackendOption) *Backend {
	return newBackend(metasearch.EngineDuckDuckGo, f, p, DuckDuckGoURL, func(query string) url.Values {
		return url.Values{"q": {query}}
	}, opts)
}

// NewYahoo creates a Backend for Yahoo web search.
func NewYahoo(f metasearch.Fetcher, p metasearch.ResultParser, opts ...BackendOption) *Backend {
	return newBackend(metasearch.EngineYahoo, f, p, YahooURL, func(query string) url.Values {
		return url.Values{"p": {query}}
	}, opts)
}

// NewYandex creates a Backend for the Yandex XML search API. user and key
// are the API credentials.
func NewYandex(f metasearch.Fetcher, p metasearch.ResultParser, user, key string, opts ...BackendOption) *Backend {
	return newBackend(metasearch.EngineYandex, f, p, YandexURL, func(query string) url.Values {
		return url.Values{
			"user":        {user},
			"key":         {key},
			"query":       {query},
			"l10n":        {"en"},
			"sortby":      {"rlv"},
			"filter":      {"none"},
			"maxpassages": {"5"},
			"groupby":     {`attr="".mode=flat.groups-on-page=` + strconv.Itoa(yandexResultsPerPage) + ".docs-in-group=1"},
		}
	}, opts)
}

func newBackend(engine metasearch.Engine, f metasearch.Fetcher, p metasearch.ResultParser, baseURL string, params func(string) url.Values, opts []BackendOption) *Backend {
	b := &Backend{
		engine:  engine,
		fetcher: f,
		parser:  p,
		baseURL: baseURL,
		params:  params,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Engine returns the engine this backend queries.
func (b *Backend) Engine() metasearch.Engine {
	return b.engine
}

// URL returns the request URL for query.
func (b *Backend) URL(query string) string {
	return b.baseURL + "?" + b.params(query).Encode()
}

// Search fetches and parses the result page for query.
// Returns EINVALID for an empty query without sending a request.
func (b *Backend) Search(ctx context.Context, query string) ([]*metasearch.Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, metasearch.Errorf(metasearch.EINVALID, "empty query")
	}

	body, err := b.fetcher.Fetch(ctx, b.URL(query))
	if err != nil {
		return nil, fmt.Errorf("fetching %s results: %w", b.engine, err)
	}

	results, err := b.parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s results: %w", b.engine, err)
	}
	return results, nil
}
