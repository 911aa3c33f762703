// Package google implements metasearch.Backend on top of the Google
// Custom Search JSON API.
package google

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/metasearch"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// ResultsPerPage is the number of results requested per query.
const ResultsPerPage = 10

// Ensure Backend implements metasearch.Backend at compile time.
var _ metasearch.Backend = (*Backend)(nil)

// Backend queries a Programmable Search Engine through the Custom Search API.
type Backend struct {
	service *customsearch.Service
	cx      string
}

// NewBackend creates a Backend using apiKey and the search engine ID cx.
// Additional client options are passed through to the API client.
// Returns EINVALID if apiKey or cx is empty.
func NewBackend(ctx context.Context, apiKey, cx string, opts ...option.ClientOption) (*Backend, error) {
	if apiKey == "" {
		return nil, metasearch.Errorf(metasearch.EINVALID, "google API key required")
	}
	if cx == "" {
		return nil, metasearch.Errorf(metasearch.EINVALID, "google search engine ID required")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating custom search client: %w", err)
	}
	return &Backend{service: service, cx: cx}, nil
}

// Engine returns metasearch.EngineGoogle.
func (b *Backend) Engine() metasearch.Engine {
	return metasearch.EngineGoogle
}

// Search returns the first page of results for query. The rank of a result
// is its position in the response; items with unusable links are dropped.
func (b *Backend) Search(ctx context.Context, query string) ([]*metasearch.Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, metasearch.Errorf(metasearch.EINVALID, "empty query")
	}

	resp, err := b.service.Cse.List().
		Q(query).
		Cx(b.cx).
		Num(ResultsPerPage).
		Start(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, metasearch.Errorf(metasearch.EINTERNAL, "google custom search: %v", err)
	}

	results := make([]*metasearch.Result, 0, len(resp.Items))
	for i, item := range resp.Items {
		r, err := metasearch.NewResult(item.Title, item.Link, metasearch.EngineGoogle,
			metasearch.WithRank(i+1),
			metasearch.WithAbstract(item.Snippet),
		)
		if err != nil && r == nil {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}
