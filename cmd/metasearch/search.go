package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/metasearch"
	"github.com/fwojciec/metasearch/etree"
	"github.com/fwojciec/metasearch/google"
	"github.com/fwojciec/metasearch/goquery"
	msshttp "github.com/fwojciec/metasearch/http"
	"github.com/fwojciec/metasearch/search"
	msslog "github.com/fwojciec/metasearch/slog"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	pipeline := metasearch.NewPipeline(deps.Extractor, metasearch.NewRandomChooser(c.seed(query)))
	var consolidator metasearch.Consolidator = pipeline
	if deps.Verbose {
		consolidator = msslog.NewLoggingConsolidator(pipeline, deps.Logger)
	}

	s := &search.Searcher{
		Backends:     deps.Backends,
		Consolidator: consolidator,
		Limits:       search.DefaultLimits(),
		Concurrency:  c.Concurrency,
		Logger:       deps.Logger,
	}
	if c.RPS > 0 || len(c.EngineRPS) > 0 {
		limiter, err := c.rateLimiter()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", metasearch.ErrorMessage(err))
			return err
		}
		s.RateLimiter = limiter
	}
	if c.Progress {
		s.Progress = progressPrinter(deps.Stderr)
	}

	resp, err := s.Search(deps.Ctx, query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", metasearch.ErrorMessage(err))
		return err
	}

	switch {
	case len(resp.Results) == 0:
		fmt.Fprintln(deps.Stdout, "No results found.")
	case c.Format == "list":
		fmt.Fprint(deps.Stdout, metasearch.FormatResultList(resp.Results))
	default:
		fmt.Fprint(deps.Stdout, metasearch.FormatResults(resp.Results, pipeline.Classifier))
	}

	writeFailures(deps.Stdout, resp.Failures)
	return nil
}

// seed returns the tie-breaking seed for query.
func (c *SearchCmd) seed(query string) uint64 {
	switch {
	case c.Stable:
		return xxhash.Sum64String(query)
	case c.Seed != 0:
		return c.Seed
	default:
		return uint64(time.Now().UnixNano())
	}
}

// rateLimiter applies the default rate and the per-engine overrides.
func (c *SearchCmd) rateLimiter() (*search.EngineLimiter, error) {
	limiter := search.NewEngineLimiter(c.RPS)
	for name, rps := range c.EngineRPS {
		engine, err := engineByName(name)
		if err != nil {
			return nil, err
		}
		limiter.SetRate(string(engine), rps)
	}
	return limiter, nil
}

func writeFailures(w io.Writer, failures map[metasearch.Engine]error) {
	if len(failures) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, engine := range slices.Sorted(maps.Keys(failures)) {
		fmt.Fprintf(w, "%s failed: %s\n", engine, metasearch.ErrorMessage(failures[engine]))
	}
}

func progressPrinter(w io.Writer) search.ProgressFunc {
	return func(event search.ProgressEvent) {
		switch event.Type {
		case search.ProgressStarted:
			fmt.Fprintf(w, "Querying %d engines...\n", event.Total)
		case search.ProgressCompleted:
			fmt.Fprintf(w, "[%d/%d] %s: %d results\n", event.Completed, event.Total, event.Engine, event.Count)
		case search.ProgressFailed:
			fmt.Fprintf(w, "[%d/%d] %s: failed\n", event.Completed, event.Total, event.Engine)
		case search.ProgressFinished:
			fmt.Fprintf(w, "Selected %d results\n", event.Count)
		}
	}
}

// buildBackends creates a backend for each engine named in the flags.
// Engines without credentials are skipped.
func buildBackends(ctx context.Context, c *SearchCmd, f metasearch.Fetcher, logger *slog.Logger) ([]metasearch.Backend, error) {
	var backends []metasearch.Backend
	seen := make(map[metasearch.Engine]bool)

	for _, name := range c.Engines {
		engine, err := engineByName(name)
		if err != nil {
			return nil, err
		}
		if seen[engine] {
			continue
		}
		seen[engine] = true

		switch engine {
		case metasearch.EngineDuckDuckGo:
			backends = append(backends, msshttp.NewDuckDuckGo(f, goquery.NewDuckDuckGoParser()))
		case metasearch.EngineYahoo:
			backends = append(backends, msshttp.NewYahoo(f, goquery.NewYahooParser()))
		case metasearch.EngineYandex:
			if c.YandexUser == "" || c.YandexKey == "" {
				logger.Debug("engine skipped", "engine", engine, "reason", "missing credentials")
				continue
			}
			backends = append(backends, msshttp.NewYandex(f, etree.NewYandexParser(), c.YandexUser, c.YandexKey))
		case metasearch.EngineGoogle:
			if c.GoogleAPIKey == "" || c.GoogleCX == "" {
				logger.Debug("engine skipped", "engine", engine, "reason", "missing credentials")
				continue
			}
			client := &http.Client{
				Timeout:   c.Timeout,
				Transport: &transport.APIKey{Key: c.GoogleAPIKey},
			}
			b, err := google.NewBackend(ctx, c.GoogleAPIKey, c.GoogleCX, option.WithHTTPClient(client))
			if err != nil {
				return nil, err
			}
			backends = append(backends, b)
		default:
			return nil, metasearch.Errorf(metasearch.EINVALID, "no backend available for %s", engine)
		}
	}

	if len(backends) == 0 {
		return nil, metasearch.Errorf(metasearch.EINVALID, "no search engines enabled")
	}
	return backends, nil
}

// engineByName matches name against the supported engines, ignoring case.
func engineByName(name string) (metasearch.Engine, error) {
	name = strings.TrimSpace(name)
	for _, e := range metasearch.Engines {
		if strings.EqualFold(string(e), name) {
			return e, nil
		}
	}
	return metasearch.ParseEngine(name)
}
