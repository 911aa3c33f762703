package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/metasearch"
	msshttp "github.com/fwojciec/metasearch/http"
	"github.com/fwojciec/metasearch/publicsuffix"
	msslog "github.com/fwojciec/metasearch/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Backends replaces the engines built from flags. Used for end-to-end testing.
	Backends []metasearch.Backend
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: publicsuffix.NewExtractor(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("metasearch"),
		kong.Description("Query several search engines and consolidate their results"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'metasearch --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Verbose = cli.Verbose

	if strings.HasPrefix(kongCtx.Command(), "search") {
		backends := m.Backends
		if backends == nil {
			var fetcher metasearch.Fetcher = msshttp.NewFetcher(msshttp.WithTimeout(cli.Search.Timeout))
			if cli.Verbose {
				fetcher = msslog.NewLoggingFetcher(fetcher, deps.Logger)
			}
			if cli.Search.Retries > 0 {
				fetcher = &msshttp.RetryFetcher{
					Fetcher: fetcher,
					Delays:  retryDelays(cli.Search.Retries),
					Logger:  deps.Logger,
				}
			}
			defer fetcher.Close()

			backends, err = buildBackends(ctx, &cli.Search, fetcher, deps.Logger)
			if err != nil {
				fmt.Fprintf(stderr, "error: %s\n", metasearch.ErrorMessage(err))
				return err
			}
		}

		if cli.Verbose {
			logged := make([]metasearch.Backend, len(backends))
			for i, b := range backends {
				logged[i] = msslog.NewLoggingBackend(b, deps.Logger)
			}
			backends = logged
		}
		deps.Backends = backends
	}

	return kongCtx.Run(deps)
}

// retryDelays doubles the wait after each failed attempt, starting at 1s.
func retryDelays(n int) []time.Duration {
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = time.Second << i
	}
	return delays
}
