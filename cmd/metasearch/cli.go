package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/metasearch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor metasearch.DomainExtractor
	Backends  []metasearch.Backend
	Verbose   bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool        `short:"v" help:"Log backend requests and consolidation to stderr"`
	Search   SearchCmd   `cmd:"" help:"Search several engines and print consolidated results"`
	Classify ClassifyCmd `cmd:"" help:"Show registrable domain and category of URLs"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       []string           `arg:"" help:"Search query"`
	Engines     []string           `short:"e" default:"duckduckgo,yahoo,google,yandex" help:"Engines to query (comma-separated)"`
	Timeout     time.Duration      `short:"t" default:"10s" help:"Request timeout per engine"`
	Concurrency int                `short:"c" default:"4" help:"Concurrent engine limit"`
	Retries     int                `default:"2" help:"Retries per failed engine request"`
	RPS         float64            `name:"rps" default:"1" help:"Requests per second per engine"`
	EngineRPS   map[string]float64 `name:"engine-rps" help:"Per-engine requests per second override (e.g. duckduckgo=0.5)"`
	Seed        uint64             `xor:"seed" help:"Seed for random tie-breaking (default: time-based)"`
	Stable      bool               `xor:"seed" help:"Derive the tie-breaking seed from the query"`
	Progress    bool               `short:"p" help:"Report per-engine progress on stderr"`
	Format      string             `short:"f" enum:"text,list" default:"text" help:"Output format (text, list)"`

	GoogleAPIKey string `name:"google-api-key" env:"METASEARCH_GOOGLE_API_KEY" help:"Google Custom Search API key"`
	GoogleCX     string `name:"google-cx" env:"METASEARCH_GOOGLE_CX" help:"Google Programmable Search Engine ID"`
	YandexUser   string `name:"yandex-user" env:"METASEARCH_YANDEX_USER" help:"Yandex XML user name"`
	YandexKey    string `name:"yandex-key" env:"METASEARCH_YANDEX_KEY" help:"Yandex XML API key"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	URLs []string `arg:"" name:"url" help:"URLs to classify"`
}
