package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/rankcheck"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Searches rankcheck.SearchService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB        string        `name:"db" env:"RANKCHECK_DB" default:":memory:" help:"History database path (\":memory:\" keeps history in memory)"`
	SearchURL string        `name:"search-url" env:"RANKCHECK_SEARCH_URL" default:"https://www.google.co.uk/search" help:"Search engine endpoint"`
	UserAgent string        `name:"user-agent" env:"RANKCHECK_USER_AGENT" help:"User-Agent sent to the search engine"`
	Timeout   time.Duration `env:"RANKCHECK_TIMEOUT" default:"10s" help:"Search request timeout"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API"`
	Find    FindCmd    `cmd:"" help:"Find the positions of a URL for keywords and record the search"`
	History HistoryCmd `cmd:"" help:"List recorded searches"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string   `env:"RANKCHECK_ADDR" default:":5000" help:"Listen address"`
	AllowOrigin []string `name:"allow-origin" env:"RANKCHECK_ALLOW_ORIGIN" default:"http://localhost:8080" help:"Origins allowed by CORS (repeatable)"`
	Rate        float64  `env:"RANKCHECK_RATE" default:"5" help:"Requests per second per client (0 disables)"`
	Burst       int      `env:"RANKCHECK_BURST" default:"10" help:"Rate limit burst size"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Keywords string `arg:"" help:"Search keywords"`
	URL      string `arg:"" help:"Target URL (matched case-insensitively as a substring)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct{}
