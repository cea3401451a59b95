package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rankcheck"
	"github.com/fwojciec/rankcheck/goquery"
	rankhttp "github.com/fwojciec/rankcheck/http"
	"github.com/fwojciec/rankcheck/search"
	rankslog "github.com/fwojciec/rankcheck/slog"
	"github.com/fwojciec/rankcheck/sqlite"
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
	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	HistoryService rankcheck.HistoryService
	SearchService  rankcheck.SearchService
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rankcheck"),
		kong.Description("Find where a URL ranks in search results."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rankcheck --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, kongCtx.Command(), cli.Verbose)

	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RANKCHECK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()

	fetcher := rankhttp.NewFetcher(
		rankhttp.WithBaseURL(cli.SearchURL),
		rankhttp.WithTimeout(cli.Timeout),
		rankhttp.WithUserAgent(cli.UserAgent),
	)
	defer fetcher.Close()

	m.HistoryService = rankslog.NewLoggingHistoryService(sqlite.NewHistoryService(m.DB), deps.Logger)
	m.SearchService = rankslog.NewLoggingSearchService(&search.Service{
		Fetcher:   rankslog.NewLoggingFetcher(fetcher, deps.Logger),
		Extractor: goquery.NewResultExtractor(),
		History:   m.HistoryService,
	}, deps.Logger)
	deps.Searches = m.SearchService

	return kongCtx.Run(deps)
}

// newLogger returns a text logger on w. The server logs requests at info
// level; one-shot commands only report warnings unless verbose is set.
func newLogger(w io.Writer, command string, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if command == "serve" {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
