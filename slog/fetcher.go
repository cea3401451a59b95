// Package slog provides log/slog decorators for rankcheck services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rankcheck"
)

// Ensure LoggingFetcher implements rankcheck.Fetcher.
var _ rankcheck.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   rankcheck.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next rankcheck.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the reference being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, ref string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"ref", ref,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, ref)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
