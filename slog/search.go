package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rankcheck"
)

// Ensure LoggingSearchService implements rankcheck.SearchService.
var _ rankcheck.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with logging.
// Failed operations are logged at error level with their error code.
type LoggingSearchService struct {
	next   rankcheck.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next rankcheck.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// FindURLPositions delegates to the wrapped service and logs the lookup.
func (s *LoggingSearchService) FindURLPositions(ctx context.Context, keywords, targetURL string) (positions []string, err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "find url positions",
			"keywords", keywords,
			"url", targetURL,
			"positions", rankcheck.JoinPositions(positions),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindURLPositions(ctx, keywords, targetURL)
}

// SaveSearch delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) SaveSearch(ctx context.Context, record *rankcheck.SearchRecord) (err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "save search",
			"id", record.ID,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SaveSearch(ctx, record)
}

// History delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) History(ctx context.Context) (records []*rankcheck.SearchRecord, err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "history",
			"count", len(records),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.History(ctx)
}

// Search delegates to the wrapped service and logs the outcome.
func (s *LoggingSearchService) Search(ctx context.Context, query rankcheck.SearchQuery) (result *rankcheck.SearchResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"keywords", query.Keywords,
			"url", query.TargetURL,
			"duration", time.Since(begin),
		}
		if result != nil {
			attrs = append(attrs, "found", result.Found(), "positions", rankcheck.JoinPositions(result.Positions))
		}
		s.log(ctx, err, "search", attrs...)
	}(time.Now())
	return s.next.Search(ctx, query)
}

func (s *LoggingSearchService) log(ctx context.Context, err error, msg string, attrs ...any) {
	if err != nil {
		attrs = append(attrs, "code", rankcheck.ErrorCode(err), "err", err)
		s.logger.ErrorContext(ctx, msg, attrs...)
		return
	}
	s.logger.InfoContext(ctx, msg, attrs...)
}
