package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rankcheck"
)

// Ensure LoggingHistoryService implements rankcheck.HistoryService.
var _ rankcheck.HistoryService = (*LoggingHistoryService)(nil)

// LoggingHistoryService wraps a HistoryService with debug logging.
type LoggingHistoryService struct {
	next   rankcheck.HistoryService
	logger *slog.Logger
}

// NewLoggingHistoryService creates a new LoggingHistoryService.
func NewLoggingHistoryService(next rankcheck.HistoryService, logger *slog.Logger) *LoggingHistoryService {
	return &LoggingHistoryService{next: next, logger: logger}
}

// AddSearch delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) AddSearch(ctx context.Context, record *rankcheck.SearchRecord) (seq int64, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("add search",
			"id", record.ID,
			"seq", seq,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.AddSearch(ctx, record)
}

// FindSearches delegates to the wrapped service and logs the operation.
func (s *LoggingHistoryService) FindSearches(ctx context.Context) (records []*rankcheck.SearchRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find searches",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSearches(ctx)
}
