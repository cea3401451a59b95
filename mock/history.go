package mock

import (
	"context"

	"github.com/fwojciec/rankcheck"
)

var _ rankcheck.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of rankcheck.HistoryService.
type HistoryService struct {
	AddSearchFn    func(ctx context.Context, record *rankcheck.SearchRecord) (int64, error)
	FindSearchesFn func(ctx context.Context) ([]*rankcheck.SearchRecord, error)
}

func (s *HistoryService) AddSearch(ctx context.Context, record *rankcheck.SearchRecord) (int64, error) {
	return s.AddSearchFn(ctx, record)
}

func (s *HistoryService) FindSearches(ctx context.Context) ([]*rankcheck.SearchRecord, error) {
	return s.FindSearchesFn(ctx)
}
