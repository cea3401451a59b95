package mock

import (
	"context"

	"github.com/fwojciec/rankcheck"
)

var _ rankcheck.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of rankcheck.SearchService.
type SearchService struct {
	FindURLPositionsFn func(ctx context.Context, keywords, targetURL string) ([]string, error)
	SaveSearchFn       func(ctx context.Context, record *rankcheck.SearchRecord) error
	HistoryFn          func(ctx context.Context) ([]*rankcheck.SearchRecord, error)
	SearchFn           func(ctx context.Context, query rankcheck.SearchQuery) (*rankcheck.SearchResult, error)
}

func (s *SearchService) FindURLPositions(ctx context.Context, keywords, targetURL string) ([]string, error) {
	return s.FindURLPositionsFn(ctx, keywords, targetURL)
}

func (s *SearchService) SaveSearch(ctx context.Context, record *rankcheck.SearchRecord) error {
	return s.SaveSearchFn(ctx, record)
}

func (s *SearchService) History(ctx context.Context) ([]*rankcheck.SearchRecord, error) {
	return s.HistoryFn(ctx)
}

func (s *SearchService) Search(ctx context.Context, query rankcheck.SearchQuery) (*rankcheck.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
