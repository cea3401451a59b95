// Package search looks up the rank of a target URL in search results and
// records each lookup in the search history.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/rankcheck"
	"github.com/google/uuid"
)

// ResultCount is the number of results requested per lookup.
const ResultCount = 100

// Ensure Service implements rankcheck.SearchService at compile time.
var _ rankcheck.SearchService = (*Service)(nil)

// Service composes fetching, extraction, matching and history recording.
type Service struct {
	Fetcher   rankcheck.Fetcher
	Extractor rankcheck.ResultExtractor
	History   rankcheck.HistoryService

	// Now returns the record timestamp. Defaults to time.Now in UTC.
	Now func() time.Time

	// NewID returns a record identifier. Defaults to a random UUID.
	NewID func() string
}

// SearchPath returns the request reference for keywords. Keywords are
// embedded as given; the fetcher only encodes characters that are illegal
// in a URL, so '&', '#' and '+' keep their query-string meaning.
func SearchPath(keywords string) string {
	return fmt.Sprintf("search?num=%d&q=%s", ResultCount, keywords)
}

// FindURLPositions fetches the result page for keywords and returns the
// positions at which targetURL appears. Exactly one fetch is issued.
func (s *Service) FindURLPositions(ctx context.Context, keywords, targetURL string) ([]string, error) {
	query := rankcheck.SearchQuery{Keywords: keywords, TargetURL: targetURL}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, SearchPath(keywords))
	if err != nil {
		return nil, rankcheck.Errorf(rankcheck.EFETCH, "fetching results for %q: %v", keywords, err)
	}

	links, err := s.Extractor.ExtractLinks(html)
	if err != nil {
		return nil, rankcheck.Errorf(rankcheck.EDATA, "extracting results: %s", errorText(err))
	}

	return rankcheck.FormatPositions(rankcheck.MatchPositions(links, targetURL)), nil
}

// SaveSearch records a search in the history.
func (s *Service) SaveSearch(ctx context.Context, record *rankcheck.SearchRecord) error {
	if _, err := s.History.AddSearch(ctx, record); err != nil {
		return storageError("saving search", err)
	}
	return nil
}

// History returns all recorded searches.
func (s *Service) History(ctx context.Context) ([]*rankcheck.SearchRecord, error) {
	records, err := s.History.FindSearches(ctx)
	if err != nil {
		return nil, storageError("loading history", err)
	}
	return records, nil
}

// Search finds the target's positions and records the lookup. A record is
// saved for every lookup that reaches this point, including ones where the
// target was not found. If the record cannot be saved, no result is returned.
func (s *Service) Search(ctx context.Context, query rankcheck.SearchQuery) (*rankcheck.SearchResult, error) {
	positions, err := s.FindURLPositions(ctx, query.Keywords, query.TargetURL)
	if err != nil {
		return nil, err
	}

	record := &rankcheck.SearchRecord{
		ID:         s.newID(),
		URL:        query.TargetURL,
		Keywords:   query.Keywords,
		Positions:  rankcheck.JoinPositions(positions),
		SearchDate: s.now(),
	}
	if err := s.SaveSearch(ctx, record); err != nil {
		return nil, err
	}

	return &rankcheck.SearchResult{Record: record, Positions: positions}, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// storageError tags err as ESTORAGE, keeping the message of an application error.
func storageError(op string, err error) error {
	return rankcheck.Errorf(rankcheck.ESTORAGE, "%s: %s", op, errorText(err))
}

func errorText(err error) string {
	if rankcheck.ErrorCode(err) == rankcheck.EINTERNAL {
		return err.Error()
	}
	return rankcheck.ErrorMessage(err)
}
