package rankcheck

import "context"

// SearchQuery is a single rank lookup.
type SearchQuery struct {
	Keywords  string `json:"keywords"`
	TargetURL string `json:"targetUrl"`
}

// Validate returns an error if the query contains invalid fields.
func (q *SearchQuery) Validate() error {
	if q.Keywords == "" || q.TargetURL == "" {
		return Errorf(EINVALID, "Keywords and target URL must be provided.")
	}
	return nil
}

// SearchResult is the outcome of a recorded lookup.
// Positions is empty when the target was not found; Record is always set.
type SearchResult struct {
	Record    *SearchRecord
	Positions []string
}

// Found reports whether the target appeared at least once.
func (r *SearchResult) Found() bool {
	return len(r.Positions) > 0
}

// SearchService looks up target URL positions and keeps the search history.
type SearchService interface {
	// FindURLPositions fetches results for keywords and returns the 1-based
	// positions of targetURL as strings. It does not record history.
	// Returns EINVALID for empty input, EFETCH if the page cannot be
	// retrieved and EDATA if it cannot be parsed.
	FindURLPositions(ctx context.Context, keywords, targetURL string) ([]string, error)

	// SaveSearch records a search in the history.
	SaveSearch(ctx context.Context, record *SearchRecord) error

	// History returns all recorded searches in insertion order.
	History(ctx context.Context) ([]*SearchRecord, error)

	// Search performs a lookup and records it, whether or not the target
	// was found. The record is saved before the result is returned.
	Search(ctx context.Context, query SearchQuery) (*SearchResult, error)
}
