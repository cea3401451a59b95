package rankcheck

import (
	"context"
	"time"
)

// SearchRecord is the persisted history entry for one lookup.
type SearchRecord struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Keywords   string    `json:"keywords"`
	Positions  string    `json:"positions"`
	SearchDate time.Time `json:"searchDate"`
}

// Validate returns an error if the record contains invalid fields.
func (r *SearchRecord) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "search record ID required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "search record URL required")
	}
	if r.Keywords == "" {
		return Errorf(EINVALID, "search record keywords required")
	}
	return nil
}

// PositionList returns the record's positions as the list they were joined from.
func (r *SearchRecord) PositionList() []string {
	return SplitPositions(r.Positions)
}

// HistoryService represents a service for recording searches.
// Records are append-only: there is no update or delete.
type HistoryService interface {
	// AddSearch persists a record and returns its sequence number.
	// Sequence numbers increase with insertion order.
	AddSearch(ctx context.Context, record *SearchRecord) (int64, error)

	// FindSearches returns every record in insertion order.
	FindSearches(ctx context.Context) ([]*SearchRecord, error)
}
