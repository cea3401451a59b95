package sqlite

import (
	"context"

	"github.com/fwojciec/rankcheck"
)

// Compile-time interface verification.
var _ rankcheck.HistoryService = (*HistoryService)(nil)

// HistoryService implements rankcheck.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// AddSearch inserts a record and returns its sequence number.
// The record is stored exactly as given; ID and SearchDate are the caller's.
func (s *HistoryService) AddSearch(ctx context.Context, record *rankcheck.SearchRecord) (int64, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (id, url, keywords, positions, search_date)
		VALUES (?, ?, ?, ?, ?)
	`, record.ID, record.URL, record.Keywords, record.Positions, formatTime(record.SearchDate))
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// FindSearches returns all records in insertion order.
func (s *HistoryService) FindSearches(ctx context.Context) ([]*rankcheck.SearchRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, keywords, positions, search_date
		FROM searches
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*rankcheck.SearchRecord{}
	for rows.Next() {
		var record rankcheck.SearchRecord
		var searchDate string

		if err := rows.Scan(&record.ID, &record.URL, &record.Keywords, &record.Positions, &searchDate); err != nil {
			return nil, err
		}

		if record.SearchDate, err = parseTime(searchDate, "search_date"); err != nil {
			return nil, err
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}
