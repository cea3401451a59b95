package sqlite

import (
	"fmt"
	"time"
)

// timeLayout keeps sub-second precision so stored timestamps round-trip exactly.
const timeLayout = time.RFC3339Nano

// formatTime formats a timestamp for storage in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseTime(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
