// Package rankcheck reports where a target URL ranks in search-engine results.
// It fetches a result page for a keyword query, extracts the ordered result
// links, computes the 1-based positions at which the target appears, and
// records every lookup in a search history.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gin/).
package rankcheck
