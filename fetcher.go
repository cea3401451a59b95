package rankcheck

import "context"

// Fetcher retrieves a search-engine result page.
type Fetcher interface {
	// Fetch issues a GET for ref and returns the response body as HTML.
	// Relative references are resolved against the implementation's base URL.
	// Transport failures and non-2xx responses are returned as errors.
	Fetch(ctx context.Context, ref string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
