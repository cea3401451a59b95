package rankcheck

// ResultLink is a single result URL and its zero-based position in page order.
type ResultLink struct {
	URL   string
	Index int
}

// ResultExtractor turns a result page into the ordered list of result links.
type ResultExtractor interface {
	// ExtractLinks parses HTML and returns result links in document order.
	// A page without the expected result structure yields an empty slice
	// and a nil error. An error is returned only if the document cannot be
	// parsed at all.
	ExtractLinks(html string) ([]ResultLink, error)
}
