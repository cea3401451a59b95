package mock

import "github.com/fwojciec/rankcheck"

var _ rankcheck.ResultExtractor = (*ResultExtractor)(nil)

// ResultExtractor is a mock implementation of rankcheck.ResultExtractor.
type ResultExtractor struct {
	ExtractLinksFn func(html string) ([]rankcheck.ResultLink, error)
}

func (e *ResultExtractor) ExtractLinks(html string) ([]rankcheck.ResultLink, error) {
	return e.ExtractLinksFn(html)
}
