package mock

import (
	"context"

	"github.com/fwojciec/rankcheck"
)

var _ rankcheck.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of rankcheck.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, ref string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, ref string) (string, error) {
	return f.FetchFn(ctx, ref)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
