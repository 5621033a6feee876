package mockwatchlist

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Fetcher struct {
	mock.Mock
}

func (f *Fetcher) FetchPrimaryWatchlistView(ctx context.Context) ([]byte, error) {
	args := f.Called(ctx)
	return bytes(args.Get(0)), args.Error(1)
}

func (f *Fetcher) FetchLegacyWatchlistView(ctx context.Context, teamID, size int) ([]byte, error) {
	args := f.Called(ctx, teamID, size)
	return bytes(args.Get(0)), args.Error(1)
}

func (f *Fetcher) FetchWatchlistPage(ctx context.Context, seasonID, limit, offset int) ([]byte, error) {
	args := f.Called(ctx, seasonID, limit, offset)
	return bytes(args.Get(0)), args.Error(1)
}

// bytes accepts either a []byte or a string so tests can pass JSON literals.
func bytes(v any) []byte {
	switch b := v.(type) {
	case []byte:
		return b
	case string:
		return []byte(b)
	default:
		return nil
	}
}
