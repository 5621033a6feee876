package mockespn

import (
	"context"

	"github.com/Nunojmeira/espn-api/espn"
	"github.com/Nunojmeira/espn-api/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) FetchPrimaryWatchlistView(ctx context.Context) ([]byte, error) {
	args := c.Called(ctx)
	return body(args.Get(0)), args.Error(1)
}

func (c *Client) FetchLegacyWatchlistView(ctx context.Context, teamID, size int) ([]byte, error) {
	args := c.Called(ctx, teamID, size)
	return body(args.Get(0)), args.Error(1)
}

func (c *Client) FetchWatchlistPage(ctx context.Context, seasonID, limit, offset int) ([]byte, error) {
	args := c.Called(ctx, seasonID, limit, offset)
	return body(args.Get(0)), args.Error(1)
}

func (c *Client) LeagueGet(ctx context.Context, req espn.Request) ([]byte, error) {
	args := c.Called(ctx, req)
	return body(args.Get(0)), args.Error(1)
}

func (c *Client) FetchLeague(ctx context.Context) (*model.League, error) {
	args := c.Called(ctx)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *Client) FetchProSchedule(ctx context.Context) (model.ProSchedule, error) {
	args := c.Called(ctx)

	var s model.ProSchedule
	if args.Get(0) != nil {
		s = args.Get(0).(model.ProSchedule)
	}

	return s, args.Error(1)
}

func (c *Client) LivePlusMinus(ctx context.Context, playerName string) (float64, bool) {
	args := c.Called(ctx, playerName)
	return args.Get(0).(float64), args.Bool(1)
}

func (c *Client) Year() int {
	args := c.Called()
	return args.Int(0)
}

func body(v any) []byte {
	switch b := v.(type) {
	case []byte:
		return b
	case string:
		return []byte(b)
	default:
		return nil
	}
}
