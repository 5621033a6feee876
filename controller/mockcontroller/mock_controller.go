package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/Nunojmeira/espn-api/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) TeamWatchlist(ctx context.Context, teamID, size int) ([]model.Player, error) {
	args := c.Called(ctx, teamID, size)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) WatchlistPlayers(ctx context.Context, limit, offset int, seasons []int) ([]model.Player, error) {
	args := c.Called(ctx, limit, offset, seasons)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) League(ctx context.Context) (*model.League, error) {
	args := c.Called(ctx)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) LivePlusMinus(ctx context.Context, playerName string) (float64, bool) {
	args := c.Called(ctx, playerName)
	return args.Get(0).(float64), args.Bool(1)
}

func (c *C) RefreshProSchedule(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicScheduleRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
