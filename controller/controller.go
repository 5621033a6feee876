package controller

import (
	"context"
	"sync"
	"time"

	"github.com/Nunojmeira/espn-api/espn"
	"github.com/Nunojmeira/espn-api/model"
	"github.com/Nunojmeira/espn-api/watchlist"
	"github.com/itbasis/go-clock"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// TeamWatchlist returns up to size players from a fantasy team's
	// watchlist. watchlist.AnyTeam disables the team filter.
	TeamWatchlist(ctx context.Context, teamID, size int) ([]model.Player, error)
	// WatchlistPlayers pages through the signed in account's watchlist. An
	// empty seasons slice tries the league year and then the next one.
	WatchlistPlayers(ctx context.Context, limit, offset int, seasons []int) ([]model.Player, error)
	League(ctx context.Context) (*model.League, error)
	LivePlusMinus(ctx context.Context, playerName string) (float64, bool)

	// Reload the pro schedule used to fill in player schedules.
	RefreshProSchedule(ctx context.Context) error
	RunPeriodicScheduleRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock     clock.Clock
	espn      espn.Client
	watchlist *watchlist.Service

	mu       sync.Mutex
	schedule model.ProSchedule
}

func New(clock clock.Clock, client espn.Client) (C, error) {
	c := &controller{
		clock:     clock,
		espn:      client,
		watchlist: watchlist.NewService(client, client.Year()),
	}
	return c, nil
}

func (c *controller) League(ctx context.Context) (*model.League, error) {
	return c.espn.FetchLeague(ctx)
}

func (c *controller) LivePlusMinus(ctx context.Context, playerName string) (float64, bool) {
	return c.espn.LivePlusMinus(ctx, playerName)
}
