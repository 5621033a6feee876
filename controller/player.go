package controller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Nunojmeira/espn-api/espn"
	"github.com/Nunojmeira/espn-api/model"
	"github.com/Nunojmeira/espn-api/watchlist"
)

func (c *controller) TeamWatchlist(ctx context.Context, teamID, size int) ([]model.Player, error) {
	entries, err := c.watchlist.TeamWatchlist(ctx, teamID, size)
	if err != nil {
		return nil, err
	}
	return c.toPlayers(ctx, entries), nil
}

func (c *controller) WatchlistPlayers(ctx context.Context, limit, offset int, seasons []int) ([]model.Player, error) {
	entries, err := c.watchlist.WatchlistPlayers(ctx, limit, offset, seasons)
	if err != nil {
		return nil, err
	}
	return c.toPlayers(ctx, entries), nil
}

// toPlayers converts resolved entries, skipping any that ESPN sent in a shape
// that can't be decoded.
func (c *controller) toPlayers(ctx context.Context, entries []watchlist.Entry) []model.Player {
	players := make([]model.Player, 0, len(entries))
	if len(entries) == 0 {
		return players
	}

	schedule := c.proSchedule(ctx)
	for _, e := range entries {
		p, err := espn.PlayerFromEntry(e, c.espn.Year(), schedule)
		if err != nil {
			slog.Warn("skipping watchlist entry", slog.Int("player_id", e.PlayerID), slog.Any("error", err))
			continue
		}
		players = append(players, *p)
	}
	return players
}

// proSchedule returns the cached pro schedule, loading it the first time.
// A failed load is logged and nil returned so players are built without
// schedules, the next call tries again.
func (c *controller) proSchedule(ctx context.Context) model.ProSchedule {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.schedule == nil {
		if err := c.loadProSchedule(ctx); err != nil {
			slog.Warn("error loading pro schedule", slog.Any("error", err))
		}
	}
	return c.schedule
}

func (c *controller) RefreshProSchedule(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadProSchedule(ctx)
}

// loadProSchedule must be called with c.mu held.
func (c *controller) loadProSchedule(ctx context.Context) error {
	start := c.clock.Now()

	schedule, err := c.espn.FetchProSchedule(ctx)
	if err != nil {
		return fmt.Errorf("error fetching pro schedule: %w", err)
	}
	c.schedule = schedule

	slog.Info("loaded pro schedule", slog.Int("teams", len(schedule)), slog.Duration("took", c.clock.Since(start)))
	return nil
}

func (c *controller) RunPeriodicScheduleRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer ticker.Stop()
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := c.RefreshProSchedule(ctx); err != nil {
				slog.Error("error refreshing pro schedule", slog.Any("error", err))
			}
			cancel()
		}
	}
}
