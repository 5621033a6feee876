package espn

import (
	"context"
	"fmt"

	"github.com/Nunojmeira/espn-api/watchlist"
	"github.com/tidwall/gjson"
)

const (
	ViewPlayerWatchlist = "player_wl"
	ViewLegacyWatchlist = "mWatchlist"
	ViewPlayerInfo      = "kona_player_info"
)

type filterValue[T any] struct {
	Value T `json:"value"`
}

type playersFilter struct {
	FilterTeamIDs   *filterValue[[]int] `json:"filterTeamIds,omitempty"`
	FilterWatchList *filterValue[bool]  `json:"filterWatchList,omitempty"`
	Limit           int                 `json:"limit,omitempty"`
	Offset          *int                `json:"offset,omitempty"`
}

type fantasyFilter struct {
	Players playersFilter `json:"players"`
}

func (c *client) FetchPrimaryWatchlistView(ctx context.Context) ([]byte, error) {
	return c.LeagueGet(ctx, Request{Views: []string{ViewPlayerWatchlist}})
}

// FetchLegacyWatchlistView reads the mWatchlist view, filtered to teamID
// unless it is watchlist.AnyTeam.
func (c *client) FetchLegacyWatchlistView(ctx context.Context, teamID, size int) ([]byte, error) {
	filter := fantasyFilter{
		Players: playersFilter{
			Limit: size,
		},
	}
	if teamID != watchlist.AnyTeam {
		filter.Players.FilterTeamIDs = &filterValue[[]int]{Value: []int{teamID}}
	}
	return c.LeagueGet(ctx, Request{Views: []string{ViewLegacyWatchlist}, Filter: filter})
}

// FetchWatchlistPage reads the signed in account's watchlist. It needs the
// espn_s2 and SWID cookies and returns the "players" array of the response.
func (c *client) FetchWatchlistPage(ctx context.Context, seasonID, limit, offset int) ([]byte, error) {
	if !c.opts.hasCookies() {
		return nil, fmt.Errorf("the account watchlist needs espn_s2 and SWID: %w", ErrAccessDenied)
	}

	filter := fantasyFilter{
		Players: playersFilter{
			FilterWatchList: &filterValue[bool]{Value: true},
			Limit:           limit,
			Offset:          &offset,
		},
	}
	body, err := c.LeagueGet(ctx, Request{
		Extend: "/players",
		Views:  []string{ViewPlayerInfo},
		Filter: filter,
		Season: seasonID,
	})
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(body)
	if parsed.IsArray() {
		return []byte(parsed.Raw), nil
	}
	players := parsed.Get("players")
	if !players.IsArray() {
		return []byte("[]"), nil
	}
	return []byte(players.Raw), nil
}
