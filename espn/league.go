package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Nunojmeira/espn-api/model"
)

type espnLeague struct {
	ID              int `json:"id"`
	SeasonID        int `json:"seasonId"`
	ScoringPeriodID int `json:"scoringPeriodId"`
	Settings        struct {
		Name string `json:"name"`
	} `json:"settings"`
	Status struct {
		CurrentMatchupPeriod int `json:"currentMatchupPeriod"`
		FinalScoringPeriod   int `json:"finalScoringPeriod"`
	} `json:"status"`
	Teams []espnTeam `json:"teams"`
}

type espnTeam struct {
	ID       int      `json:"id"`
	Abbrev   string   `json:"abbrev"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Nickname string   `json:"nickname"`
	Owners   []string `json:"owners"`
}

func (t *espnTeam) toTeam() model.Team {
	name := t.Name
	if name == "" {
		// Older seasons split the name in two.
		name = strings.TrimSpace(t.Location + " " + t.Nickname)
	}
	return model.Team{
		ID:     t.ID,
		Abbrev: t.Abbrev,
		Name:   name,
		Owners: t.Owners,
	}
}

func (c *client) FetchLeague(ctx context.Context) (*model.League, error) {
	body, err := c.LeagueGet(ctx, Request{Views: []string{"mTeam", "mSettings", "mStatus"}})
	if err != nil {
		return nil, err
	}

	var parsed espnLeague
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing league from espn: %w", err)
	}

	l := &model.League{
		ID:                   parsed.ID,
		Year:                 parsed.SeasonID,
		Name:                 parsed.Settings.Name,
		CurrentMatchupPeriod: parsed.Status.CurrentMatchupPeriod,
		ScoringPeriodID:      parsed.ScoringPeriodID,
		FinalScoringPeriod:   parsed.Status.FinalScoringPeriod,
		Teams:                make([]model.Team, 0, len(parsed.Teams)),
	}
	if l.ID == 0 {
		l.ID = c.opts.LeagueID
	}
	if l.Year == 0 {
		l.Year = c.opts.Year
	}
	for _, t := range parsed.Teams {
		l.Teams = append(l.Teams, t.toTeam())
	}
	return l, nil
}

type espnProSchedule struct {
	Settings struct {
		ProTeams []espnProTeam `json:"proTeams"`
	} `json:"settings"`
}

type espnProTeam struct {
	ID     int                      `json:"id"`
	Abbrev string                   `json:"abbrev"`
	Games  map[string][]espnProGame `json:"proGamesByScoringPeriod"`
}

type espnProGame struct {
	ID            int   `json:"id"`
	Date          int64 `json:"date"`
	HomeProTeamID int   `json:"homeProTeamId"`
	AwayProTeamID int   `json:"awayProTeamId"`
}

// FetchProSchedule reads every NBA team's games for the season, keyed by pro
// team id and scoring period.
func (c *client) FetchProSchedule(ctx context.Context) (model.ProSchedule, error) {
	u := fmt.Sprintf("%s/seasons/%d", c.url, c.opts.Year)
	body, err := c.get(ctx, u, url.Values{"view": {"proTeamSchedules_wl"}}, nil)
	if err != nil {
		return nil, err
	}

	var parsed espnProSchedule
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing pro schedule from espn: %w", err)
	}

	schedule := make(model.ProSchedule, len(parsed.Settings.ProTeams))
	for _, t := range parsed.Settings.ProTeams {
		if t.ID == 0 || t.Abbrev == "FA" {
			continue
		}

		games := make(map[int]model.Game, len(t.Games))
		for key, list := range t.Games {
			period, err := strconv.Atoi(key)
			if err != nil || len(list) == 0 {
				continue
			}
			g := list[0]
			opponent := g.HomeProTeamID
			if opponent == t.ID {
				opponent = g.AwayProTeamID
			}
			games[period] = model.Game{
				ScoringPeriod: period,
				Opponent:      model.TeamByESPNID(opponent),
				Date:          time.UnixMilli(g.Date).UTC(),
			}
		}
		schedule[t.ID] = games
	}
	return schedule, nil
}
