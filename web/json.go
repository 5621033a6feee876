package web

import (
	"sort"
	"time"

	"github.com/Nunojmeira/espn-api/model"
)

type leagueJSON struct {
	ID                   int        `json:"id"`
	Year                 int        `json:"year"`
	Name                 string     `json:"name"`
	CurrentMatchupPeriod int        `json:"currentMatchupPeriod"`
	ScoringPeriodID      int        `json:"scoringPeriodId"`
	FinalScoringPeriod   int        `json:"finalScoringPeriod"`
	Teams                []teamJSON `json:"teams"`
}

type teamJSON struct {
	ID     int      `json:"id"`
	Abbrev string   `json:"abbrev"`
	Name   string   `json:"name"`
	Owners []string `json:"owners,omitempty"`
}

type playerJSON struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Position      model.Position   `json:"position"`
	EligibleSlots []model.Position `json:"eligibleSlots"`
	LineupSlot    model.Position   `json:"lineupSlot,omitempty"`
	ProTeam       string           `json:"proTeam"`
	ProTeamName   string           `json:"proTeamName"`
	InjuryStatus  string           `json:"injuryStatus"`
	Injured       bool             `json:"injured"`
	RecentAverage float64          `json:"recentAverage"`
	Stats         []periodJSON     `json:"stats"`
	Schedule      []gameJSON       `json:"schedule,omitempty"`
}

type periodJSON struct {
	ScoringPeriod int                `json:"scoringPeriod"`
	AppliedTotal  float64            `json:"appliedTotal"`
	Breakdown     map[string]float64 `json:"breakdown,omitempty"`
}

type gameJSON struct {
	ScoringPeriod int       `json:"scoringPeriod"`
	Opponent      string    `json:"opponent"`
	Date          time.Time `json:"date"`
	Display       string    `json:"display"`
}

type plusMinusJSON struct {
	Name      string  `json:"name"`
	PlusMinus float64 `json:"plusMinus"`
}

type errorJSON struct {
	Error string `json:"error"`
}

// Number of scoring periods averaged for recentAverage.
const recentPeriods = 7

func toLeagueJSON(l *model.League) leagueJSON {
	res := leagueJSON{
		ID:                   l.ID,
		Year:                 l.Year,
		Name:                 l.Name,
		CurrentMatchupPeriod: l.CurrentMatchupPeriod,
		ScoringPeriodID:      l.ScoringPeriodID,
		FinalScoringPeriod:   l.FinalScoringPeriod,
		Teams:                make([]teamJSON, 0, len(l.Teams)),
	}
	for _, t := range l.Teams {
		res.Teams = append(res.Teams, teamJSON{ID: t.ID, Abbrev: t.Abbrev, Name: t.Name, Owners: t.Owners})
	}
	return res
}

func toPlayersJSON(players []model.Player) []playerJSON {
	res := make([]playerJSON, 0, len(players))
	for i := range players {
		res = append(res, toPlayerJSON(&players[i]))
	}
	return res
}

func toPlayerJSON(p *model.Player) playerJSON {
	avg, _ := p.RecentAverage(recentPeriods)

	res := playerJSON{
		ID:            p.ID,
		Name:          p.Name,
		Position:      p.Position,
		EligibleSlots: p.EligibleSlots,
		LineupSlot:    p.LineupSlot,
		ProTeam:       model.TEAM_FA.String(),
		ProTeamName:   model.TEAM_FA.Friendly(),
		InjuryStatus:  p.InjuryStatus,
		Injured:       p.Injured,
		RecentAverage: avg,
		Stats:         make([]periodJSON, 0, len(p.Stats)),
	}
	if res.EligibleSlots == nil {
		res.EligibleSlots = []model.Position{}
	}
	if p.ProTeam != nil {
		res.ProTeam = p.ProTeam.String()
		res.ProTeamName = p.ProTeam.Friendly()
	}

	for _, period := range sortedKeys(p.Stats) {
		s := p.Stats[period]
		res.Stats = append(res.Stats, periodJSON{ScoringPeriod: period, AppliedTotal: s.AppliedTotal, Breakdown: s.Breakdown})
	}

	for _, period := range sortedKeys(p.Schedule) {
		g := p.Schedule[period]
		opp := model.TEAM_FA.String()
		if g.Opponent != nil {
			opp = g.Opponent.String()
		}
		res.Schedule = append(res.Schedule, gameJSON{ScoringPeriod: period, Opponent: opp, Date: g.Date, Display: g.FormattedDate()})
	}
	return res
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
