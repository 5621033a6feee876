package espn

import (
	"encoding/json"
	"fmt"

	"github.com/Nunojmeira/espn-api/model"
	"github.com/Nunojmeira/espn-api/watchlist"
)

const (
	statSourceActual    = 0
	statSplitPerPeriod  = 5
	defaultInjuryStatus = "ACTIVE"
)

type espnPlayer struct {
	ID                int             `json:"id"`
	FullName          string          `json:"fullName"`
	DefaultPositionID int             `json:"defaultPositionId"`
	EligibleSlots     []int           `json:"eligibleSlots"`
	ProTeamID         int             `json:"proTeamId"`
	InjuryStatus      string          `json:"injuryStatus"`
	Injured           bool            `json:"injured"`
	Stats             []espnStatSplit `json:"stats"`
}

type espnStatSplit struct {
	SeasonID        int                `json:"seasonId"`
	ScoringPeriodID int                `json:"scoringPeriodId"`
	StatSourceID    int                `json:"statSourceId"`
	StatSplitTypeID int                `json:"statSplitTypeId"`
	AppliedTotal    float64            `json:"appliedTotal"`
	Stats           map[string]float64 `json:"stats"`
}

func (p *espnPlayer) toPlayer(year int, schedule model.ProSchedule) *model.Player {
	injury := p.InjuryStatus
	if injury == "" {
		injury = defaultInjuryStatus
	}

	player := &model.Player{
		ID:            p.ID,
		Name:          p.FullName,
		Position:      model.DefaultPosition(p.DefaultPositionID),
		EligibleSlots: make([]model.Position, 0, len(p.EligibleSlots)),
		LineupSlot:    model.POS_UNKNOWN,
		ProTeam:       model.TeamByESPNID(p.ProTeamID),
		InjuryStatus:  injury,
		Injured:       p.Injured,
		Stats:         make(map[int]model.PeriodStats),
	}

	for _, slot := range p.EligibleSlots {
		if pos := model.SlotPosition(slot); pos != model.POS_UNKNOWN {
			player.EligibleSlots = append(player.EligibleSlots, pos)
		}
	}

	for _, split := range p.Stats {
		if split.SeasonID != year || split.StatSourceID != statSourceActual || split.StatSplitTypeID != statSplitPerPeriod {
			continue
		}
		breakdown := make(map[string]float64, len(split.Stats))
		for id, v := range split.Stats {
			breakdown[model.StatName(id)] = v
		}
		player.Stats[split.ScoringPeriodID] = model.PeriodStats{
			AppliedTotal: split.AppliedTotal,
			Breakdown:    breakdown,
		}
	}

	if games := schedule.GamesFor(player.ProTeam); games != nil {
		player.Schedule = make(map[int]model.Game, len(games))
		for period, g := range games {
			player.Schedule[period] = g
		}
	}

	return player
}

// PlayerFromEntry builds a player from a resolved watchlist entry. The player
// is read from playerPoolEntry.player when the entry has one, otherwise from
// player. schedule may be nil.
func PlayerFromEntry(e watchlist.Entry, year int, schedule model.ProSchedule) (*model.Player, error) {
	raw := e.Raw.Get("playerPoolEntry.player")
	if !raw.IsObject() {
		raw = e.Player()
	}
	if !raw.IsObject() {
		return nil, ErrNoPlayer
	}

	var parsed espnPlayer
	if err := json.Unmarshal([]byte(raw.Raw), &parsed); err != nil {
		return nil, fmt.Errorf("error parsing player %d: %w", e.PlayerID, err)
	}
	if parsed.ID == 0 {
		parsed.ID = e.PlayerID
	}

	p := parsed.toPlayer(year, schedule)
	if slot := e.Raw.Get("lineupSlotId"); slot.Exists() {
		p.LineupSlot = model.SlotPosition(int(slot.Int()))
	}
	return p, nil
}
