package model

import (
	"sort"
	"strings"
	"time"
)

const (
	GameTimeFormat = "2006-01-02 03:04 PM"
)

type Player struct {
	ID            int
	Name          string
	Position      Position
	EligibleSlots []Position
	LineupSlot    Position
	ProTeam       *ProTeam
	InjuryStatus  string
	Injured       bool
	// Stats are keyed by scoring period.
	Stats map[int]PeriodStats
	// Schedule is keyed by scoring period and only filled in when a pro
	// schedule was available while building the player.
	Schedule map[int]Game
}

// PeriodStats is a player's production for a single scoring period.
type PeriodStats struct {
	AppliedTotal float64
	Breakdown    map[string]float64
}

type Game struct {
	ScoringPeriod int
	Opponent      *ProTeam
	Date          time.Time
}

func (g *Game) FormattedDate() string {
	if g.Date.IsZero() {
		return "-"
	}
	return g.Date.Format(GameTimeFormat)
}

// ProSchedule holds every pro team's games, keyed by ESPN pro team id and
// then by scoring period.
type ProSchedule map[int]map[int]Game

// GamesFor returns the games a pro team plays, nil if the team is unknown.
func (s ProSchedule) GamesFor(team *ProTeam) map[int]Game {
	if s == nil || team == nil {
		return nil
	}
	return s[team.ESPNID()]
}

// RecentPoints returns the applied fantasy totals, most recent scoring
// period first.
func (p *Player) RecentPoints() []float64 {
	periods := make([]int, 0, len(p.Stats))
	for period := range p.Stats {
		periods = append(periods, period)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(periods)))

	points := make([]float64, 0, len(periods))
	for _, period := range periods {
		points = append(points, p.Stats[period].AppliedTotal)
	}
	return points
}

// RecentAverage averages the last n scoring periods that have stats. It also
// returns how many periods were used, which is less than n early in a season.
func (p *Player) RecentAverage(n int) (float64, int) {
	points := p.RecentPoints()
	if n <= 0 || len(points) == 0 {
		return 0, 0
	}
	if len(points) > n {
		points = points[:n]
	}

	total := 0.0
	for _, v := range points {
		total += v
	}
	return total / float64(len(points)), len(points)
}

// Take a full name, like "Jaren Jackson Jr." and return "Jaren Jackson".
func TrimNameSuffix(fullName string) string {
	suffixList := []string{
		"Jr.",
		"Sr.",
		"III",
		"II",
		"IV",
	}

	for _, s := range suffixList {
		fullName = strings.TrimSuffix(fullName, s)
	}

	return strings.TrimSpace(fullName)
}
