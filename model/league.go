package model

// The first season ESPN serves the v3 fantasy endpoints for.
const FirstSupportedSeason = 2019

type League struct {
	ID                   int
	Year                 int
	Name                 string
	CurrentMatchupPeriod int
	ScoringPeriodID      int
	FinalScoringPeriod   int
	Teams                []Team
}

type Team struct {
	ID     int
	Abbrev string
	Name   string
	Owners []string
}
