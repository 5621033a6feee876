package model

import (
	"fmt"
	"strings"
)

type ProTeam struct {
	espnID int
	name   string
	loc    string
	mascot string
	short  string   // ESPN's abbreviation when it differs from the common one, e.g. PHL for PHI
	nick   []string // Any other nicknames that are used for the team, e.g. Dubs for GSW
}

func (t *ProTeam) String() string {
	return t.name
}

func (t *ProTeam) ESPNID() int {
	return t.espnID
}

func (t *ProTeam) Friendly() string {
	if t.loc == "" {
		return t.name
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

func (t *ProTeam) MarshalText() ([]byte, error) {
	return []byte(t.name), nil
}

var (
	TEAM_FA *ProTeam = &ProTeam{espnID: 0, name: "FA"}

	// East
	TEAM_ATL *ProTeam = &ProTeam{espnID: 1, name: "ATL", loc: "Atlanta", mascot: "Hawks"}
	TEAM_BOS *ProTeam = &ProTeam{espnID: 2, name: "BOS", loc: "Boston", mascot: "Celtics", nick: []string{"Celts"}}
	TEAM_CHI *ProTeam = &ProTeam{espnID: 4, name: "CHI", loc: "Chicago", mascot: "Bulls"}
	TEAM_CLE *ProTeam = &ProTeam{espnID: 5, name: "CLE", loc: "Cleveland", mascot: "Cavaliers", nick: []string{"Cavs"}}
	TEAM_DET *ProTeam = &ProTeam{espnID: 8, name: "DET", loc: "Detroit", mascot: "Pistons"}
	TEAM_IND *ProTeam = &ProTeam{espnID: 11, name: "IND", loc: "Indiana", mascot: "Pacers"}
	TEAM_MIA *ProTeam = &ProTeam{espnID: 14, name: "MIA", loc: "Miami", mascot: "Heat"}
	TEAM_MIL *ProTeam = &ProTeam{espnID: 15, name: "MIL", loc: "Milwaukee", mascot: "Bucks"}
	TEAM_BKN *ProTeam = &ProTeam{espnID: 17, name: "BKN", loc: "Brooklyn", mascot: "Nets", short: "BRK"}
	TEAM_NYK *ProTeam = &ProTeam{espnID: 18, name: "NYK", loc: "New York", mascot: "Knicks", short: "NY"}
	TEAM_ORL *ProTeam = &ProTeam{espnID: 19, name: "ORL", loc: "Orlando", mascot: "Magic"}
	TEAM_PHI *ProTeam = &ProTeam{espnID: 20, name: "PHI", loc: "Philadelphia", mascot: "76ers", short: "PHL", nick: []string{"Sixers"}}
	TEAM_WAS *ProTeam = &ProTeam{espnID: 27, name: "WAS", loc: "Washington", mascot: "Wizards", short: "WSH"}
	TEAM_TOR *ProTeam = &ProTeam{espnID: 28, name: "TOR", loc: "Toronto", mascot: "Raptors", nick: []string{"Raps"}}
	TEAM_CHA *ProTeam = &ProTeam{espnID: 30, name: "CHA", loc: "Charlotte", mascot: "Hornets"}

	// West
	TEAM_NOP *ProTeam = &ProTeam{espnID: 3, name: "NOP", loc: "New Orleans", mascot: "Pelicans", short: "NO", nick: []string{"Pels"}}
	TEAM_DAL *ProTeam = &ProTeam{espnID: 6, name: "DAL", loc: "Dallas", mascot: "Mavericks", nick: []string{"Mavs"}}
	TEAM_DEN *ProTeam = &ProTeam{espnID: 7, name: "DEN", loc: "Denver", mascot: "Nuggets"}
	TEAM_GSW *ProTeam = &ProTeam{espnID: 9, name: "GSW", loc: "Golden State", mascot: "Warriors", short: "GS", nick: []string{"Dubs"}}
	TEAM_HOU *ProTeam = &ProTeam{espnID: 10, name: "HOU", loc: "Houston", mascot: "Rockets"}
	TEAM_LAC *ProTeam = &ProTeam{espnID: 12, name: "LAC", loc: "Los Angeles", mascot: "Clippers"}
	TEAM_LAL *ProTeam = &ProTeam{espnID: 13, name: "LAL", loc: "Los Angeles", mascot: "Lakers"}
	TEAM_MIN *ProTeam = &ProTeam{espnID: 16, name: "MIN", loc: "Minnesota", mascot: "Timberwolves", nick: []string{"Wolves"}}
	TEAM_PHX *ProTeam = &ProTeam{espnID: 21, name: "PHX", loc: "Phoenix", mascot: "Suns", short: "PHO"}
	TEAM_POR *ProTeam = &ProTeam{espnID: 22, name: "POR", loc: "Portland", mascot: "Trail Blazers", nick: []string{"Blazers"}}
	TEAM_SAC *ProTeam = &ProTeam{espnID: 23, name: "SAC", loc: "Sacramento", mascot: "Kings"}
	TEAM_SAS *ProTeam = &ProTeam{espnID: 24, name: "SAS", loc: "San Antonio", mascot: "Spurs", short: "SA"}
	TEAM_OKC *ProTeam = &ProTeam{espnID: 25, name: "OKC", loc: "Oklahoma City", mascot: "Thunder"}
	TEAM_UTA *ProTeam = &ProTeam{espnID: 26, name: "UTA", loc: "Utah", mascot: "Jazz", short: "UTAH"}
	TEAM_MEM *ProTeam = &ProTeam{espnID: 29, name: "MEM", loc: "Memphis", mascot: "Grizzlies", nick: []string{"Grizz"}}

	allTeams = []*ProTeam{
		TEAM_ATL, TEAM_BOS, TEAM_CHI, TEAM_CLE, TEAM_DET, TEAM_IND, TEAM_MIA, TEAM_MIL,
		TEAM_BKN, TEAM_NYK, TEAM_ORL, TEAM_PHI, TEAM_WAS, TEAM_TOR, TEAM_CHA,
		TEAM_NOP, TEAM_DAL, TEAM_DEN, TEAM_GSW, TEAM_HOU, TEAM_LAC, TEAM_LAL, TEAM_MIN,
		TEAM_PHX, TEAM_POR, TEAM_SAC, TEAM_SAS, TEAM_OKC, TEAM_UTA, TEAM_MEM,
		TEAM_FA,
	}

	teamMap  map[string]*ProTeam = buildTeamMap()
	teamByID map[int]*ProTeam    = buildTeamIDMap()
)

// ParseTeam looks a team up by abbreviation, city, mascot or nickname.
// Los Angeles is ambiguous and resolves to whichever LA team was registered last.
func ParseTeam(name string) *ProTeam {
	t := teamMap[strings.ToLower(name)]
	if t == nil {
		return TEAM_FA
	}
	return t
}

// TeamByESPNID maps an ESPN proTeamId to a team, unknown ids are free agents.
func TeamByESPNID(id int) *ProTeam {
	t := teamByID[id]
	if t == nil {
		return TEAM_FA
	}
	return t
}

func buildTeamMap() map[string]*ProTeam {
	teamMap := make(map[string]*ProTeam)
	for _, t := range allTeams {
		teamMap[strings.ToLower(t.name)] = t

		if t.loc != "" {
			teamMap[strings.ToLower(t.loc)] = t
		}

		if t.mascot != "" {
			teamMap[strings.ToLower(t.mascot)] = t
		}

		if t.short != "" {
			teamMap[strings.ToLower(t.short)] = t
		}

		for _, n := range t.nick {
			teamMap[strings.ToLower(n)] = t
		}
	}
	return teamMap
}

func buildTeamIDMap() map[int]*ProTeam {
	m := make(map[int]*ProTeam, len(allTeams))
	for _, t := range allTeams {
		m[t.espnID] = t
	}
	return m
}
