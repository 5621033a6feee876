package web

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/Nunojmeira/espn-api/model"
)

// playerFilter narrows a resolved watchlist, zero values match everything.
type playerFilter struct {
	team     *model.ProTeam
	position model.Position
}

// parsePlayerFilter reads the optional proTeam and position query params.
// Teams accept abbreviations, mascots and nicknames, e.g. "lal" or "Lakers".
func parsePlayerFilter(r *http.Request) (playerFilter, error) {
	var f playerFilter

	if v := strings.TrimSpace(r.URL.Query().Get("proTeam")); v != "" {
		f.team = model.ParseTeam(v)
		if f.team == model.TEAM_FA && !strings.EqualFold(v, model.TEAM_FA.String()) {
			return f, fmt.Errorf("unknown pro team: %q", v)
		}
	}

	if v := strings.TrimSpace(r.URL.Query().Get("position")); v != "" {
		f.position = model.ParsePosition(v)
		if f.position == model.POS_UNKNOWN {
			return f, fmt.Errorf("unknown position: %q", v)
		}
	}
	return f, nil
}

func (f playerFilter) apply(players []model.Player) []model.Player {
	if f.team == nil && f.position == "" {
		return players
	}

	res := make([]model.Player, 0, len(players))
	for _, p := range players {
		if f.team != nil && !sameTeam(p.ProTeam, f.team) {
			continue
		}
		if f.position != "" && p.Position != f.position && !slices.Contains(p.EligibleSlots, f.position) {
			continue
		}
		res = append(res, p)
	}
	return res
}

func sameTeam(a, b *model.ProTeam) bool {
	if a == nil {
		a = model.TEAM_FA
	}
	return a == b
}
