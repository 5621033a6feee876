package watchlist

import (
	"github.com/tidwall/gjson"
)

// Resolve picks at most size watched players out of a single payload.
//
// Entries are found by walking the payload (see collect). When the walk
// finds nothing the flat "players" and "watchlist.players" shapes are tried
// with no team attribution. With a teamID, entries that belong to another
// known team are dropped; if that leaves nothing, the first size entries are
// returned regardless of team. Player ids never repeat in the result.
func Resolve(payload gjson.Result, teamID, size int) []Entry {
	if size <= 0 {
		return []Entry{}
	}

	candidates := collect(payload)
	if len(candidates) == 0 {
		candidates = listEntries(payload, AnyTeam, false)
	}
	return selectEntries(candidates, teamID, size)
}

// NeedsLegacyView reports whether a primary view payload is not in any shape
// the resolver understands: nothing to walk and no playerWatchList key.
func NeedsLegacyView(payload gjson.Result) bool {
	return shapeMismatch(payload, collect(payload))
}

// shapeMismatch is true when the walk found nothing and the payload has no
// playerWatchList key either.
func shapeMismatch(payload gjson.Result, entries []Entry) bool {
	return len(entries) == 0 && !hasPlayerWatchList(payload)
}

func hasPlayerWatchList(payload gjson.Result) bool {
	return payload.IsObject() && payload.Get("playerWatchList").Exists()
}

func selectEntries(candidates []Entry, teamID, size int) []Entry {
	selected := pick(candidates, size, func(e Entry) bool {
		return teamID == AnyTeam || !e.HasTeam || e.TeamID == teamID
	})
	if len(selected) == 0 && teamID != AnyTeam {
		// Nothing matched the team, take the first entries found anywhere.
		selected = pick(candidates, size, func(Entry) bool { return true })
	}
	return selected
}

// pick keeps the first size well formed entries accepted by keep, skipping
// players already picked.
func pick(candidates []Entry, size int, keep func(Entry) bool) []Entry {
	selected := make([]Entry, 0, min(size, len(candidates)))
	seen := make(map[int]bool, len(candidates))
	for _, e := range candidates {
		if len(selected) >= size {
			break
		}
		if !keep(e) || !e.Player().IsObject() {
			continue
		}

		id, ok := playerID(e)
		if !ok || seen[id] {
			continue
		}

		seen[id] = true
		e.PlayerID = id
		selected = append(selected, e)
	}
	return selected
}
