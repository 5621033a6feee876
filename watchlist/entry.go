package watchlist

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// AnyTeam disables team filtering. ESPN team ids start at 1.
const AnyTeam = 0

// Entry is one watched player found in a payload. Raw is the mapping that
// carries the "player" object, TeamID is only meaningful when HasTeam is set.
type Entry struct {
	TeamID   int
	HasTeam  bool
	PlayerID int
	Raw      gjson.Result
}

func (e Entry) Player() gjson.Result {
	return e.Raw.Get("player")
}

// Parse turns a response body into a JSON value. Bodies that are not valid
// JSON become the empty value so they resolve to nothing.
func Parse(raw []byte) gjson.Result {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return gjson.Result{}
	}
	return gjson.ParseBytes(raw)
}

// integer accepts whole JSON numbers only, so 7 is a team id and 7.5 or "7"
// are not.
func integer(v gjson.Result) (int, bool) {
	if v.Type != gjson.Number || strings.ContainsAny(v.Raw, ".eE") {
		return 0, false
	}
	return int(v.Int()), true
}

// identifier is looser than integer: ids sometimes arrive as strings.
func identifier(v gjson.Result) (int, bool) {
	switch v.Type {
	case gjson.Number:
		id, ok := integer(v)
		return id, ok && id > 0
	case gjson.String:
		id, err := strconv.Atoi(strings.TrimSpace(v.Str))
		return id, err == nil && id > 0
	default:
		return 0, false
	}
}

// playerID prefers the entry's own playerId and falls back to the nested
// player's id.
func playerID(e Entry) (int, bool) {
	if id, ok := identifier(e.Raw.Get("playerId")); ok {
		return id, true
	}
	return identifier(e.Player().Get("id"))
}

func isContainer(v gjson.Result) bool {
	return v.IsObject() || v.IsArray()
}
