package watchlist

import (
	"strings"

	"github.com/tidwall/gjson"
)

type frame struct {
	node    gjson.Result
	include bool
	teamID  int
	hasTeam bool
}

// collect walks the payload looking for watch entries. A key containing
// "watch" switches on capturing for everything below it, and the nearest
// enclosing integer teamId is attributed to each captured entry. Captured
// mappings are leaves. Siblings are visited in document order. Only a
// mapping root is walked, anything else holds no entries.
func collect(root gjson.Result) []Entry {
	entries := make([]Entry, 0, 16)
	if !root.IsObject() {
		return entries
	}

	stack := []frame{{node: root}}
	children := make([]frame, 0, 16)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children = children[:0]
		if cur.node.IsObject() {
			if id, ok := integer(cur.node.Get("teamId")); ok {
				cur.teamID = id
				cur.hasTeam = true
			}

			if cur.include && cur.node.Get("player").IsObject() {
				entries = append(entries, Entry{TeamID: cur.teamID, HasTeam: cur.hasTeam, Raw: cur.node})
				continue
			}

			cur.node.ForEach(func(key, value gjson.Result) bool {
				if isContainer(value) {
					children = append(children, frame{
						node:    value,
						include: cur.include || strings.Contains(strings.ToLower(key.String()), "watch"),
						teamID:  cur.teamID,
						hasTeam: cur.hasTeam,
					})
				}
				return true
			})
		} else {
			cur.node.ForEach(func(_, value gjson.Result) bool {
				if isContainer(value) {
					children = append(children, frame{
						node:    value,
						include: cur.include,
						teamID:  cur.teamID,
						hasTeam: cur.hasTeam,
					})
				}
				return true
			})
		}

		// Push in reverse so the first child is popped first.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return entries
}

// listEntries reads the flat shapes older views return: a top level
// "players" array, or "watchlist.players" when there is no such array.
func listEntries(payload gjson.Result, teamID int, hasTeam bool) []Entry {
	entries := make([]Entry, 0, 16)
	if !payload.IsObject() {
		return entries
	}

	list := payload.Get("players")
	if !list.IsArray() {
		watchlist := payload.Get("watchlist")
		if !watchlist.IsObject() {
			return entries
		}
		list = watchlist.Get("players")
		if !list.IsArray() {
			return entries
		}
	}

	list.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			entries = append(entries, Entry{TeamID: teamID, HasTeam: hasTeam, Raw: value})
		}
		return true
	})
	return entries
}
