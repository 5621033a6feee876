package espn

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/Nunojmeira/espn-api/model"
	"github.com/tidwall/gjson"
)

const scoreboardDateFormat = "20060102"

func (c *client) LivePlusMinus(ctx context.Context, playerName string) (float64, bool) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return 0, false
	}

	today := c.clock.Now().UTC().Format(scoreboardDateFormat)
	body, err := c.get(ctx, c.scoreboardURL, url.Values{"dates": {today}}, nil)
	if err != nil {
		slog.Debug("error loading scoreboard", slog.String("date", today), slog.Any("error", err))
		return 0, false
	}
	if !gjson.ValidBytes(body) {
		return 0, false
	}

	for _, event := range gjson.ParseBytes(body).Get("events").Array() {
		for _, competition := range event.Get("competitions").Array() {
			ref, ok := boxscoreRef(competition)
			if !ok {
				continue
			}

			box, err := c.get(ctx, ref, nil, nil)
			if err != nil || !gjson.ValidBytes(box) {
				slog.Debug("skipping boxscore", slog.String("ref", ref), slog.Any("error", err))
				continue
			}

			if v, found := findPlusMinus(gjson.ParseBytes(box), playerName); found {
				return v, true
			}
		}
	}
	return 0, false
}

func boxscoreRef(competition gjson.Result) (string, bool) {
	boxscore := competition.Get("boxscore")
	if !boxscore.IsObject() {
		return "", false
	}
	// "$ref" is read through Map to keep it out of gjson's path syntax.
	ref, found := boxscore.Map()["$ref"]
	if !found || ref.Type != gjson.String || ref.Str == "" {
		return "", false
	}
	return ref.Str, true
}

// findPlusMinus searches a boxscore breadth first for the athlete and reads
// the plus/minus out of the stats next to it.
func findPlusMinus(boxscore gjson.Result, playerName string) (float64, bool) {
	if !boxscore.IsObject() {
		return 0, false
	}

	queue := []gjson.Result{boxscore}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.IsObject() {
			if athlete := item.Get("athlete"); athlete.IsObject() {
				name := athlete.Get("displayName").String()
				if name == "" {
					name = athlete.Get("fullName").String()
				}
				if namesMatch(name, playerName) {
					if v, ok := searchPlusMinus(item.Get("stats")); ok {
						return v, true
					}
				}
			}
		}

		item.ForEach(func(_, value gjson.Result) bool {
			if value.IsObject() || value.IsArray() {
				queue = append(queue, value)
			}
			return true
		})
	}
	return 0, false
}

func searchPlusMinus(stats gjson.Result) (float64, bool) {
	switch {
	case stats.Type == gjson.Number:
		return stats.Num, true
	case stats.Type == gjson.String:
		return parsePlusMinusString(stats.Str)
	case stats.IsObject():
		var (
			value float64
			found bool
		)
		stats.ForEach(func(key, v gjson.Result) bool {
			if isPlusMinusKey(key.String()) {
				if value, found = coerceFloat(v); found {
					return false
				}
			}
			value, found = searchPlusMinus(v)
			return !found
		})
		return value, found
	case stats.IsArray():
		var (
			value float64
			found bool
		)
		stats.ForEach(func(_, v gjson.Result) bool {
			value, found = searchPlusMinus(v)
			return !found
		})
		return value, found
	default:
		return 0, false
	}
}

// parsePlusMinusString reads values like "-3", "+5" or "+/-: -3".
func parsePlusMinusString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	lowered := strings.ToLower(s)
	if strings.HasPrefix(lowered, "+/-") || strings.Contains(lowered, "plus") {
		tokens := strings.Fields(strings.ReplaceAll(s, "+", " +"))
		for i := len(tokens) - 1; i >= 0; i-- {
			if v, ok := parseSigned(tokens[i]); ok {
				return v, true
			}
		}
	}
	return parseSigned(s)
}

func coerceFloat(v gjson.Result) (float64, bool) {
	switch v.Type {
	case gjson.Number:
		return v.Num, true
	case gjson.String:
		return parseSigned(v.Str)
	default:
		return 0, false
	}
}

func parseSigned(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, "+", "")), 64)
	return v, err == nil
}

func isPlusMinusKey(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "plus") || strings.Contains(key, "pm") || strings.Contains(key, "+/")
}

// namesMatch ignores case and generational suffixes, so "Jaren Jackson" finds
// "Jaren Jackson Jr.".
func namesMatch(a, b string) bool {
	if strings.EqualFold(a, b) {
		return true
	}
	return a != "" && strings.EqualFold(model.TrimNameSuffix(a), model.TrimNameSuffix(b))
}
