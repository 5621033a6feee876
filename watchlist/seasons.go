package watchlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"
)

// PageFunc fetches one page of the account watchlist for a season and
// returns the raw JSON array.
type PageFunc func(ctx context.Context, seasonID, limit, offset int) ([]byte, error)

// CollectAcrossSeasons asks each season in turn for the same page and stops
// at the first one that returns a non-empty list. The watchlist endpoint is
// keyed by season, so around a season boundary only the upcoming season may
// have data. An error from fetchPage stops probing and is returned.
func CollectAcrossSeasons(ctx context.Context, fetchPage PageFunc, limit, offset int, seasons []int) ([]Entry, error) {
	for _, season := range seasons {
		raw, err := fetchPage(ctx, season, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("error fetching watchlist page for season %d: %w", season, err)
		}

		page := Parse(raw)
		if !page.IsArray() || len(page.Array()) == 0 {
			slog.Debug("watchlist page is empty", slog.Int("season", season))
			continue
		}

		entries := pageEntries(page)
		slog.Debug("found watchlist page",
			slog.Int("season", season),
			slog.Int("entries", len(entries)))
		return entries, nil
	}

	return []Entry{}, nil
}

func pageEntries(page gjson.Result) []Entry {
	candidates := make([]Entry, 0, 16)
	page.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			candidates = append(candidates, Entry{Raw: value})
		}
		return true
	})

	all := func(Entry) bool { return true }
	return pick(candidates, len(candidates), all)
}
