package watchlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Nunojmeira/espn-api/model"
	"github.com/tidwall/gjson"
)

var (
	ErrUnsupportedSeason = errors.New("watchlists are not available before 2019")
)

// Fetcher supplies raw watchlist payloads. Implementations own transport,
// auth and retries, their errors are returned to callers unchanged.
type Fetcher interface {
	// FetchPrimaryWatchlistView reads the current "player watchlist" view.
	FetchPrimaryWatchlistView(ctx context.Context) ([]byte, error)
	// FetchLegacyWatchlistView reads the older mWatchlist view for a team.
	FetchLegacyWatchlistView(ctx context.Context, teamID, size int) ([]byte, error)
	// FetchWatchlistPage reads one page of the account watchlist for a
	// season. The body is a JSON array of entries.
	FetchWatchlistPage(ctx context.Context, seasonID, limit, offset int) ([]byte, error)
}

type Service struct {
	fetcher Fetcher
	year    int
}

func NewService(fetcher Fetcher, year int) *Service {
	return &Service{
		fetcher: fetcher,
		year:    year,
	}
}

// resolution carries state between the strategies of one TeamWatchlist call.
type resolution struct {
	teamID int
	size   int

	// The most recently fetched payload.
	payload       gjson.Result
	shapeMismatch bool
}

type strategy struct {
	name string
	run  func(ctx context.Context, s *Service, r *resolution) ([]Entry, error)
}

// Tried in order, the first one to produce candidates wins.
var teamStrategies = []strategy{
	{name: "primary", run: primaryStrategy},
	{name: "legacy", run: legacyStrategy},
	{name: "raw", run: rawStrategy},
}

func primaryStrategy(ctx context.Context, s *Service, r *resolution) ([]Entry, error) {
	raw, err := s.fetcher.FetchPrimaryWatchlistView(ctx)
	if err != nil {
		return nil, err
	}
	r.payload = Parse(raw)

	entries := collect(r.payload)
	r.shapeMismatch = shapeMismatch(r.payload, entries)
	return entries, nil
}

func legacyStrategy(ctx context.Context, s *Service, r *resolution) ([]Entry, error) {
	if !r.shapeMismatch {
		return nil, nil
	}

	raw, err := s.fetcher.FetchLegacyWatchlistView(ctx, r.teamID, r.size)
	if err != nil {
		return nil, err
	}
	r.payload = Parse(raw)

	// The legacy view is already filtered to the team that was asked for.
	return listEntries(r.payload, r.teamID, r.teamID != AnyTeam), nil
}

func rawStrategy(_ context.Context, _ *Service, r *resolution) ([]Entry, error) {
	return listEntries(r.payload, AnyTeam, false), nil
}

// TeamWatchlist returns up to size watchlist entries for a team, or for the
// whole league when teamID is AnyTeam. The legacy view is only fetched when
// the primary view comes back in an unrecognised shape.
func (s *Service) TeamWatchlist(ctx context.Context, teamID, size int) ([]Entry, error) {
	if err := s.checkSeason(); err != nil {
		return nil, err
	}
	if size <= 0 {
		return []Entry{}, nil
	}

	r := &resolution{teamID: teamID, size: size}
	for _, st := range teamStrategies {
		candidates, err := st.run(ctx, s, r)
		if err != nil {
			return nil, fmt.Errorf("error resolving watchlist for team %d (%s view): %w", teamID, st.name, err)
		}
		if len(candidates) == 0 {
			continue
		}

		selected := selectEntries(candidates, teamID, size)
		slog.Debug("resolved team watchlist",
			slog.Int("team_id", teamID),
			slog.String("strategy", st.name),
			slog.Int("candidates", len(candidates)),
			slog.Int("selected", len(selected)))
		return selected, nil
	}

	slog.Debug("team watchlist is empty", slog.Int("team_id", teamID))
	return []Entry{}, nil
}

// WatchlistPlayers pages through the account watchlist. When seasons is
// empty the configured year is tried first and then the following one.
func (s *Service) WatchlistPlayers(ctx context.Context, limit, offset int, seasons []int) ([]Entry, error) {
	if err := s.checkSeason(); err != nil {
		return nil, err
	}
	if len(seasons) == 0 {
		seasons = s.DefaultSeasons()
	}
	return CollectAcrossSeasons(ctx, s.fetcher.FetchWatchlistPage, limit, offset, seasons)
}

func (s *Service) DefaultSeasons() []int {
	return []int{s.year, s.year + 1}
}

func (s *Service) checkSeason() error {
	if s.year < model.FirstSupportedSeason {
		return fmt.Errorf("season %d: %w", s.year, ErrUnsupportedSeason)
	}
	return nil
}
