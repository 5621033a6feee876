package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/Nunojmeira/espn-api/controller/mockcontroller"
	"github.com/Nunojmeira/espn-api/espn"
	"github.com/Nunojmeira/espn-api/model"
	"github.com/Nunojmeira/espn-api/watchlist"
	"github.com/stretchr/testify/mock"
)

func serve(t *testing.T, ctrl *mockcontroller.C, target string) *httptest.ResponseRecorder {
	t.Helper()

	router := getRouter(ctrl, newRender())
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("error decoding response %q: %v", w.Body.String(), err)
	}
	return v
}

func testPlayers() []model.Player {
	return []model.Player{
		{
			ID:            3112335,
			Name:          "Nikola Jokic",
			Position:      model.POS_C,
			EligibleSlots: []model.Position{model.POS_C, model.POS_UT},
			ProTeam:       model.TEAM_DEN,
			InjuryStatus:  "ACTIVE",
			Stats: map[int]model.PeriodStats{
				11: {AppliedTotal: 60},
				10: {AppliedTotal: 50},
			},
			Schedule: map[int]model.Game{
				12: {ScoringPeriod: 12, Opponent: model.TEAM_LAL, Date: time.Date(2024, 11, 6, 3, 0, 0, 0, time.UTC)},
			},
		},
	}
}

func TestTeamWatchlistHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("TeamWatchlist", mock.Anything, 7, 10).Return(testPlayers(), nil)

	w := serve(t, ctrl, "/teams/7/watchlist?size=10")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d, body: %s", w.Code, w.Body.String())
	}

	players := decode[[]playerJSON](t, w)
	if len(players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(players))
	}

	p := players[0]
	if p.ID != 3112335 || p.Name != "Nikola Jokic" || p.ProTeam != "DEN" || p.Position != model.POS_C {
		t.Errorf("unexpected player: %+v", p)
	}
	if p.RecentAverage != 55 {
		t.Errorf("expected recent average 55, got %v", p.RecentAverage)
	}

	wantStats := []periodJSON{{ScoringPeriod: 10, AppliedTotal: 50}, {ScoringPeriod: 11, AppliedTotal: 60}}
	if !reflect.DeepEqual(wantStats, p.Stats) {
		t.Errorf("expected stats %v, got %v", wantStats, p.Stats)
	}
	if len(p.Schedule) != 1 || p.Schedule[0].Opponent != "LAL" {
		t.Errorf("unexpected schedule: %v", p.Schedule)
	}

	ctrl.AssertExpectations(t)
}

func TestTeamWatchlistHandler_defaultSize(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("TeamWatchlist", mock.Anything, 3, defaultTeamWatchlistSize).Return([]model.Player{}, nil)

	w := serve(t, ctrl, "/teams/3/watchlist")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	if players := decode[[]playerJSON](t, w); len(players) != 0 {
		t.Errorf("expected no players, got %v", players)
	}

	ctrl.AssertExpectations(t)
}

func TestTeamWatchlistHandler_badParams(t *testing.T) {
	tests := []struct {
		target string
		want   int
	}{
		{target: "/teams/7/watchlist?size=0", want: http.StatusBadRequest},
		{target: "/teams/7/watchlist?size=-5", want: http.StatusBadRequest},
		{target: "/teams/7/watchlist?size=ten", want: http.StatusBadRequest},
		{target: "/teams/0/watchlist", want: http.StatusBadRequest},
		{target: "/teams/abc/watchlist", want: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			w := serve(t, ctrl, tc.target)
			if w.Code != tc.want {
				t.Errorf("expected status %d, got %d", tc.want, w.Code)
			}
			ctrl.AssertNotCalled(t, "TeamWatchlist", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTeamWatchlistHandler_errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "access denied", err: fmt.Errorf("error fetching: %w", espn.ErrAccessDenied), want: http.StatusUnauthorized},
		{name: "unsupported season", err: fmt.Errorf("%w: 2018", watchlist.ErrUnsupportedSeason), want: http.StatusBadRequest},
		{name: "upstream", err: errors.New("connection reset"), want: http.StatusBadGateway},
		{name: "invalid league", err: espn.ErrInvalidLeague, want: http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			ctrl.On("TeamWatchlist", mock.Anything, 7, 40).Return(nil, tc.err)

			w := serve(t, ctrl, "/teams/7/watchlist")
			if w.Code != tc.want {
				t.Errorf("expected status %d, got %d", tc.want, w.Code)
			}
			if e := decode[errorJSON](t, w); e.Error != tc.err.Error() {
				t.Errorf("expected error %q, got %q", tc.err.Error(), e.Error)
			}
		})
	}
}

func TestWatchlistHandler(t *testing.T) {
	tests := []struct {
		target  string
		limit   int
		offset  int
		seasons []int
	}{
		{target: "/watchlist", limit: 25, offset: 0, seasons: nil},
		{target: "/watchlist?limit=5&offset=15", limit: 5, offset: 15, seasons: nil},
		{target: "/watchlist?season=2025&season=2024", limit: 25, offset: 0, seasons: []int{2025, 2024}},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			ctrl.On("WatchlistPlayers", mock.Anything, tc.limit, tc.offset, tc.seasons).Return(testPlayers(), nil)

			w := serve(t, ctrl, tc.target)
			if w.Code != http.StatusOK {
				t.Fatalf("unexpected status code: %d, body: %s", w.Code, w.Body.String())
			}
			if players := decode[[]playerJSON](t, w); len(players) != 1 {
				t.Errorf("expected 1 player, got %d", len(players))
			}
			ctrl.AssertExpectations(t)
		})
	}
}

func TestWatchlistHandler_badParams(t *testing.T) {
	targets := []string{
		"/watchlist?limit=0",
		"/watchlist?limit=x",
		"/watchlist?offset=-1",
		"/watchlist?season=last",
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			w := serve(t, ctrl, target)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
			ctrl.AssertNotCalled(t, "WatchlistPlayers", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestLeagueHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("League", mock.Anything).Return(&model.League{
		ID:   123456,
		Year: 2025,
		Name: "Test League",
		Teams: []model.Team{
			{ID: 1, Abbrev: "JOK", Name: "Joker Squad"},
			{ID: 2, Abbrev: "LUKA", Name: "Luka Magic"},
		},
	}, nil)

	w := serve(t, ctrl, "/league")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}

	l := decode[leagueJSON](t, w)
	if l.ID != 123456 || l.Name != "Test League" || len(l.Teams) != 2 {
		t.Errorf("unexpected league: %+v", l)
	}
	if l.Teams[1].Name != "Luka Magic" {
		t.Errorf("expected team 2 to be Luka Magic, got %s", l.Teams[1].Name)
	}
}

func TestLeagueHandler_accessDenied(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("League", mock.Anything).Return(nil, espn.ErrAccessDenied)

	w := serve(t, ctrl, "/league")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestPlusMinusHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("LivePlusMinus", mock.Anything, "Nikola Jokic").Return(12.0, true)
	ctrl.On("LivePlusMinus", mock.Anything, "Nobody").Return(0.0, false)

	w := serve(t, ctrl, "/players/plus-minus?name=Nikola+Jokic")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	want := plusMinusJSON{Name: "Nikola Jokic", PlusMinus: 12}
	if got := decode[plusMinusJSON](t, w); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	w = serve(t, ctrl, "/players/plus-minus?name=Nobody")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	w = serve(t, ctrl, "/players/plus-minus")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestNewServer(t *testing.T) {
	if _, err := NewServer(0, &mockcontroller.C{}); err == nil {
		t.Errorf("expected an error for port 0")
	}

	s, err := NewServer(3000, &mockcontroller.C{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Addr() != ":3000" {
		t.Errorf("expected addr :3000, got %s", s.Addr())
	}
}

func TestWatchlistHandler_filters(t *testing.T) {
	players := []model.Player{
		{ID: 1, Name: "Nikola Jokic", Position: model.POS_C, EligibleSlots: []model.Position{model.POS_C, model.POS_UT}, ProTeam: model.TEAM_DEN},
		{ID: 2, Name: "LeBron James", Position: model.POS_SF, EligibleSlots: []model.Position{model.POS_SF, model.POS_PF, model.POS_F}, ProTeam: model.TEAM_LAL},
		{ID: 3, Name: "Free Agent", Position: model.POS_PG},
	}

	tests := []struct {
		query string
		want  []int
	}{
		{query: "", want: []int{1, 2, 3}},
		{query: "?proTeam=Lakers", want: []int{2}},
		{query: "?proTeam=den", want: []int{1}},
		{query: "?proTeam=FA", want: []int{3}},
		{query: "?position=PF", want: []int{2}},
		{query: "?position=c&proTeam=DEN", want: []int{1}},
		{query: "?position=PG&proTeam=LAL", want: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			ctrl.On("WatchlistPlayers", mock.Anything, 25, 0, []int(nil)).Return(players, nil)

			w := serve(t, ctrl, "/watchlist"+tc.query)
			if w.Code != http.StatusOK {
				t.Fatalf("unexpected status code: %d, body: %s", w.Code, w.Body.String())
			}

			got := []int{}
			for _, p := range decode[[]playerJSON](t, w) {
				got = append(got, p.ID)
			}
			if !reflect.DeepEqual(tc.want, got) {
				t.Errorf("expected players %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTeamWatchlistHandler_badFilters(t *testing.T) {
	for _, query := range []string{"?proTeam=Seattle", "?position=QB"} {
		t.Run(query, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			w := serve(t, ctrl, "/teams/7/watchlist"+query)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
			ctrl.AssertNotCalled(t, "TeamWatchlist", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
