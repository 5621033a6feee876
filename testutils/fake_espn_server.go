package testutils

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sync"

	"github.com/go-chi/chi/v5"
)

const (
	ESPNLeagueID        = 123456
	ESPNLegacyLeagueID  = 222222
	ESPNPrivateLeagueID = 333333

	// The only day the fake scoreboard has games for.
	ScoreboardDate = "20241105"
)

//go:embed espndata
var espndata embed.FS

// RecordedRequest is what the fake ESPN server saw for one request.
type RecordedRequest struct {
	Path    string
	Query   url.Values
	Filter  string
	Cookies map[string]string
}

type FakeESPNServer struct {
	s *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

func NewFakeESPNServer() *FakeESPNServer {
	f := &FakeESPNServer{}

	r := chi.NewRouter()
	r.Use(f.record)
	r.Get("/seasons/{year}", proScheduleHandler)
	r.Get("/seasons/{year}/segments/0/leagues/{leagueID}", leagueHandler)
	r.Get("/seasons/{year}/segments/0/leagues/{leagueID}/players", leaguePlayersHandler)
	r.Get("/scoreboard", scoreboardHandler)
	r.Get("/boxscore/{id}", boxscoreHandler)

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeESPNServer) Close() {
	f.s.Close()
}

func (f *FakeESPNServer) URL() string {
	return f.s.URL
}

// Requests returns every request received so far, oldest first.
func (f *FakeESPNServer) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.requests)
}

func (f *FakeESPNServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookies := make(map[string]string)
		for _, c := range r.Cookies() {
			cookies[c.Name] = c.Value
		}

		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Path:    r.URL.Path,
			Query:   r.URL.Query(),
			Filter:  r.Header.Get("x-fantasy-filter"),
			Cookies: cookies,
		})
		f.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func hasCookies(r *http.Request) bool {
	s2, err := r.Cookie("espn_s2")
	if err != nil || s2.Value == "" {
		return false
	}
	swid, err := r.Cookie("SWID")
	return err == nil && swid.Value != ""
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	views := r.URL.Query()["view"]

	switch leagueID {
	case fmt.Sprint(ESPNLeagueID):
	case fmt.Sprint(ESPNLegacyLeagueID):
		if slices.Contains(views, "player_wl") {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("{}"))
			return
		}
	case fmt.Sprint(ESPNPrivateLeagueID):
		if !hasCookies(r) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"messages": ["You are not authorized to view this League."]}`))
			return
		}
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"messages": ["Not Found"]}`))
		return
	}

	switch {
	case slices.Contains(views, "player_wl"):
		serveESPNFile(w, "player_wl.json")
	case slices.Contains(views, "mWatchlist"):
		serveESPNFile(w, "legacy_watchlist.json")
	case slices.Contains(views, "mTeam"):
		serveESPNFile(w, "league.json")
	default:
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}
}

func leaguePlayersHandler(w http.ResponseWriter, r *http.Request) {
	if !hasCookies(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if chi.URLParam(r, "leagueID") != fmt.Sprint(ESPNLeagueID) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	// Only the upcoming season has anything on the watchlist.
	if chi.URLParam(r, "year") == "2025" {
		serveESPNFile(w, "watchlist_page.json")
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"players": []}`))
}

func proScheduleHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("view") != "proTeamSchedules_wl" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	serveESPNFile(w, "pro_schedule.json")
}

func scoreboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("dates") != ScoreboardDate {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"events": []}`))
		return
	}

	b, err := espndata.ReadFile("espndata/scoreboard.json")
	if err != nil {
		slog.Error("error reading scoreboard.json", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	b = bytes.ReplaceAll(b, []byte("{{BASE}}"), []byte("http://"+r.Host))

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func boxscoreHandler(w http.ResponseWriter, r *http.Request) {
	switch id := chi.URLParam(r, "id"); id {
	case "c1", "c2":
		serveESPNFile(w, fmt.Sprintf("boxscore_%s.json", id))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func serveESPNFile(w http.ResponseWriter, name string) {
	b, err := espndata.ReadFile(fmt.Sprintf("espndata/%s", name))
	if err != nil {
		slog.Error("error reading test data", slog.String("file", name), slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
