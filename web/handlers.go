package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Nunojmeira/espn-api/controller"
	"github.com/Nunojmeira/espn-api/espn"
	"github.com/Nunojmeira/espn-api/watchlist"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

const (
	defaultTeamWatchlistSize = 40
	defaultPageLimit         = 25
)

func leagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := ctrl.League(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, toLeagueJSON(l))
	}
}

func teamWatchlistHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := strconv.Atoi(chi.URLParam(r, "teamID"))
		if err != nil || teamID <= 0 {
			render.JSON(w, http.StatusBadRequest, errorJSON{Error: "team id must be a positive integer"})
			return
		}

		size, err := intParam(r, "size", defaultTeamWatchlistSize)
		if err != nil || size <= 0 {
			render.JSON(w, http.StatusBadRequest, errorJSON{Error: "size must be a positive integer"})
			return
		}

		filter, err := parsePlayerFilter(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
			return
		}

		players, err := ctrl.TeamWatchlist(r.Context(), teamID, size)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, toPlayersJSON(filter.apply(players)))
	}
}

func watchlistHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := intParam(r, "limit", defaultPageLimit)
		if err != nil || limit <= 0 {
			render.JSON(w, http.StatusBadRequest, errorJSON{Error: "limit must be a positive integer"})
			return
		}

		offset, err := intParam(r, "offset", 0)
		if err != nil || offset < 0 {
			render.JSON(w, http.StatusBadRequest, errorJSON{Error: "offset must be a non-negative integer"})
			return
		}

		var seasons []int
		for _, v := range r.URL.Query()["season"] {
			season, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				render.JSON(w, http.StatusBadRequest, errorJSON{Error: fmt.Sprintf("invalid season: %q", v)})
				return
			}
			seasons = append(seasons, season)
		}

		filter, err := parsePlayerFilter(r)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
			return
		}

		players, err := ctrl.WatchlistPlayers(r.Context(), limit, offset, seasons)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, toPlayersJSON(filter.apply(players)))
	}
}

func plusMinusHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			render.JSON(w, http.StatusBadRequest, errorJSON{Error: "name is required"})
			return
		}

		pm, ok := ctrl.LivePlusMinus(r.Context(), name)
		if !ok {
			render.JSON(w, http.StatusNotFound, errorJSON{Error: fmt.Sprintf("no live plus/minus for %s", name)})
			return
		}
		render.JSON(w, http.StatusOK, plusMinusJSON{Name: name, PlusMinus: pm})
	}
}

func intParam(r *http.Request, key string, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func renderError(render *render.Render, w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, watchlist.ErrUnsupportedSeason):
		status = http.StatusBadRequest
	case errors.Is(err, espn.ErrAccessDenied):
		status = http.StatusUnauthorized
	default:
		slog.Error("error calling espn", slog.Any("error", err))
	}
	render.JSON(w, status, errorJSON{Error: err.Error()})
}
