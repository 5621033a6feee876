package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Nunojmeira/espn-api/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// ESPN can be slow, a single request may fan out to a few upstream calls.
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/league", leagueHandler(ctrl, render))
	r.Get("/watchlist", watchlistHandler(ctrl, render))
	r.Get("/teams/{teamID:\\d+}/watchlist", teamWatchlistHandler(ctrl, render))
	r.Get("/players/plus-minus", plusMinusHandler(ctrl, render))

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			slog.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("took", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())))
		}()

		next.ServeHTTP(ww, r)
	})
}
