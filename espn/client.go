package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Nunojmeira/espn-api/model"
	"github.com/Nunojmeira/espn-api/watchlist"
	"github.com/itbasis/go-clock"
	"go.uber.org/ratelimit"
)

const (
	FantasyURL    = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fba"
	ScoreboardURL = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba/scoreboard"

	DefaultRateLimit = 5
	DefaultTimeout   = 30 * time.Second

	filterHeader = "x-fantasy-filter"
)

var (
	ErrAccessDenied     = errors.New("access denied, the league is private or the espn_s2/SWID cookies are wrong")
	ErrInvalidLeague    = errors.New("league does not exist")
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrNoPlayer         = errors.New("entry has no player")
)

// Client reads a single ESPN fantasy basketball league.
type Client interface {
	watchlist.Fetcher

	// LeagueGet reads the league endpoint and returns the raw body.
	LeagueGet(ctx context.Context, req Request) ([]byte, error)
	FetchLeague(ctx context.Context) (*model.League, error)
	FetchProSchedule(ctx context.Context) (model.ProSchedule, error)
	// LivePlusMinus looks up today's plus/minus for a player on the public
	// NBA scoreboard. Any failure is reported as not found.
	LivePlusMinus(ctx context.Context, playerName string) (float64, bool)
	Year() int
}

type Options struct {
	LeagueID int
	Year     int
	// Cookies for private leagues and the account watchlist.
	ESPNS2 string
	SWID   string
	// Requests per second sent to ESPN, DefaultRateLimit when zero.
	RateLimit int
	Timeout   time.Duration
	Clock     clock.Clock
}

func (o Options) hasCookies() bool {
	return o.ESPNS2 != "" && o.SWID != ""
}

type client struct {
	url           string
	scoreboardURL string
	opts          Options
	httpClient    *http.Client
	limiter       ratelimit.Limiter
	clock         clock.Clock
}

func New(opts Options) (Client, error) {
	if opts.LeagueID <= 0 {
		return nil, errors.New("a league id is required")
	}
	if opts.Year <= 0 {
		return nil, errors.New("a season year is required")
	}

	rate := opts.RateLimit
	if rate <= 0 {
		rate = DefaultRateLimit
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &client{
		url:           FantasyURL,
		scoreboardURL: ScoreboardURL,
		opts:          opts,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: ratelimit.New(rate),
		clock:   opts.Clock,
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	return c, nil
}

// NewForTest points the client at a fake server. The scoreboard is expected
// at url + "/scoreboard" and requests are not rate limited.
func NewForTest(url string, opts Options) Client {
	c := &client{
		url:           url,
		scoreboardURL: url + "/scoreboard",
		opts:          opts,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		limiter: ratelimit.NewUnlimited(),
		clock:   opts.Clock,
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	return c
}

func (c *client) Year() int {
	return c.opts.Year
}

// Request describes a read of the league endpoint.
type Request struct {
	// Appended to the league path, e.g. "/players".
	Extend string
	Views  []string
	Params url.Values
	// Marshalled to JSON and sent in the x-fantasy-filter header.
	Filter any
	// Overrides the configured year when set.
	Season int
}

func (c *client) leagueURL(season int) string {
	if season == 0 {
		season = c.opts.Year
	}
	return fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.url, season, c.opts.LeagueID)
}

func (c *client) LeagueGet(ctx context.Context, req Request) ([]byte, error) {
	params := url.Values{}
	for k, v := range req.Params {
		params[k] = append([]string(nil), v...)
	}
	for _, v := range req.Views {
		params.Add("view", v)
	}

	headers := map[string]string{}
	if req.Filter != nil {
		b, err := json.Marshal(req.Filter)
		if err != nil {
			return nil, fmt.Errorf("error encoding fantasy filter: %w", err)
		}
		headers[filterHeader] = string(b)
	}

	return c.get(ctx, c.leagueURL(req.Season)+req.Extend, params, headers)
}

func (c *client) get(ctx context.Context, u string, params url.Values, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if c.opts.hasCookies() {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.opts.ESPNS2})
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.opts.SWID})
	}

	c.limiter.Take()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	slog.Debug("espn request",
		slog.String("url", req.URL.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from espn: %w", err)
	}
	return body, nil
}

func checkStatus(code int) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrAccessDenied
	case http.StatusNotFound:
		return ErrInvalidLeague
	default:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, code)
	}
}
