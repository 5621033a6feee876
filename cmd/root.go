// Package cmd implements the command line interface.
//
// serve - Run the JSON API and keep the pro schedule fresh
// team-watchlist - Print a fantasy team's watchlist
// watchlist - Print the signed in account's watchlist
// plus-minus - Print a player's plus/minus from today's games
package cmd

import (
	"fmt"
	"os"

	"github.com/Nunojmeira/espn-api/config"
	"github.com/Nunojmeira/espn-api/controller"
	"github.com/Nunojmeira/espn-api/espn"
	"github.com/Nunojmeira/espn-api/log"
	"github.com/itbasis/go-clock"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	v       = config.New()

	// Replaced in tests.
	newESPNClient = espn.New
	newClock      = clock.New
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "espnwl",
	Short:         "Watchlists and live stats for ESPN fantasy basketball leagues",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/espnwl.yaml)")
	flags.Int("league-id", 0, "ESPN league id")
	flags.Int("year", 0, "season year, e.g. 2025 for the 2024-25 season")
	flags.String("espn-s2", "", "espn_s2 cookie for private leagues")
	flags.String("swid", "", "SWID cookie for private leagues")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	bindings := map[string]string{
		"espn.league_id": "league-id",
		"espn.year":      "year",
		"espn.espn_s2":   "espn-s2",
		"espn.swid":      "swid",
		"log.level":      "log-level",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("error binding flag %s: %v", flag, err))
		}
	}
}

type app struct {
	cfg    *config.Config
	ctrl   controller.C
	closer func()
}

func newApp() (*app, error) {
	cfg, err := config.Read(v, cfgFile)
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	closer := log.MustCreateLogger(cfg.Log.File, level)

	clock := newClock()
	client, err := newESPNClient(espn.Options{
		LeagueID:  cfg.ESPN.LeagueID,
		Year:      cfg.ESPN.Year,
		ESPNS2:    cfg.ESPN.ESPNS2,
		SWID:      cfg.ESPN.SWID,
		RateLimit: cfg.ESPN.RateLimit,
		Timeout:   cfg.ESPN.Timeout,
		Clock:     clock,
	})
	if err != nil {
		closer()
		return nil, fmt.Errorf("error creating espn client: %w", err)
	}

	ctrl, err := controller.New(clock, client)
	if err != nil {
		closer()
		return nil, fmt.Errorf("error creating controller: %w", err)
	}

	return &app{cfg: cfg, ctrl: ctrl, closer: closer}, nil
}
