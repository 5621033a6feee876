package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Nunojmeira/espn-api/espn"
	"github.com/Nunojmeira/espn-api/model"
	"github.com/Nunojmeira/espn-api/watchlist"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// Scoring periods averaged in the AVG column.
const recentPeriods = 7

func init() {
	rootCmd.AddCommand(teamWatchlistCmd())
	rootCmd.AddCommand(watchlistCmd())
}

func teamWatchlistCmd() *cobra.Command {
	var teamID, size int

	cmd := &cobra.Command{
		Use:   "team-watchlist",
		Short: "Print the players a fantasy team is watching",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size <= 0 {
				return fmt.Errorf("size must be positive, got %d", size)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closer()

			players, err := app.ctrl.TeamWatchlist(cmd.Context(), teamID, size)
			if err != nil {
				return err
			}
			return renderPlayers(cmd.OutOrStdout(), players)
		},
	}
	cmd.Flags().IntVar(&teamID, "team", watchlist.AnyTeam, "fantasy team id, 0 for every team")
	cmd.Flags().IntVar(&size, "size", 40, "maximum number of players")

	return cmd
}

func watchlistCmd() *cobra.Command {
	var limit, offset int
	var seasons []int

	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Print the signed in account's watchlist",
		Long: `Print the watchlist of the account the espn_s2 and SWID cookies belong to.
Without --season the league year is tried first and then the following one.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 || offset < 0 {
				return fmt.Errorf("invalid page: limit %d, offset %d", limit, offset)
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closer()

			if !app.cfg.ESPN.HasCookies() {
				return fmt.Errorf("watchlist needs --espn-s2 and --swid: %w", espn.ErrAccessDenied)
			}

			players, err := app.ctrl.WatchlistPlayers(cmd.Context(), limit, offset, seasons)
			if err != nil {
				return err
			}
			return renderPlayers(cmd.OutOrStdout(), players)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 25, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	cmd.Flags().IntSliceVar(&seasons, "season", nil, "seasons to try in order, may be repeated")

	return cmd
}

func renderPlayers(w io.Writer, players []model.Player) error {
	if len(players) == 0 {
		_, err := fmt.Fprintln(w, "No players found")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Pos", "Team", "Status", "Avg")

	for i := range players {
		p := &players[i]

		team := model.TEAM_FA.String()
		if p.ProTeam != nil {
			team = p.ProTeam.String()
		}

		avg := "-"
		if v, n := p.RecentAverage(recentPeriods); n > 0 {
			avg = strconv.FormatFloat(v, 'f', 1, 64)
		}

		err := table.Append([]string{strconv.Itoa(p.ID), p.Name, string(p.Position), team, p.InjuryStatus, avg})
		if err != nil {
			return fmt.Errorf("error adding table row: %w", err)
		}
	}
	return table.Render()
}
