package cmd

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/Nunojmeira/espn-api/web"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd())
}

// serveCmd represents the serve command.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closer()

			server, err := web.NewServer(app.cfg.HTTP.Port, app.ctrl)
			if err != nil {
				return err
			}

			shutdown := make(chan bool)
			wg := &sync.WaitGroup{}

			// Setup a handler to catch ctrl-c signals and properly shutdown everything.
			intChannel := make(chan os.Signal, 2)
			signal.Notify(intChannel, os.Interrupt)
			go func() {
				<-intChannel
				close(shutdown)

				if err := waitTimeout(wg, 10*time.Second); err != nil {
					slog.Error("timed out waiting for proper shutdown")
					os.Exit(255)
				}
			}()

			// Keep the pro schedule used for player schedules fresh.
			wg.Add(1)
			go app.ctrl.RunPeriodicScheduleRefresh(app.cfg.ESPN.ScheduleRefresh, shutdown, wg)

			wg.Add(1)
			go server.ListenAndServe(shutdown, wg)

			// Wait for everything to stop.
			wg.Wait()
			slog.Info("server shutdown")
			return nil
		},
	}
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
