package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(plusMinusCmd())
}

func plusMinusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plus-minus NAME",
		Short: "Print a player's plus/minus from today's NBA games",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.closer()

			pm, ok := app.ctrl.LivePlusMinus(cmd.Context(), name)
			if !ok {
				return fmt.Errorf("no plus/minus found for %s today", name)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %+g\n", name, pm)
			return err
		},
	}
}
