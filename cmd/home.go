package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// homeCmd restores the session and prints the menu for the resulting stack:
// sign-in options when signed out, the home menu when signed in.
var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the menu for your session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd.Context(), func(ctx context.Context, a *app) error {
			_, err := a.restore(ctx, true)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
