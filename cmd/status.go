package cmd

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"washclub/cli/internal/logging"
	"washclub/cli/internal/store"
)

// statusCmd shows whether a session is stored.
var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"whoami"},
	Short:   "Show whether you're signed in",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd.Context(), func(ctx context.Context, a *app) error {
			st, err := a.restore(ctx, false)
			if err != nil {
				return err
			}
			printState(st)
			if st.SignedIn {
				if phone, ok, err := a.store.Get(ctx, store.KeyUserPhone); err == nil && ok {
					pterm.Printf("   Phone: %s\n", logging.MaskPhone(phone))
				}
			} else {
				pterm.Println("   Run 'washclub signin' to get started.")
			}
			pterm.Printf("   Store: %s\n", a.cfg.Store.Kind)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
