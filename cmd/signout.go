// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"washclub/cli/internal/session"
)

var signoutForget bool

// signoutCmd clears the stored session.
var signoutCmd = &cobra.Command{
	Use:     "signout",
	Aliases: []string{"logout"},
	Short:   "Sign out and remove the stored session",
	Long: `The signout command removes the session token and profile from the store. It
always leaves you signed out, even when the store cannot be cleaned up fully.

Your phone number is remembered to prefill the next sign-in; pass --forget to
remove it too.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if _, err := a.restore(ctx, false); err != nil {
				return err
			}

			var opts []session.SignOutOption
			if signoutForget {
				opts = append(opts, session.ForgetPhone())
			}
			_ = a.withSpinner("Signing out", func() error {
				a.session.SignOut(ctx, opts...)
				return nil
			})
			pterm.Println("👋 You're signed out.")
			return nil
		})
	},
}

func init() {
	signoutCmd.Flags().BoolVar(&signoutForget, "forget", false, "Also forget the remembered phone number")
	rootCmd.AddCommand(signoutCmd)
}
