// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"washclub/cli/internal/session"
	"washclub/cli/internal/store"
	"washclub/cli/internal/terminal"
)

var signinAgree bool

// signinCmd signs a member in with their mobile phone number.
var signinCmd = &cobra.Command{
	Use:     "signin [phone]",
	Aliases: []string{"login"},
	Short:   "Sign in with your mobile phone number",
	Long: `The signin command signs you in with your mobile phone number and keeps the
session in the configured store, so later commands start signed in.

The phone number used last time is offered as the default. You must agree to the
Terms & Conditions, either at the prompt or with --agree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd.Context(), func(ctx context.Context, a *app) error {
			st, err := a.restore(ctx, false)
			if err != nil {
				return err
			}
			if st.SignedIn {
				pterm.Println("✅ You're already signed in.")
				pterm.Println("   Run 'washclub signout' first to switch accounts.")
				return nil
			}

			p := terminal.NewPrompter(os.Stdin, os.Stdout)
			phone, err := phoneArg(ctx, a, p, args)
			if err != nil {
				return err
			}
			if !signinAgree {
				answer, err := p.Ask("Do you agree to the Terms & Conditions? [y/N] ")
				if err != nil {
					return err
				}
				if !isYes(answer) {
					pterm.Println("You need to agree to the Terms & Conditions to continue.")
					return nil
				}
			}

			err = a.withSpinner("Signing in", func() error {
				return a.session.SignIn(ctx, phone)
			})
			if errors.Is(err, session.ErrAlreadySignedIn) {
				pterm.Println("✅ You're already signed in.")
				return nil
			}
			if err != nil {
				reportAuthError(a, "signing in", err)
				return err
			}
			pterm.Println("✅ Welcome back to Elite Express!")
			pterm.Println("   Run 'washclub home' to see what you can do.")
			return nil
		})
	},
}

// phoneArg returns the phone from args or asks for it, offering the phone
// remembered from the last sign-in.
func phoneArg(ctx context.Context, a *app, p *terminal.Prompter, args []string) (string, error) {
	if len(args) == 1 {
		if phone := strings.TrimSpace(args[0]); phone != "" {
			return phone, nil
		}
	}
	last, _, err := a.store.Get(ctx, store.KeyUserPhone)
	if err != nil {
		a.log.Debug("remembered phone unavailable", "error", err)
		last = ""
	}
	for {
		phone, err := p.AskDefault("Mobile phone number: ", last)
		if err != nil {
			return "", err
		}
		if phone != "" {
			return phone, nil
		}
		pterm.Println("Please enter your mobile phone number.")
	}
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}

func init() {
	signinCmd.Flags().BoolVar(&signinAgree, "agree", false, "Agree to the Terms & Conditions without prompting")
	rootCmd.AddCommand(signinCmd)
}
