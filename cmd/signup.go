// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"washclub/cli/internal/account"
	"washclub/cli/internal/session"
	"washclub/cli/internal/terminal"
)

var signupProfile account.Profile

// signupCmd registers a new member.
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an Elite Express account",
	Long: `The signup command creates an account and signs you in. Fields not given as
flags are asked for interactively; phone number and e-mail are required.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd.Context(), func(ctx context.Context, a *app) error {
			st, err := a.restore(ctx, false)
			if err != nil {
				return err
			}
			if st.SignedIn {
				pterm.Println("✅ You're already signed in.")
				return nil
			}

			profile := signupProfile
			if err := completeProfile(terminal.NewPrompter(os.Stdin, os.Stdout), &profile); err != nil {
				return err
			}

			err = a.withSpinner("Creating your account", func() error {
				return a.session.SignUp(ctx, profile)
			})
			if errors.Is(err, session.ErrAlreadySignedIn) {
				pterm.Println("✅ You're already signed in.")
				return nil
			}
			if err != nil {
				reportAuthError(a, "signing up", err)
				return err
			}
			pterm.Printf("✅ Welcome to Elite Express, %s!\n", profile.DisplayName())
			return nil
		})
	},
}

type profileField struct {
	label    string
	value    *string
	required bool
}

// completeProfile asks for every field still empty.
func completeProfile(p *terminal.Prompter, profile *account.Profile) error {
	fields := []profileField{
		{label: "First Name", value: &profile.FirstName},
		{label: "Last Name", value: &profile.LastName},
		{label: "Phone Number *", value: &profile.PhoneNumber, required: true},
		{label: "E-mail address *", value: &profile.Email, required: true},
		{label: "Street Address", value: &profile.StreetAddress},
		{label: "ZipCode", value: &profile.ZipCode},
		{label: "State", value: &profile.State},
		{label: "City", value: &profile.City},
	}
	for _, f := range fields {
		for *f.value == "" {
			v, err := p.Ask(f.label + ": ")
			if err != nil {
				return fmt.Errorf("read %s: %w", f.label, err)
			}
			*f.value = v
			if !f.required {
				break
			}
		}
	}
	return nil
}

func init() {
	f := signupCmd.Flags()
	f.StringVar(&signupProfile.FirstName, "first-name", "", "First name")
	f.StringVar(&signupProfile.LastName, "last-name", "", "Last name")
	f.StringVar(&signupProfile.PhoneNumber, "phone", "", "Mobile phone number")
	f.StringVar(&signupProfile.Email, "email", "", "E-mail address")
	f.StringVar(&signupProfile.StreetAddress, "street", "", "Street address")
	f.StringVar(&signupProfile.ZipCode, "zip", "", "Zip code")
	f.StringVar(&signupProfile.State, "state", "", "State")
	f.StringVar(&signupProfile.City, "city", "", "City")
	rootCmd.AddCommand(signupCmd)
}
