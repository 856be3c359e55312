package cmd

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"washclub/cli/internal/account"
	"washclub/cli/internal/navigator"
	"washclub/cli/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if ok, err := requireSignedIn(ctx, a); !ok || err != nil {
				return err
			}
			profile := loadProfile(ctx, a)

			lines := []string{profile.DisplayName()}
			if profile.PhoneNumber != "" {
				lines = append(lines, "Phone:   "+profile.PhoneNumber)
			}
			if profile.Email != "" {
				lines = append(lines, "E-mail:  "+profile.Email)
			}
			if addr := profile.Address(); addr != "" {
				lines = append(lines, "Address: "+addr)
			}
			pterm.DefaultBox.
				WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Profile")).
				WithPadding(1).
				Println(strings.Join(lines, "\n"))
			pterm.Println()
			for _, line := range navigator.MenuLines(navigator.ProfileMenu) {
				pterm.Println(line)
			}
			return nil
		})
	},
}

// loadProfile reads the profile recorded at sign-up, falling back to the
// phone remembered from sign-in.
func loadProfile(ctx context.Context, a *app) account.Profile {
	var p account.Profile
	if raw, ok, err := a.store.Get(ctx, store.KeyUserData); err == nil && ok {
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			a.log.Warn("stored profile is unreadable", "error", err)
		}
	}
	if p.PhoneNumber == "" {
		if phone, ok, err := a.store.Get(ctx, store.KeyUserPhone); err == nil && ok {
			p.PhoneNumber = phone
		}
	}
	return p
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
