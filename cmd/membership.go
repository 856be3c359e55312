// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"washclub/cli/internal/membership"
)

var membershipCmd = &cobra.Command{
	Use:   "membership",
	Short: "Show your membership and the requests you can file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if ok, err := requireSignedIn(ctx, a); !ok || err != nil {
				return err
			}

			m := membership.MockMember
			body := strings.Join([]string{
				"Name:          " + m.Name(),
				"Membership:    " + m.MembershipType + " (" + m.Status + ")",
				"Barcode:       " + m.Barcode,
				"License plate: " + m.LicensePlate + " (" + m.State + ")",
				"Home location: " + m.HomeLocation,
				"Next billing:  " + m.NextBillingDate,
				"Last visit:    " + m.LastVisit,
			}, "\n")
			pterm.DefaultBox.
				WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Manage Membership")).
				WithPadding(1).
				Println(body)
			pterm.Println()
			pterm.Println("File a request with: washclub membership request <action> [details]")
			for _, o := range a.catalog.MembershipOptions() {
				pterm.Printf("  • %-8s %s\n", o.ID, o.Label)
			}
			return nil
		})
	},
}

var membershipRequestCmd = &cobra.Command{
	Use:   "request <action> [details...]",
	Short: "Change, pause or cancel your membership, update payment or e-mail a receipt",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if ok, err := requireSignedIn(ctx, a); !ok || err != nil {
				return err
			}

			action := strings.ToLower(args[0])
			if _, ok := a.catalog.Option(action); !ok {
				return fmt.Errorf("unknown request %q", args[0])
			}
			desk := membership.NewDesk(a.catalog, membership.WithLogger(a.log))

			frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
			stop := startInlineSpinner(os.Stdout, "Submitting your request", frames, 120*time.Millisecond)
			receipt, err := desk.Submit(ctx, action, strings.Join(args[1:], " "))
			stop()
			if err != nil {
				return err
			}
			pterm.Success.Println(receipt.Message)
			pterm.Printf("Request ID: %s\n", receipt.ID)
			return nil
		})
	},
}

func init() {
	membershipCmd.AddCommand(membershipRequestCmd)
	rootCmd.AddCommand(membershipCmd)
}
