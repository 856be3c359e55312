// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"washclub/cli/internal/catalog"
)

var (
	washBuy    string
	planSelect string
)

var washesCmd = &cobra.Command{
	Use:   "washes",
	Short: "Buy a single wash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if ok, err := requireSignedIn(ctx, a); !ok || err != nil {
				return err
			}
			if washBuy != "" {
				w, ok := a.catalog.Wash(washBuy)
				if !ok {
					return fmt.Errorf("unknown wash %q", washBuy)
				}
				pterm.Printf("Thank you for your purchase! (%s, %s)\n", w.Name, catalog.FormatPrice(w.PriceCents))
				return nil
			}
			pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Select a Wash Package"))
			return renderTable(washRows(a.catalog.Washes()))
		})
	},
}

var plansCmd = &cobra.Command{
	Use:     "plans",
	Aliases: []string{"unlimited"},
	Short:   "Browse unlimited wash plans",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if ok, err := requireSignedIn(ctx, a); !ok || err != nil {
				return err
			}
			if planSelect != "" {
				p, ok := a.catalog.Plan(planSelect)
				if !ok {
					return fmt.Errorf("unknown plan %q", planSelect)
				}
				pterm.Printf("You selected %s! In the future, you'll select a vehicle here.\n", p.Name)
				return nil
			}
			pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Select an Unlimited Subscription"))
			pterm.Println("Wash your car as often as you like with our unlimited plans")
			return renderTable(planRows(a.catalog.Plans()))
		})
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List Elite Express locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if ok, err := requireSignedIn(ctx, a); !ok || err != nil {
				return err
			}
			return renderTable(locationRows(a.catalog.Locations()))
		})
	},
}

func washRows(ws []catalog.Wash) pterm.TableData {
	rows := pterm.TableData{{"ID", "Wash", "Price", "Includes"}}
	for _, w := range ws {
		rows = append(rows, []string{w.ID, w.Name, catalog.FormatPrice(w.PriceCents), strings.Join(w.Features, ", ")})
	}
	return rows
}

func planRows(ps []catalog.Plan) pterm.TableData {
	rows := pterm.TableData{{"ID", "Plan", "Price", "Includes"}}
	for _, p := range ps {
		name := p.Name
		if p.Recommended {
			name += " ★ Most Popular"
		}
		rows = append(rows, []string{p.ID, name, catalog.FormatPrice(p.PriceCents) + "/month", strings.Join(p.Features, ", ")})
	}
	return rows
}

func locationRows(ls []catalog.Location) pterm.TableData {
	rows := pterm.TableData{{"ID", "Location", "Address", "Coordinates"}}
	for _, l := range ls {
		rows = append(rows, []string{l.ID, l.Name, l.Address, fmt.Sprintf("%.6f, %.6f", l.Latitude, l.Longitude)})
	}
	return rows
}

func renderTable(rows pterm.TableData) error {
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func init() {
	washesCmd.Flags().StringVar(&washBuy, "buy", "", "Buy the wash with this ID")
	plansCmd.Flags().StringVar(&planSelect, "select", "", "Select the plan with this ID")
	rootCmd.AddCommand(washesCmd, plansCmd, locationsCmd)
}
