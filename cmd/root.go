// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the washclub CLI.
// It stands in for the Elite Express mobile client: every command restores
// the stored session first, shows a loading indicator while a session
// operation runs, and only opens member screens when signed in.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"washclub/cli/internal/logging"
)

var (
	showVersion   bool
	verbose       bool
	storeOverride string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "washclub",
	Short:         "Elite Express car wash club in your terminal",
	Long:          `washclub signs you in to the Elite Express wash club, keeps the session in your OS keychain (or another configured store) and lets you browse washes, plans, locations and your membership.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("washclub %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Interrupts cancel the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("error", err))
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&storeOverride, "store", "", "Session store: keychain, file, memory, redis or sql")
}
