// ABOUTME: Dashboard command launching the interactive TUI
// ABOUTME: The full marketplace flow lives here; subcommands cover scripted use

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillserve/marketplace-cli/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive marketplace dashboard",
	Long: `Open the interactive terminal dashboard.

Without a stored session the dashboard starts on the login screen.
Customers search and book providers, chat with the assistant, and rate
completed bookings. Workers and tutors create profiles and manage
incoming bookings.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runDashboard(context.Background(), os.Stderr)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// runDashboard wires the shared app environment into the TUI and runs
// it until the user quits. Errors go to w, never the alt screen.
func runDashboard(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if err := tui.Run(env.client, env.session, env.store); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}
