// ABOUTME: Health command for checking backend reachability
// ABOUTME: Useful as a first diagnostic when other commands fail

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the backend is reachable",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth pings the backend and returns an exit code.
func runHealth(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if err := env.client.Health(ctx); err != nil {
		fmt.Fprintf(w, "Backend at %s is not healthy: %v\n", env.client.BaseURL(), err)
		return exitFailed
	}

	fmt.Fprintf(w, "Backend at %s is healthy.\n", env.client.BaseURL())
	return exitOK
}
