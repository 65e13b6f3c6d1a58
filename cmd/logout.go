// ABOUTME: Logout command clearing the persisted session
// ABOUTME: Purely local, the backend keeps no session state to revoke

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runLogout(context.Background(), os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears the session and returns an exit code.
func runLogout(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	id, _ := env.session.Current()
	if err := env.session.Clear(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if id == nil {
		fmt.Fprintln(w, "No session to clear.")
	} else {
		fmt.Fprintf(w, "Logged out %s.\n", id.Email)
	}
	return exitOK
}
