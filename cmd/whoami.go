// ABOUTME: Whoami command showing the identity behind the current session
// ABOUTME: Confirms the credential against the backend, not just local state

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillserve/marketplace-cli/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in identity",
	Long:  `Show the identity the backend associates with the stored credential.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami fetches and prints the current identity.
func runWhoami(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if _, ok := env.requireIdentity(w); !ok {
		return exitAuth
	}

	id, err := env.client.Me(ctx)
	if err != nil {
		return reportError(w, err)
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatIdentityJSON(id))
	} else {
		fmt.Fprintln(w, formatIdentityHuman(id))
	}
	return exitOK
}

// formatIdentityHuman formats an identity for human readability
func formatIdentityHuman(id *session.Identity) string {
	return fmt.Sprintf(`Name:        %s
Email:       %s
Role:        %s
Trust Score: %.1f
Member Since: %s`, id.Name, id.Email, id.Role, id.TrustScore, id.CreatedAt)
}

// formatIdentityJSON formats an identity as JSON
func formatIdentityJSON(id *session.Identity) string {
	data, _ := json.MarshalIndent(id, "", "  ")
	return string(data)
}
