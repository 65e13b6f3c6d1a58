// ABOUTME: Register command creating a marketplace account
// ABOUTME: Commits the new session immediately, matching backend behavior

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillserve/marketplace-cli/internal/client"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
	registerRole     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a marketplace account",
	Long: `Create an account and log in immediately.

Roles:
  customer - book home services and tutoring
  worker   - offer a home service (requires a profile before appearing in search)
  tutor    - offer tutoring (requires a profile before appearing in search)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerRole, "role", "customer", "Account role: customer, worker, or tutor")
}

// runRegister executes registration and returns an exit code.
func runRegister(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if err := promptCredentials(&registerEmail, &registerPassword); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	if registerName == "" {
		registerName = registerEmail
	}

	res, err := env.client.Register(ctx, client.RegisterInput{
		Name:     registerName,
		Email:    registerEmail,
		Password: registerPassword,
		Role:     registerRole,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if err := env.session.Commit(&res.User, res.AccessToken); err != nil {
		fmt.Fprintf(w, "Error: could not persist session: %v\n", err)
		return exitError
	}

	fmt.Fprintf(w, "Registered %s as %s\n", res.User.Email, res.User.Role)
	if res.User.Role != "customer" {
		fmt.Fprintln(w, "Create a profile with 'skillserve profile create' to appear in search.")
	}
	return exitOK
}
