// ABOUTME: Login command establishing a session with the backend
// ABOUTME: Commits the returned identity and credential to persisted storage

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the marketplace",
	Long:  `Authenticate with the backend and persist the session for later commands.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}

// promptCredentials asks for whichever of email/password was not given
// as a flag.
func promptCredentials(email, password *string) error {
	var fields []huh.Field
	if *email == "" {
		fields = append(fields, huh.NewInput().Title("Email").Value(email))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeBase()).Run()
}

// runLogin executes the login flow and returns an exit code.
func runLogin(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if err := promptCredentials(&loginEmail, &loginPassword); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	res, err := env.client.Login(ctx, loginEmail, loginPassword)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if err := env.session.Commit(&res.User, res.AccessToken); err != nil {
		fmt.Fprintf(w, "Error: could not persist session: %v\n", err)
		return exitError
	}

	fmt.Fprintf(w, "Logged in as %s (%s)\n", res.User.Name, res.User.Role)
	return exitOK
}
