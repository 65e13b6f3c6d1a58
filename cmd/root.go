// ABOUTME: Root command for the skillserve CLI
// ABOUTME: Handles global flags and shared wiring of config, session, and client

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/skillserve/marketplace-cli/internal/client"
	"github.com/skillserve/marketplace-cli/internal/config"
	"github.com/skillserve/marketplace-cli/internal/debuglog"
	"github.com/skillserve/marketplace-cli/internal/session"
	"github.com/skillserve/marketplace-cli/internal/storage"
)

var (
	apiURL     string
	jsonOutput bool
)

// Exit codes shared by all subcommands.
const (
	exitOK     = 0
	exitFailed = 1
	exitError  = 2
	exitAuth   = 3
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "skillserve",
	Short: "CLI for the SkillServe marketplace",
	Long: `skillserve is a command-line client for the SkillServe home-services
and tutoring marketplace.

Customers search providers, book services, chat with the assistant, and rate
completed work. Workers and tutors create profiles and manage incoming bookings.

Exit codes:
  0 - Success
  1 - The requested action was refused
  2 - Error (connectivity, invalid input)
  3 - Authentication required (log in first)

Environment Variables:
  SKILLSERVE_API_URL     Backend API URL (default: http://localhost:8000)
  SKILLSERVE_CONFIG_DIR  Where session state is kept (default: XDG config dir)
  SKILLSERVE_TIMEOUT     Per-request timeout (default: 30s)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides SKILLSERVE_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// appEnv bundles what every subcommand needs: configuration, the
// session store (already loaded), and the API client wired to the same
// persisted storage.
type appEnv struct {
	cfg     *config.Config
	session *session.Store
	client  *client.Client
	store   storage.Store
}

// newAppEnv builds the shared wiring. The --api-url flag wins over the
// environment, which wins over the default.
func newAppEnv(ctx context.Context) (*appEnv, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	if cfg.Debug {
		if err := debuglog.Init(cfg.ConfigDir, cfg.LogLevel); err != nil {
			return nil, fmt.Errorf("debug log: %w", err)
		}
	}

	store := storage.NewFileStore(cfg.ConfigDir)
	sess := session.New(store)
	sess.Load()

	c := client.New(cfg.APIURL, store)
	c.SetTimeout(cfg.Timeout)

	return &appEnv{cfg: cfg, session: sess, client: c, store: store}, nil
}

// requireIdentity enforces the guard shared by all authenticated
// commands: without a session there is nothing to call the backend as.
func (env *appEnv) requireIdentity(w io.Writer) (*session.Identity, bool) {
	id, loading := env.session.Current()
	if loading || id == nil {
		fmt.Fprintln(w, "Not logged in. Run 'skillserve login' first.")
		return nil, false
	}
	return id, true
}

// reportError prints err and picks the exit code: authorization
// failures mean the pipeline already cleared the session, so tell the
// user to log back in rather than showing a raw error.
func reportError(w io.Writer, err error) int {
	debuglog.Error("api request", err)
	if client.IsUnauthorized(err) {
		fmt.Fprintln(w, "Session expired. Run 'skillserve login' to sign in again.")
		return exitAuth
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return exitError
}
