// ABOUTME: Search command for approved providers
// ABOUTME: Filters by home service type or tutoring subject

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillserve/marketplace-cli/internal/client"
	"github.com/skillserve/marketplace-cli/internal/session"
)

var (
	searchServiceType string
	searchSubject     string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search approved providers",
	Long: `Search approved providers by home service type or tutoring subject.

Examples:
  skillserve search --service-type cleaning
  skillserve search --subject mathematics`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runSearch(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchServiceType, "service-type", "", "Home service type to search for")
	searchCmd.Flags().StringVar(&searchSubject, "subject", "", "Tutoring subject to search for")
}

// runSearch executes the provider search and returns an exit code.
func runSearch(ctx context.Context, w io.Writer) int {
	if searchServiceType == "" && searchSubject == "" {
		fmt.Fprintln(w, "Error: provide --service-type or --subject")
		return exitError
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	providers, err := env.client.SearchProviders(ctx, client.SearchQuery{
		ServiceType: searchServiceType,
		Subject:     searchSubject,
	})
	if err != nil {
		return reportError(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(providers, "", "  ")
		fmt.Fprintln(w, string(data))
		return exitOK
	}

	fmt.Fprintln(w, formatProvidersHuman(providers))
	return exitOK
}

// formatProvidersHuman renders a provider list as a table-ish block.
func formatProvidersHuman(providers []client.Provider) string {
	if len(providers) == 0 {
		return "No approved providers found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-5s %-20s %-8s %-22s %8s %7s %7s\n",
		"ID", "NAME", "ROLE", "CATEGORY", "PRICE", "RATING", "TRUST"))
	for _, p := range providers {
		rating := "-"
		if p.Role == session.RoleWorker && p.Rating > 0 {
			rating = fmt.Sprintf("%.1f", p.Rating)
		}
		if p.Role == session.RoleTutor && p.SkillScore > 0 {
			rating = fmt.Sprintf("%.1f", p.SkillScore)
		}
		sb.WriteString(fmt.Sprintf("%-5d %-20s %-8s %-22s %8.0f %7s %7.1f\n",
			p.ID, p.Name, p.Role, p.Category(), p.Price, rating, p.TrustScore))
	}
	sb.WriteString(fmt.Sprintf("\n%d provider(s). Book with 'skillserve book --provider <id>'.", len(providers)))
	return sb.String()
}
