// ABOUTME: Services command listing bookable categories
// ABOUTME: Home service types for workers, subjects for tutors

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
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List service types and tutoring subjects",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runServices(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}

// runServices lists the catalog and returns an exit code.
func runServices(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	types, err := env.client.ServiceTypes(ctx)
	if err != nil {
		return reportError(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(types, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatServicesHuman(types))
	}
	return exitOK
}

// formatServicesHuman formats the catalog for human readability
func formatServicesHuman(types *client.ServiceTypes) string {
	return fmt.Sprintf(`Home services: %s
Tutoring:      %s`,
		strings.Join(types.HomeServices, ", "),
		strings.Join(types.TutorSubjects, ", "))
}
