// ABOUTME: Rate command for scoring a provider after a completed booking
// ABOUTME: Scores are 1-5; the backend folds them into the provider's trust score

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
	"github.com/skillserve/marketplace-cli/internal/session"
)

var (
	rateProviderID int64
	rateBookingID  int64
	rateScore      int
	rateComment    string
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Rate a provider",
	Long: `Submit a 1-5 rating for a provider, optionally tied to a booking.

Example:
  skillserve rate --provider 12 --booking 4 --score 5 --comment "Spotless work"`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(rateCmd)
	rateCmd.Flags().Int64Var(&rateProviderID, "provider", 0, "Provider ID (required)")
	rateCmd.Flags().Int64Var(&rateBookingID, "booking", 0, "Booking the rating refers to")
	rateCmd.Flags().IntVar(&rateScore, "score", 0, "Score from 1 to 5 (required)")
	rateCmd.Flags().StringVar(&rateComment, "comment", "", "Optional comment")
	rateCmd.MarkFlagRequired("provider")
	rateCmd.MarkFlagRequired("score")
}

// runRate submits the rating and returns an exit code.
func runRate(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	id, ok := env.requireIdentity(w)
	if !ok {
		return exitAuth
	}
	if id.Role != session.RoleCustomer {
		fmt.Fprintln(w, "Only customers can rate providers.")
		return exitFailed
	}

	err = env.client.SubmitRating(ctx, client.RatingInput{
		ProviderID: rateProviderID,
		BookingID:  rateBookingID,
		Score:      float64(rateScore),
		Comment:    rateComment,
	})
	if err != nil {
		return reportError(w, err)
	}

	fmt.Fprintf(w, "Rated provider #%d: %d/5.\n", rateProviderID, rateScore)
	return exitOK
}
