// ABOUTME: Book command for creating a booking with a provider
// ABOUTME: Customers only; providers manage bookings via the bookings command

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

	"github.com/skillserve/marketplace-cli/internal/client"
	"github.com/skillserve/marketplace-cli/internal/session"
)

var (
	bookProviderID  int64
	bookServiceType string
	bookSubject     string
	bookPrice       float64
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a provider",
	Long: `Create a booking with a worker or tutor found via 'skillserve search'.

Examples:
  skillserve book --provider 12 --service-type cleaning --price 500
  skillserve book --provider 7 --service-type tutoring --subject mathematics --price 800`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBook(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(bookCmd)
	bookCmd.Flags().Int64Var(&bookProviderID, "provider", 0, "Provider ID (required)")
	bookCmd.Flags().StringVar(&bookServiceType, "service-type", "", "Service type being booked (required)")
	bookCmd.Flags().StringVar(&bookSubject, "subject", "", "Subject, for tutoring bookings")
	bookCmd.Flags().Float64Var(&bookPrice, "price", 0, "Agreed total price")
	bookCmd.MarkFlagRequired("provider")
	bookCmd.MarkFlagRequired("service-type")
}

// runBook creates the booking and returns an exit code.
func runBook(ctx context.Context, w io.Writer) int {
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
		fmt.Fprintln(w, "Only customers can create bookings.")
		return exitFailed
	}

	booking, err := env.client.CreateBooking(ctx, client.BookingInput{
		ProviderID:  bookProviderID,
		ServiceType: bookServiceType,
		Subject:     bookSubject,
		TotalPrice:  bookPrice,
	})
	if err != nil {
		return reportError(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(booking, "", "  ")
		fmt.Fprintln(w, string(data))
		return exitOK
	}

	fmt.Fprintf(w, "Booking #%d created (%s). The provider must accept it before work starts.\n",
		booking.ID, booking.Status)
	return exitOK
}
