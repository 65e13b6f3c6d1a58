// ABOUTME: Bookings command for listing bookings and moving them through statuses
// ABOUTME: Subcommands accept, complete, and cancel mirror the backend's transitions

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillserve/marketplace-cli/internal/client"
	"github.com/skillserve/marketplace-cli/internal/session"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List your bookings",
	Long: `List bookings where you are the customer or the provider, newest first.

Use the subcommands to change a booking's status:
  skillserve bookings accept 4     (provider accepts a pending booking)
  skillserve bookings complete 4   (mark an accepted booking done)
  skillserve bookings cancel 4`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runBookingsList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var bookingsAcceptCmd = &cobra.Command{
	Use:   "accept <booking-id>",
	Short: "Accept a pending booking (providers only)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBookingsTransition(args[0], client.BookingAccepted)
	},
}

var bookingsCompleteCmd = &cobra.Command{
	Use:   "complete <booking-id>",
	Short: "Mark an accepted booking as completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBookingsTransition(args[0], client.BookingCompleted)
	},
}

var bookingsCancelCmd = &cobra.Command{
	Use:   "cancel <booking-id>",
	Short: "Cancel a pending or accepted booking",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBookingsTransition(args[0], client.BookingCancelled)
	},
}

func init() {
	rootCmd.AddCommand(bookingsCmd)
	bookingsCmd.AddCommand(bookingsAcceptCmd)
	bookingsCmd.AddCommand(bookingsCompleteCmd)
	bookingsCmd.AddCommand(bookingsCancelCmd)
}

func runBookingsTransition(rawID, status string) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	exitCode := runBookingsUpdate(ctx, os.Stdout, rawID, status)
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// runBookingsList shows the caller's bookings and returns an exit code.
func runBookingsList(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	id, ok := env.requireIdentity(w)
	if !ok {
		return exitAuth
	}

	bookings, err := env.client.Bookings(ctx)
	if err != nil {
		return reportError(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(bookings, "", "  ")
		fmt.Fprintln(w, string(data))
		return exitOK
	}

	fmt.Fprintln(w, formatBookingsHuman(bookings, id))
	return exitOK
}

// runBookingsUpdate applies a status transition and returns an exit code.
func runBookingsUpdate(ctx context.Context, w io.Writer, rawID, status string) int {
	bookingID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Fprintf(w, "Error: invalid booking ID %q\n", rawID)
		return exitError
	}

	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if _, ok := env.requireIdentity(w); !ok {
		return exitAuth
	}

	booking, err := env.client.UpdateBookingStatus(ctx, bookingID, status)
	if err != nil {
		return reportError(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(booking, "", "  ")
		fmt.Fprintln(w, string(data))
		return exitOK
	}

	fmt.Fprintf(w, "Booking #%d is now %s.\n", booking.ID, booking.Status)
	if booking.Status == client.BookingCompleted {
		fmt.Fprintf(w, "Rate the provider with 'skillserve rate --provider %d --booking %d --score <1-5>'.\n",
			booking.ProviderID, booking.ID)
	}
	return exitOK
}

// formatBookingsHuman renders the booking list with the actions the
// backend would accept from this identity.
func formatBookingsHuman(bookings []client.Booking, id *session.Identity) string {
	if len(bookings) == 0 {
		return "No bookings yet."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-5s %-22s %10s %-10s %-9s %s\n",
		"ID", "SERVICE", "PRICE", "STATUS", "SIDE", "ACTIONS"))
	for _, b := range bookings {
		service := b.ServiceType
		if b.Subject != "" {
			service = fmt.Sprintf("%s (%s)", b.ServiceType, b.Subject)
		}
		side := "customer"
		if id != nil && b.ProviderID == id.ID {
			side = "provider"
		}
		actions := strings.Join(client.AllowedBookingActions(b, id), ", ")
		if actions == "" {
			actions = "-"
		}
		sb.WriteString(fmt.Sprintf("%-5d %-22s %10.0f %-10s %-9s %s\n",
			b.ID, service, b.TotalPrice, b.Status, side, actions))
	}
	sb.WriteString(fmt.Sprintf("\n%d booking(s).", len(bookings)))
	return sb.String()
}
