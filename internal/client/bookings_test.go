// ABOUTME: Tests for client-side booking transition rules
// ABOUTME: Screens rely on these to only offer actions the backend accepts

package client

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillserve/marketplace-cli/internal/session"
)

func TestAllowedBookingActions(t *testing.T) {
	customer := &session.Identity{ID: 1, Role: session.RoleCustomer}
	provider := &session.Identity{ID: 5, Role: session.RoleWorker}
	stranger := &session.Identity{ID: 99, Role: session.RoleCustomer}

	booking := func(status string) Booking {
		return Booking{ID: 11, CustomerID: 1, ProviderID: 5, Status: status}
	}

	tests := []struct {
		name string
		b    Booking
		id   *session.Identity
		want []string
	}{
		{"provider accepts or declines pending", booking(BookingPending), provider, []string{BookingAccepted, BookingCancelled}},
		{"customer can only cancel pending", booking(BookingPending), customer, []string{BookingCancelled}},
		{"either party finishes accepted", booking(BookingAccepted), customer, []string{BookingCompleted, BookingCancelled}},
		{"provider finishes accepted", booking(BookingAccepted), provider, []string{BookingCompleted, BookingCancelled}},
		{"completed is terminal", booking(BookingCompleted), provider, nil},
		{"cancelled is terminal", booking(BookingCancelled), customer, nil},
		{"uninvolved identity gets nothing", booking(BookingPending), stranger, nil},
		{"nil identity gets nothing", booking(BookingPending), nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AllowedBookingActions(tt.b, tt.id))
		})
	}
}
