// ABOUTME: Booking creation, listing, and status transitions
// ABOUTME: Mirrors the backend's transition rules so screens only offer legal actions

package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/skillserve/marketplace-cli/internal/session"
)

// Booking status values. A booking moves pending → accepted →
// completed, or to cancelled from either of the first two.
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// BookingInput is the payload for creating a booking. Subject is set
// for tutor bookings.
type BookingInput struct {
	ProviderID  int64   `json:"provider_id" validate:"required"`
	ServiceType string  `json:"service_type" validate:"required"`
	Subject     string  `json:"subject,omitempty"`
	TotalPrice  float64 `json:"total_price" validate:"gte=0"`
}

// Booking is the backend's booking record.
type Booking struct {
	ID          int64   `json:"id"`
	CustomerID  int64   `json:"customer_id"`
	ProviderID  int64   `json:"provider_id"`
	ServiceType string  `json:"service_type"`
	Subject     string  `json:"subject,omitempty"`
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

// CreateBooking calls POST /api/bookings.
func (c *Client) CreateBooking(ctx context.Context, in BookingInput) (*Booking, error) {
	if err := c.validateInput(in); err != nil {
		return nil, err
	}
	var out Booking
	if err := c.sendJSON(ctx, http.MethodPost, "/api/bookings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bookings calls GET /api/bookings. The backend returns bookings where
// the caller is either customer or provider, newest first.
func (c *Client) Bookings(ctx context.Context) ([]Booking, error) {
	var out []Booking
	if err := c.getJSON(ctx, "/api/bookings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateBookingStatus calls PATCH /api/bookings/{id}.
func (c *Client) UpdateBookingStatus(ctx context.Context, id int64, status string) (*Booking, error) {
	switch status {
	case BookingAccepted, BookingCompleted, BookingCancelled:
	default:
		return nil, fmt.Errorf("invalid booking status %q", status)
	}

	in := struct {
		Status string `json:"status"`
	}{Status: status}

	var out Booking
	path := fmt.Sprintf("/api/bookings/%d", id)
	if err := c.sendJSON(ctx, http.MethodPatch, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllowedBookingActions returns the status transitions the backend
// would accept from this identity: only the provider accepts a pending
// booking, and either party may complete or cancel.
func AllowedBookingActions(b Booking, id *session.Identity) []string {
	if id == nil {
		return nil
	}
	isProvider := b.ProviderID == id.ID
	isCustomer := b.CustomerID == id.ID
	if !isProvider && !isCustomer {
		return nil
	}

	switch b.Status {
	case BookingPending:
		if isProvider {
			return []string{BookingAccepted, BookingCancelled}
		}
		return []string{BookingCancelled}
	case BookingAccepted:
		return []string{BookingCompleted, BookingCancelled}
	default:
		return nil
	}
}
