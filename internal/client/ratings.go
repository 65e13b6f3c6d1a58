// ABOUTME: Rating submission after completed bookings
// ABOUTME: Scores feed the backend's provider trust computation

package client

import (
	"context"
	"net/http"
)

// RatingInput is the payload for rating a provider. BookingID ties the
// rating to a completed booking when known.
type RatingInput struct {
	ProviderID int64   `json:"provider_id" validate:"required"`
	BookingID  int64   `json:"booking_id,omitempty"`
	Score      float64 `json:"score" validate:"gte=1,lte=5"`
	Comment    string  `json:"comment,omitempty"`
}

// SubmitRating calls POST /api/ratings. The backend only acknowledges;
// the updated averages surface on the next search.
func (c *Client) SubmitRating(ctx context.Context, in RatingInput) error {
	if err := c.validateInput(in); err != nil {
		return err
	}
	return c.sendJSON(ctx, http.MethodPost, "/api/ratings", in, nil)
}
