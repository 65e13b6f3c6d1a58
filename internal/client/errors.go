// ABOUTME: Error types for the marketplace API client
// ABOUTME: Decodes FastAPI-style detail payloads and classifies auth failures

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIError is a non-2xx response from the backend. Detail carries the
// backend's human-readable message when one was provided.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend error: %s", e.Detail)
}

// IsUnauthorized reports whether err is a 401 from the backend. Call
// sites stay defensive: the pipeline has already cleared the session by
// the time they see this.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// validateInput checks an input struct before it leaves the client so
// users get inline feedback without a round-trip. The rules mirror the
// backend's own checks.
func (c *Client) validateInput(in interface{}) error {
	err := c.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%s is required", strings.ToLower(fe.Field()))
		case "email":
			return fmt.Errorf("%s must be a valid email address", strings.ToLower(fe.Field()))
		case "oneof":
			return fmt.Errorf("%s must be one of: %s", strings.ToLower(fe.Field()), fe.Param())
		case "gte", "min":
			return fmt.Errorf("%s must be at least %s", strings.ToLower(fe.Field()), fe.Param())
		case "lte", "max":
			return fmt.Errorf("%s must be at most %s", strings.ToLower(fe.Field()), fe.Param())
		}
		return fmt.Errorf("%s is invalid", strings.ToLower(fe.Field()))
	}
	return err
}

// handleRequestError converts context errors to user-friendly messages.
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses. The backend reports
// errors as {"detail": "..."}; anything else falls back to the status.
func (c *Client) handleErrorResponse(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}
