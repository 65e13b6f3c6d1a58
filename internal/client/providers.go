// ABOUTME: Provider search across approved workers and tutors
// ABOUTME: A search is a single filtered GET keyed by service type or subject

package client

import (
	"context"
	"net/url"

	"github.com/skillserve/marketplace-cli/internal/session"
)

// SearchQuery filters providers. Exactly one of ServiceType (workers)
// or Subject (tutors) is normally set; the backend ignores values it
// does not recognize.
type SearchQuery struct {
	ServiceType string
	Subject     string
}

// Provider is a search result: a worker or tutor the backend has
// approved. Worker results carry ServiceType and Rating, tutor results
// carry Subject and evaluation scores.
type Provider struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Role               string  `json:"role"`
	TrustScore         float64 `json:"trust_score"`
	ServiceType        string  `json:"service_type,omitempty"`
	Subject            string  `json:"subject,omitempty"`
	VerificationStatus string  `json:"verification_status"`
	Rating             float64 `json:"rating,omitempty"`
	QualificationScore float64 `json:"qualification_score,omitempty"`
	SkillScore         float64 `json:"skill_score,omitempty"`
	ProfileSummary     string  `json:"profile_summary,omitempty"`
	Price              float64 `json:"price,omitempty"`
}

// Category returns the provider's service type or subject, whichever
// its role uses.
func (p Provider) Category() string {
	if p.Role == session.RoleTutor {
		return p.Subject
	}
	return p.ServiceType
}

// SearchProviders calls GET /api/providers/search.
func (c *Client) SearchProviders(ctx context.Context, q SearchQuery) ([]Provider, error) {
	params := url.Values{}
	if q.ServiceType != "" {
		params.Set("service_type", q.ServiceType)
	}
	if q.Subject != "" {
		params.Set("subject", q.Subject)
	}

	path := "/api/providers/search"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out []Provider
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
