// ABOUTME: Service catalog lookup for search and profile creation forms
// ABOUTME: Home service types and tutor subjects are defined by the backend

package client

import "context"

// ServiceTypes lists the categories the backend accepts for worker
// service types and tutor subjects.
type ServiceTypes struct {
	HomeServices  []string `json:"home_services"`
	TutorSubjects []string `json:"tutor_subjects"`
}

// ServiceTypes calls GET /api/constants/service-types.
func (c *Client) ServiceTypes(ctx context.Context) (*ServiceTypes, error) {
	var out ServiceTypes
	if err := c.getJSON(ctx, "/api/constants/service-types", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
