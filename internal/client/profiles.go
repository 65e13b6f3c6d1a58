// ABOUTME: Worker and tutor profile creation and lookup
// ABOUTME: Profile creation is multipart because identity documents ride along

package client

import (
	"context"
	"strconv"
)

// Verification states the backend assigns after reviewing a profile.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// WorkerProfileInput describes a worker's service offering.
// IDDocumentPath optionally points at a local file to upload.
type WorkerProfileInput struct {
	ServiceType    string  `validate:"required"`
	Price          float64 `validate:"gte=0"`
	IDDocumentPath string
}

// WorkerProfile is the backend's record of a worker offering.
type WorkerProfile struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"user_id"`
	ServiceType        string  `json:"service_type"`
	VerificationStatus string  `json:"verification_status"`
	Rating             float64 `json:"rating"`
	Price              float64 `json:"price,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

// CreateWorkerProfile calls POST /api/workers/profile (multipart).
// The backend runs identity verification before responding, so the
// returned profile already carries a verification status.
func (c *Client) CreateWorkerProfile(ctx context.Context, in WorkerProfileInput) (*WorkerProfile, error) {
	if err := c.validateInput(in); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"service_type": in.ServiceType,
		"price":        strconv.FormatFloat(in.Price, 'f', 2, 64),
	}
	files := []filePart{{field: "id_document", path: in.IDDocumentPath}}

	var out WorkerProfile
	if err := c.postMultipart(ctx, "/api/workers/profile", fields, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WorkerProfile calls GET /api/workers/profile for the logged-in worker.
func (c *Client) WorkerProfile(ctx context.Context) (*WorkerProfile, error) {
	var out WorkerProfile
	if err := c.getJSON(ctx, "/api/workers/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TutorProfileInput describes a tutor's offering plus the evaluation
// material the backend scores: qualifications, experience, and a demo
// lesson transcript.
type TutorProfileInput struct {
	Subject               string  `validate:"required"`
	Price                 float64 `validate:"gte=0"`
	QualificationText     string
	ExperienceDescription string
	DemoTranscript        string `validate:"required"`
	IDDocumentPath        string
	QualificationDocPath  string
}

// TutorProfile is the backend's record of a tutor offering, including
// the scores its evaluation produced.
type TutorProfile struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"user_id"`
	Subject            string  `json:"subject"`
	QualificationScore float64 `json:"qualification_score,omitempty"`
	SkillScore         float64 `json:"skill_score,omitempty"`
	VerificationStatus string  `json:"verification_status"`
	ProfileSummary     string  `json:"profile_summary,omitempty"`
	Price              float64 `json:"price,omitempty"`
	CreatedAt          string  `json:"created_at"`
}

// CreateTutorProfile calls POST /api/tutors/profile (multipart).
func (c *Client) CreateTutorProfile(ctx context.Context, in TutorProfileInput) (*TutorProfile, error) {
	if err := c.validateInput(in); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"subject":                in.Subject,
		"price":                  strconv.FormatFloat(in.Price, 'f', 2, 64),
		"qualification_text":     in.QualificationText,
		"experience_description": in.ExperienceDescription,
		"demo_transcript":        in.DemoTranscript,
	}
	files := []filePart{
		{field: "id_document", path: in.IDDocumentPath},
		{field: "qualification_document", path: in.QualificationDocPath},
	}

	var out TutorProfile
	if err := c.postMultipart(ctx, "/api/tutors/profile", fields, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TutorProfile calls GET /api/tutors/profile for the logged-in tutor.
func (c *Client) TutorProfile(ctx context.Context) (*TutorProfile, error) {
	var out TutorProfile
	if err := c.getJSON(ctx, "/api/tutors/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
