// ABOUTME: HTTP client for the SkillServe marketplace backend
// ABOUTME: All calls run through the request pipeline and honor context cancellation

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/skillserve/marketplace-cli/internal/storage"
)

// defaultTimeout bounds every request; the original web client waited
// forever on a hung backend, this one does not.
const defaultTimeout = 30 * time.Second

// Client is the API client for the marketplace backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	transport  *Transport
	validate   *validator.Validate
}

// New creates a client whose requests carry the credential persisted in
// st and whose 401 handling clears it.
func New(baseURL string, st storage.Store) *Client {
	tr := NewTransport(st, nil)
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: tr,
		httpClient: &http.Client{
			Transport: tr,
			Timeout:   defaultTimeout,
		},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// SetUnauthorizedHook forwards to the underlying pipeline.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.transport.SetUnauthorizedHook(fn)
}

// BaseURL returns the backend URL this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health calls GET /api/health.
func (c *Client) Health(ctx context.Context) error {
	return c.getJSON(ctx, "/api/health", &struct {
		Status string `json:"status"`
	}{})
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

// sendJSON issues a request with a JSON body and decodes the response into out.
func (c *Client) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// filePart names a file to attach to a multipart request.
type filePart struct {
	field string
	path  string
}

// postMultipart issues a multipart/form-data POST with the given fields
// and optional file attachments, decoding the response into out.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, files []filePart, out interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to build form: %w", err)
		}
	}
	for _, fp := range files {
		if fp.path == "" {
			continue
		}
		f, err := os.Open(fp.path)
		if err != nil {
			return fmt.Errorf("cannot open %s: %w", fp.path, err)
		}
		part, err := mw.CreateFormFile(fp.field, filepath.Base(fp.path))
		if err == nil {
			_, err = io.Copy(part, f)
		}
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to attach %s: %w", fp.path, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, out)
}

// do executes the request and decodes a 2xx response into out.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(req.Context(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}
