// ABOUTME: Request pipeline applied to every outgoing API call
// ABOUTME: Attaches the stored bearer credential and reacts to 401 responses

package client

import (
	"net/http"
	"strings"
	"sync"

	"github.com/skillserve/marketplace-cli/internal/storage"
)

// Transport decorates every request with the persisted credential and
// handles authorization failures uniformly. There is no per-call opt-out:
// anything issued through a Client goes through here.
type Transport struct {
	storage storage.Store
	base    http.RoundTripper

	mu             sync.Mutex
	onUnauthorized func()
}

// NewTransport creates a pipeline over base. A nil base uses
// http.DefaultTransport.
func NewTransport(st storage.Store, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{storage: st, base: base}
}

// SetUnauthorizedHook registers fn to run once per 401 response, after
// the persisted session entries have been deleted. The TUI uses this to
// route back to the login screen.
func (t *Transport) SetUnauthorizedHook(fn func()) {
	t.mu.Lock()
	t.onUnauthorized = fn
	t.mu.Unlock()
}

// RoundTrip implements http.RoundTripper. When a credential is present
// it is sent as a bearer authorization header; when absent the request
// goes out unauthenticated. A 401 response deletes both persisted
// session entries, fires the unauthorized hook, and is then returned to
// the caller unchanged. The request is never retried.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tok, err := t.storage.Read(storage.KeyCredential); err == nil {
		if cred := strings.TrimSpace(string(tok)); cred != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+cred)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The session is no longer valid. Storage errors here are moot:
		// the caller is getting a 401 either way.
		t.storage.Delete(storage.KeyIdentity)
		t.storage.Delete(storage.KeyCredential)

		t.mu.Lock()
		hook := t.onUnauthorized
		t.mu.Unlock()
		if hook != nil {
			hook()
		}
	}

	return resp, nil
}
