// ABOUTME: Session store holding the authenticated identity and loading state
// ABOUTME: Persists identity and credential together, restores them across runs

package session

import (
	"encoding/json"
	"sync"

	"github.com/skillserve/marketplace-cli/internal/storage"
)

// Role values the backend assigns at registration. Immutable client-side.
const (
	RoleCustomer = "customer"
	RoleWorker   = "worker"
	RoleTutor    = "tutor"
)

// Identity is the authenticated user record returned by the backend.
// TrustScore is computed server-side and read-only here. CreatedAt is
// kept as the backend's own timestamp string; the client never does
// arithmetic on it.
type Identity struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	TrustScore float64 `json:"trust_score"`
	CreatedAt  string  `json:"created_at"`
}

// IsProvider reports whether the identity offers services.
func (id *Identity) IsProvider() bool {
	return id.Role == RoleWorker || id.Role == RoleTutor
}

// Store is the single source of truth for "who is logged in".
// Pages read it through Current; only Commit and Clear mutate it.
type Store struct {
	storage storage.Store

	mu       sync.Mutex
	identity *Identity
	loading  bool

	loadOnce sync.Once
}

// New creates a session store over the given storage. The session is
// considered loading until Load has run once.
func New(st storage.Store) *Store {
	return &Store{storage: st, loading: true}
}

// Load restores a previously persisted identity. Malformed or missing
// data degrades to logged-out; it is never surfaced as an error.
// Safe to call repeatedly, only the first call does work.
func (s *Store) Load() {
	s.loadOnce.Do(func() {
		var id *Identity
		data, err := s.storage.Read(storage.KeyIdentity)
		if err == nil {
			var parsed Identity
			if jsonErr := json.Unmarshal(data, &parsed); jsonErr == nil {
				id = &parsed
			}
		}

		s.mu.Lock()
		s.identity = id
		s.loading = false
		s.mu.Unlock()
	})
}

// Commit makes identity current and persists it together with the
// credential. After Commit returns, requests observe the new credential
// and Current observes the new identity.
func (s *Store) Commit(identity *Identity, credential string) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	if err := s.storage.Write(storage.KeyIdentity, data); err != nil {
		return err
	}
	if err := s.storage.Write(storage.KeyCredential, []byte(credential)); err != nil {
		return err
	}

	id := *identity
	s.mu.Lock()
	s.identity = &id
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Clear forgets the identity and deletes both persisted entries.
// Memory is cleared even when storage deletion fails, so the process
// never keeps acting on a revoked session.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.identity = nil
	s.loading = false
	s.mu.Unlock()

	err := s.storage.Delete(storage.KeyIdentity)
	if err2 := s.storage.Delete(storage.KeyCredential); err == nil {
		err = err2
	}
	return err
}

// Current returns a copy of the identity (nil when logged out) and the
// loading flag. While loading is true callers must treat the identity
// as unknown and defer any redirect decision.
func (s *Store) Current() (*Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil, s.loading
	}
	id := *s.identity
	return &id, s.loading
}
