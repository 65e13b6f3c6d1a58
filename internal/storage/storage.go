// ABOUTME: Persisted key-value storage capability for client-side state
// ABOUTME: Session identity and credential live behind this interface

package storage

import "errors"

// ErrNotFound is returned when a key has no persisted value.
var ErrNotFound = errors.New("storage: key not found")

// Keys for the two entries the client persists. The session store and
// the request pipeline must agree on these: identity and credential are
// always written and cleared together.
const (
	KeyIdentity   = "identity"
	KeyCredential = "credential"
)

// Store is the minimal capability the session store and request
// pipeline depend on. Implementations must tolerate concurrent use
// from multiple goroutines.
type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Delete(key string) error
}
