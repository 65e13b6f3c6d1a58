// ABOUTME: Tests for the request pipeline
// ABOUTME: Bearer header attachment and the 401 clear-session side effect

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillserve/marketplace-cli/internal/storage"
)

func TestTransport_AttachesBearerWhenCredentialPresent(t *testing.T) {
	st := storage.NewMemStore()
	require.NoError(t, st.Write(storage.KeyCredential, []byte("tok123")))

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	c := New(server.URL, st)
	require.NoError(t, c.Health(context.Background()))
	require.Equal(t, "Bearer tok123", gotAuth)
}

func TestTransport_NoHeaderWhenCredentialAbsent(t *testing.T) {
	st := storage.NewMemStore()

	var hadAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	c := New(server.URL, st)
	require.NoError(t, c.Health(context.Background()))
	require.False(t, hadAuth, "unauthenticated requests must carry no authorization header")
}

func TestTransport_CredentialReadPerRequest(t *testing.T) {
	st := storage.NewMemStore()

	var auths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	c := New(server.URL, st)
	require.NoError(t, c.Health(context.Background()))

	// A credential committed after the client was built must be picked
	// up by the very next call.
	require.NoError(t, st.Write(storage.KeyCredential, []byte("fresh")))
	require.NoError(t, c.Health(context.Background()))

	require.Equal(t, []string{"", "Bearer fresh"}, auths)
}

func TestTransport_UnauthorizedClearsPersistedSession(t *testing.T) {
	st := storage.NewMemStore()
	require.NoError(t, st.Write(storage.KeyIdentity, []byte(`{"id":1}`)))
	require.NoError(t, st.Write(storage.KeyCredential, []byte("stale")))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	defer server.Close()

	c := New(server.URL, st)
	_, err := c.SearchProviders(context.Background(), SearchQuery{ServiceType: "cleaning"})

	require.Error(t, err)
	require.True(t, IsUnauthorized(err), "the 401 must still reach the caller")

	_, readErr := st.Read(storage.KeyIdentity)
	require.ErrorIs(t, readErr, storage.ErrNotFound)
	_, readErr = st.Read(storage.KeyCredential)
	require.ErrorIs(t, readErr, storage.ErrNotFound)
}

func TestTransport_UnauthorizedHookFiresOncePerResponse(t *testing.T) {
	st := storage.NewMemStore()
	require.NoError(t, st.Write(storage.KeyCredential, []byte("stale")))

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"expired"}`))
	}))
	defer server.Close()

	c := New(server.URL, st)
	var hookCalls int
	c.SetUnauthorizedHook(func() { hookCalls++ })

	_, err := c.Bookings(context.Background())
	require.True(t, IsUnauthorized(err))

	require.Equal(t, 1, requests, "a 401 must not be retried")
	require.Equal(t, 1, hookCalls)
}

func TestTransport_OtherFailuresLeaveSessionIntact(t *testing.T) {
	st := storage.NewMemStore()
	require.NoError(t, st.Write(storage.KeyIdentity, []byte(`{"id":1}`)))
	require.NoError(t, st.Write(storage.KeyCredential, []byte("tok")))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Provider is not approved"}`))
	}))
	defer server.Close()

	c := New(server.URL, st)
	var hookCalls int
	c.SetUnauthorizedHook(func() { hookCalls++ })

	_, err := c.CreateBooking(context.Background(), BookingInput{
		ProviderID:  7,
		ServiceType: "cleaning",
		TotalPrice:  300,
	})
	require.Error(t, err)
	require.False(t, IsUnauthorized(err))
	require.Equal(t, 0, hookCalls)

	cred, readErr := st.Read(storage.KeyCredential)
	require.NoError(t, readErr)
	require.Equal(t, "tok", string(cred))
}
