// ABOUTME: Tests for the skillserve subcommands against a stub backend
// ABOUTME: Covers exit codes, role guards, session handling, and output text

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillserve/marketplace-cli/internal/session"
	"github.com/skillserve/marketplace-cli/internal/storage"
)

// setupTest points the command wiring at a stub backend and a throwaway
// config dir. It returns the config dir so tests can inspect storage.
func setupTest(t *testing.T, handler http.Handler) string {
	t.Helper()

	resetFlags()
	t.Cleanup(resetFlags)

	dir := t.TempDir()
	t.Setenv("SKILLSERVE_CONFIG_DIR", dir)

	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		apiURL = srv.URL
	} else {
		// A port nothing listens on, for tests that never reach the API
		apiURL = "http://127.0.0.1:1"
	}

	return dir
}

// resetFlags clears the package-level flag state cobra binds once at
// init time, so tests do not leak values into each other.
func resetFlags() {
	apiURL = ""
	jsonOutput = false
	loginEmail, loginPassword = "", ""
	registerName, registerEmail, registerPassword, registerRole = "", "", "", ""
	searchServiceType, searchSubject = "", ""
	bookProviderID, bookServiceType, bookSubject, bookPrice = 0, "", "", 0
	rateProviderID, rateBookingID, rateScore, rateComment = 0, 0, 0, ""
	profileServiceType, profileSubject = "", ""
	profilePrice = 0
	profileIDDocument, profileQualification, profileQualDocument = "", "", ""
	profileExperience, profileTranscript = "", ""
}

func seedSession(t *testing.T, dir string, id *session.Identity) {
	t.Helper()

	sess := session.New(storage.NewFileStore(dir))
	require.NoError(t, sess.Commit(id, "test-token"))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestSearchRequiresFilter(t *testing.T) {
	setupTest(t, nil)

	var buf bytes.Buffer
	code := runSearch(context.Background(), &buf)

	assert.Equal(t, exitError, code)
	assert.Contains(t, buf.String(), "--service-type or --subject")
}

func TestSearchListsProviders(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/providers/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cleaning", r.URL.Query().Get("service_type"))
		writeJSON(w, http.StatusOK, []map[string]interface{}{
			{"id": 3, "name": "Marta", "role": "worker", "service_type": "cleaning",
				"trust_score": 82.0, "rating": 4.6, "price": 40.0, "verification_status": "approved"},
		})
	})
	setupTest(t, mux)
	searchServiceType = "cleaning"

	var buf bytes.Buffer
	code := runSearch(context.Background(), &buf)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "Marta")
	assert.Contains(t, buf.String(), "cleaning")
	assert.Contains(t, buf.String(), "skillserve book")
}

func TestLoginPersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"access_token": "tok-123",
			"token_type":   "bearer",
			"user": map[string]interface{}{
				"id": 1, "name": "Ana", "email": "ana@example.com",
				"role": "customer", "trust_score": 75.0,
			},
		})
	})
	dir := setupTest(t, mux)
	loginEmail, loginPassword = "ana@example.com", "secret1"

	var buf bytes.Buffer
	code := runLogin(context.Background(), &buf)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "Logged in as Ana (customer)")

	store := storage.NewFileStore(dir)
	cred, err := store.Read(storage.KeyCredential)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", string(cred))
}

func TestLoginRejectedShowsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
	})
	setupTest(t, mux)
	loginEmail, loginPassword = "ana@example.com", "wrong1"

	var buf bytes.Buffer
	code := runLogin(context.Background(), &buf)

	assert.Equal(t, exitError, code)
	assert.Contains(t, buf.String(), "Invalid credentials")
}

func TestWhoamiWithoutSession(t *testing.T) {
	setupTest(t, nil)

	var buf bytes.Buffer
	code := runWhoami(context.Background(), &buf)

	assert.Equal(t, exitAuth, code)
	assert.Contains(t, buf.String(), "Not logged in")
}

func TestBookRequiresCustomerRole(t *testing.T) {
	dir := setupTest(t, http.NewServeMux())
	seedSession(t, dir, &session.Identity{ID: 2, Name: "Wes", Email: "wes@example.com", Role: session.RoleWorker})
	bookProviderID, bookServiceType = 3, "cleaning"

	var buf bytes.Buffer
	code := runBook(context.Background(), &buf)

	assert.Equal(t, exitFailed, code)
	assert.Contains(t, buf.String(), "Only customers can create bookings")
}

func TestBookCreatesBooking(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bookings", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var in map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "cleaning", in["service_type"])

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"id": 12, "customer_id": 1, "provider_id": 3,
			"service_type": "cleaning", "total_price": 40.0, "status": "pending",
		})
	})
	dir := setupTest(t, mux)
	seedSession(t, dir, &session.Identity{ID: 1, Name: "Ana", Email: "ana@example.com", Role: session.RoleCustomer})
	bookProviderID, bookServiceType, bookPrice = 3, "cleaning", 40

	var buf bytes.Buffer
	code := runBook(context.Background(), &buf)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "Booking #12 created (pending)")
}

func TestBookingsUpdateRejectsBadID(t *testing.T) {
	setupTest(t, nil)

	var buf bytes.Buffer
	code := runBookingsUpdate(context.Background(), &buf, "not-a-number", "accepted")

	assert.Equal(t, exitError, code)
	assert.Contains(t, buf.String(), "invalid booking ID")
}

func TestCompletedBookingPrintsRateHint(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bookings/9", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id": 9, "customer_id": 1, "provider_id": 3,
			"service_type": "cleaning", "total_price": 40.0, "status": "completed",
		})
	})
	dir := setupTest(t, mux)
	seedSession(t, dir, &session.Identity{ID: 1, Name: "Ana", Email: "ana@example.com", Role: session.RoleCustomer})

	var buf bytes.Buffer
	code := runBookingsUpdate(context.Background(), &buf, "9", "completed")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "Booking #9 is now completed")
	assert.Contains(t, buf.String(), "skillserve rate --provider 3 --booking 9")
}

func TestExpiredSessionClearsStorage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bookings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
	})
	dir := setupTest(t, mux)
	seedSession(t, dir, &session.Identity{ID: 1, Name: "Ana", Email: "ana@example.com", Role: session.RoleCustomer})

	var buf bytes.Buffer
	code := runBookingsList(context.Background(), &buf)

	assert.Equal(t, exitAuth, code)
	assert.Contains(t, buf.String(), "Session expired")

	// The pipeline deletes the persisted session on 401
	store := storage.NewFileStore(dir)
	_, err := store.Read(storage.KeyCredential)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRateRequiresCustomerRole(t *testing.T) {
	dir := setupTest(t, http.NewServeMux())
	seedSession(t, dir, &session.Identity{ID: 2, Name: "Tom", Email: "tom@example.com", Role: session.RoleTutor})
	rateProviderID, rateBookingID, rateScore = 3, 9, 5

	var buf bytes.Buffer
	code := runRate(context.Background(), &buf)

	assert.Equal(t, exitFailed, code)
	assert.Contains(t, buf.String(), "Only customers can rate providers")
}

func TestRateSubmitsScore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ratings", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var in map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		// JSON numbers decode as float64; the 1-5 score goes out numeric
		assert.Equal(t, 4.0, in["score"])
		assert.Equal(t, 3.0, in["provider_id"])

		writeJSON(w, http.StatusCreated, map[string]string{"message": "Rating submitted successfully"})
	})
	dir := setupTest(t, mux)
	seedSession(t, dir, &session.Identity{ID: 1, Name: "Ana", Email: "ana@example.com", Role: session.RoleCustomer})
	rateProviderID, rateBookingID, rateScore = 3, 9, 4

	var buf bytes.Buffer
	code := runRate(context.Background(), &buf)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "Rated provider #3: 4/5")
}

func TestChatOneShotPrintsRecommendations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "my sink is leaking", in["message"])

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"reply": "A plumber can help with that.",
			"recommended_providers": []map[string]interface{}{
				{"id": 3, "name": "Marta", "service_type": "plumbing",
					"rating": 4.6, "trust_score": 82.0, "price": 40.0, "distance": 1.2},
			},
		})
	})
	dir := setupTest(t, mux)
	seedSession(t, dir, &session.Identity{ID: 1, Name: "Ana", Email: "ana@example.com", Role: session.RoleCustomer})

	var buf bytes.Buffer
	code := runChat(context.Background(), &buf, strings.NewReader(""), "my sink is leaking")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "A plumber can help")
	assert.Contains(t, buf.String(), "Recommended providers:")
	assert.Contains(t, buf.String(), "Marta")
}

func TestChatInteractiveExitsOnQuit(t *testing.T) {
	dir := setupTest(t, http.NewServeMux())
	seedSession(t, dir, &session.Identity{ID: 1, Name: "Ana", Email: "ana@example.com", Role: session.RoleCustomer})

	var buf bytes.Buffer
	code := runChat(context.Background(), &buf, strings.NewReader("exit\n"), "")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "Describe what you need")
}

func TestHealthReportsDown(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"detail": "database unavailable"})
	})
	setupTest(t, mux)

	var buf bytes.Buffer
	code := runHealth(context.Background(), &buf)

	assert.Equal(t, exitFailed, code)
	assert.Contains(t, buf.String(), "not healthy")
}

func TestHealthOK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	setupTest(t, mux)

	var buf bytes.Buffer
	code := runHealth(context.Background(), &buf)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "is healthy")
}

func TestLogoutWithoutSession(t *testing.T) {
	setupTest(t, nil)

	var buf bytes.Buffer
	code := runLogout(context.Background(), &buf)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "No session to clear")
}

func TestLogoutClearsSession(t *testing.T) {
	dir := setupTest(t, nil)
	seedSession(t, dir, &session.Identity{ID: 1, Name: "Ana", Email: "ana@example.com", Role: session.RoleCustomer})

	var buf bytes.Buffer
	code := runLogout(context.Background(), &buf)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, buf.String(), "Logged out ana@example.com")

	store := storage.NewFileStore(dir)
	_, err := store.Read(storage.KeyIdentity)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
