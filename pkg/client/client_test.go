package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ttsbooking/consult-platform/pkg/client"
)

func newStore(t *testing.T) *client.FileStore {
	t.Helper()
	store, err := client.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return store
}

func TestLogin_PersistsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "a@b.com", in.Email)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"token":   "test-token",
			"user":    map[string]any{"id": 3, "email": "a@b.com", "full_name": "Ana"},
		})
	}))
	defer srv.Close()

	store := newStore(t)
	c := client.New(srv.URL, store)

	user, err := c.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, uint(3), user.ID)

	require.Equal(t, "test-token", store.Token())
	require.NotNil(t, store.User())
	require.Equal(t, "Ana", store.User().FullName)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "services": []any{}})
	}))
	defer srv.Close()

	store := newStore(t)
	require.NoError(t, store.Save("stored-token", &client.User{ID: 3}))

	c := client.New(srv.URL, store)
	_, err := c.Services(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer stored-token", gotAuth)
}

func TestClient_UnauthorizedClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success":    false,
			"error_code": "token_expired",
			"message":    "Authentication token expired, please log in again.",
		})
	}))
	defer srv.Close()

	store := newStore(t)
	require.NoError(t, store.Save("stale-token", &client.User{ID: 3}))

	c := client.New(srv.URL, store)
	_, err := c.Me(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.True(t, apiErr.IsUnauthorized())
	require.Equal(t, "token_expired", apiErr.Code)
	require.Equal(t, "Authentication token expired, please log in again.", apiErr.Message)

	require.Empty(t, store.Token())
	require.Nil(t, store.User())
}

func TestClient_ServerErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success":    false,
			"error_code": "missing_fields",
			"message":    "Missing required fields.",
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL, newStore(t))
	_, err := c.CreateBooking(context.Background(), client.CreateBookingInput{})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "missing_fields", apiErr.Code)
}

func TestClient_TransportError(t *testing.T) {
	// Point at a server that is already gone.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := client.New(srv.URL, newStore(t))
	_, err := c.Health(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot reach server")
}

func TestCheckSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error_code": "invalid_token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"user":    map[string]any{"id": 3, "email": "a@b.com"},
		})
	}))
	defer srv.Close()

	// No stored token short-circuits without a request.
	store := newStore(t)
	c := client.New(srv.URL, store)
	user, err := c.CheckSession(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)

	// A rejected token reports logged-out rather than an error.
	require.NoError(t, store.Save("bad-token", &client.User{ID: 3}))
	user, err = c.CheckSession(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)
	require.Empty(t, store.Token())

	require.NoError(t, store.Save("good-token", &client.User{ID: 3}))
	user, err = c.CheckSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, uint(3), user.ID)
}

func TestBookingFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/bookings":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"success": true, "booking_id": 12})
		case r.Method == http.MethodPatch && r.URL.Path == "/api/bookings/12/confirm":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"booking": map[string]any{"id": 12, "status": "confirmed"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := client.New(srv.URL, newStore(t))

	id, err := c.CreateBooking(context.Background(), client.CreateBookingInput{
		ServiceID:   7,
		BookingDate: "2026-10-01",
		BookingTime: "14:30",
	})
	require.NoError(t, err)
	require.Equal(t, uint(12), id)

	b, err := c.ConfirmBooking(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "confirmed", b.Status)
}
