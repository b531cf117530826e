package state

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/client"
	"github.com/getfolio/folio/pkg/credential"
)

func newTestSession(t *testing.T, handler http.Handler) (*Session, *credential.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds, err := credential.Open(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	c := client.New(srv.URL, client.WithCredentials(creds))
	return NewSession(c.Users(), creds), creds
}

func TestSessionLoginPersistsToken(t *testing.T) {
	s, creds := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/user/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"message":"Login successful","result":{"_id":"u1","email":"admin@example.com","token":"tok789"}}`))
	}))

	require.NoError(t, s.Login(t.Context(), client.Credentials{Email: "admin@example.com", Password: "pw"}))

	assert.Equal(t, "tok789", creds.Token())
	snap := s.Store().Snapshot()
	assert.Equal(t, StatusSucceeded, snap.Status)
	require.NotNil(t, snap.Item)
	assert.Equal(t, "admin@example.com", snap.Item.Email)
	assert.Equal(t, "Login successful", snap.Message)
}

func TestSessionLoginFailureLeavesCredentialUntouched(t *testing.T) {
	s, creds := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":true,"message":"Invalid credentials"}`))
	}))
	require.NoError(t, creds.Set("previous-token"))

	err := s.Login(t.Context(), client.Credentials{Email: "admin@example.com", Password: "wrong"})
	require.Error(t, err)

	assert.Equal(t, "previous-token", creds.Token())
	snap := s.Store().Snapshot()
	assert.Equal(t, StatusFailed, snap.Status)
	assert.Equal(t, "Invalid credentials", snap.Err)
}

func TestSessionLogoutClearsEverythingWithoutNetwork(t *testing.T) {
	var hits atomic.Int64
	s, creds := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	require.NoError(t, creds.Set("tok789"))

	require.NoError(t, s.Logout())

	assert.Empty(t, creds.Token())
	assert.Equal(t, StatusIdle, s.Store().Snapshot().Status)
	assert.Equal(t, int64(0), hits.Load())
}

func TestSessionFetchCurrentUserAttachesCredential(t *testing.T) {
	var gotAuth string
	s, creds := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/user/me" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"result":{"_id":"u1","email":"admin@example.com"}}`))
	}))
	require.NoError(t, creds.Set("tok789"))

	require.NoError(t, s.FetchCurrentUser(t.Context()))

	assert.Equal(t, "Bearer tok789", gotAuth)
	snap := s.Store().Snapshot()
	require.NotNil(t, snap.Item)
	assert.Equal(t, "u1", snap.Item.ID)
}

func TestSessionFetchCurrentUserFailsFastWhenLoggedOut(t *testing.T) {
	var hits atomic.Int64
	s, _ := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	err := s.FetchCurrentUser(t.Context())
	require.ErrorIs(t, err, api.ErrUnauthenticated)

	assert.Equal(t, int64(0), hits.Load())
	assert.Equal(t, StatusFailed, s.Store().Snapshot().Status)
}

func TestSessionRegisterCachesProfile(t *testing.T) {
	s, creds := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/user/register" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"message":"Registered","result":{"_id":"u2","email":"new@example.com"}}`))
	}))

	require.NoError(t, s.Register(t.Context(), client.Registration{
		Name:     "New Admin",
		Email:    "new@example.com",
		Password: "pw",
	}))

	// Registration issues no credential.
	assert.Empty(t, creds.Token())
	snap := s.Store().Snapshot()
	require.NotNil(t, snap.Item)
	assert.Equal(t, "new@example.com", snap.Item.Email)
	assert.Equal(t, "Registered", snap.Message)
}
