package credential

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	return s
}

func TestStore_MissingFileMeansLoggedOut(t *testing.T) {
	s := tempStore(t)
	assert.Empty(t, s.Token())
}

func TestStore_SetPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("tok123"))
	assert.Equal(t, "tok123", s.Token())

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "tok123", reopened.Token())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_ClearRemovesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("tok123"))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Clearing again is a no-op.
	require.NoError(t, s.Clear())
}

func TestStore_TrimsStoredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  tok123\n"), 0o600))

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "tok123", s.Token())
}

func TestIdentity_NoToken(t *testing.T) {
	s := tempStore(t)
	_, err := s.Identity()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestIdentity_ParsesClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "665f1c2",
		"email": "admin@example.com",
		"exp":   exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	s := tempStore(t)
	require.NoError(t, s.Set(signed))

	id, err := s.Identity()
	require.NoError(t, err)
	assert.Equal(t, "665f1c2", id.Subject)
	assert.Equal(t, "admin@example.com", id.Email)
	assert.Equal(t, exp.Unix(), id.ExpiresAt.Unix())
	assert.False(t, id.Expired())
}

func TestIdentity_ExpiredToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "665f1c2",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	s := tempStore(t)
	require.NoError(t, s.Set(signed))

	id, err := s.Identity()
	require.NoError(t, err)
	assert.True(t, id.Expired())
}
