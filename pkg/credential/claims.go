package credential

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what can be read from the stored token without a network
// round-trip. The token is parsed unverified: the backend is the verifier,
// this is display-only.
type Identity struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past.
func (i Identity) Expired() bool {
	return !i.ExpiresAt.IsZero() && time.Now().After(i.ExpiresAt)
}

// ErrNoToken is returned by Identity when the store holds no credential.
var ErrNoToken = errors.New("no stored credential")

// Identity parses the stored token's claims without verifying the signature.
func (s *Store) Identity() (*Identity, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	id := &Identity{}
	if sub, err := claims.GetSubject(); err == nil {
		id.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id, nil
}
