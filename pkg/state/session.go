package state

import (
	"context"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/client"
	"github.com/getfolio/folio/pkg/portfolio"
)

// CredentialStore is the persisted bearer-token slot the session writes and
// every gateway reads.
type CredentialStore interface {
	client.TokenSource
	Set(token string) error
	Clear() error
}

// Session is the auth resource: the admin profile store plus the credential
// lifecycle. It is the only store other resources depend on, and only
// through the credential it maintains.
type Session struct {
	store *Store[portfolio.User]
	users *client.UsersClient
	creds CredentialStore
}

// NewSession creates a session backed by the given user gateway and
// credential store.
func NewSession(users *client.UsersClient, creds CredentialStore) *Session {
	return &Session{store: NewStore[portfolio.User](), users: users, creds: creds}
}

// Store exposes the profile store for snapshots and subscriptions.
func (s *Session) Store() *Store[portfolio.User] { return s.store }

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string { return s.creds.Token() }

// Login exchanges credentials for a bearer token, persists the token, and
// caches the profile. On failure any previously stored credential is left
// untouched.
func (s *Session) Login(ctx context.Context, creds client.Credentials) error {
	s.store.begin()
	result, err := s.users.Login(ctx, creds)
	if err != nil {
		s.store.fail(api.ErrorMessage(err))
		return err
	}
	if result.Token != "" {
		if err := s.creds.Set(result.Token); err != nil {
			s.store.fail(err.Error())
			return err
		}
	}
	s.store.setItem(result.User, result.Message)
	return nil
}

// Register creates a new admin account. No credential is issued; the caller
// logs in afterwards.
func (s *Session) Register(ctx context.Context, reg client.Registration) error {
	s.store.begin()
	resp, err := s.users.Register(ctx, reg)
	if err != nil {
		s.store.fail(api.ErrorMessage(err))
		return err
	}
	s.store.setItem(resp.Item, resp.Message)
	return nil
}

// Logout clears the in-memory profile and the persisted credential
// synchronously. No network round-trip is involved.
func (s *Session) Logout() error {
	err := s.creds.Clear()
	s.store.Reset()
	return err
}

// FetchCurrentUser replaces the cached profile with the one behind the
// current credential. Without a credential it fails fast with
// api.ErrUnauthenticated and issues no request.
func (s *Session) FetchCurrentUser(ctx context.Context) error {
	s.store.begin()
	user, err := s.users.Me(ctx)
	if err != nil {
		s.store.fail(api.ErrorMessage(err))
		return err
	}
	s.store.setItem(user, "")
	return nil
}
