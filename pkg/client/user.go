package client

import (
	"context"

	"github.com/getfolio/folio/pkg/api"
	"github.com/getfolio/folio/pkg/portfolio"
)

const userPath = apiPrefix + "/user"

// UsersClient is the request gateway for the auth/user resource.
type UsersClient struct {
	c *Client
}

// Users returns the user gateway.
func (c *Client) Users() *UsersClient {
	return &UsersClient{c: c}
}

// Credentials is a login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is a register request payload.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the authenticated profile and the issued bearer token.
type LoginResult struct {
	User    *portfolio.User
	Token   string
	Message string
}

// Login exchanges credentials for a bearer token. Persisting the token is the
// caller's job; the gateway itself stays stateless.
func (u *UsersClient) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	body, err := u.c.postJSON(ctx, userPath+"/login", creds, authOptional)
	if err != nil {
		return nil, err
	}
	resp, err := api.DecodeItem[portfolio.User](body)
	if err != nil {
		return nil, err
	}
	result := &LoginResult{User: resp.Item, Message: resp.Message}
	if resp.Item != nil {
		result.Token = resp.Item.Token
	}
	return result, nil
}

// Register creates a new admin account.
func (u *UsersClient) Register(ctx context.Context, reg Registration) (*api.ItemResponse[portfolio.User], error) {
	body, err := u.c.postJSON(ctx, userPath+"/register", reg, authOptional)
	if err != nil {
		return nil, err
	}
	return api.DecodeItem[portfolio.User](body)
}

// Me fetches the profile behind the current credential. Fails with
// api.ErrUnauthenticated, without issuing a request, when no credential is
// present.
func (u *UsersClient) Me(ctx context.Context) (*portfolio.User, error) {
	body, err := u.c.get(ctx, userPath+"/me", authRequired)
	if err != nil {
		return nil, err
	}
	resp, err := api.DecodeItem[portfolio.User](body)
	if err != nil {
		return nil, err
	}
	return resp.Item, nil
}
