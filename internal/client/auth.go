// ABOUTME: Authentication calls: register, login, and current-user lookup
// ABOUTME: Returns the identity and bearer credential for the session store to commit

package client

import (
	"context"
	"net/http"

	"github.com/skillserve/marketplace-cli/internal/session"
)

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=customer worker tutor"`
}

// AuthResult is the backend's response to a successful login or
// registration: the credential plus the authenticated identity. The
// caller hands both to the session store.
type AuthResult struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	User        session.Identity `json:"user"`
}

// Register calls POST /api/auth/register.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := c.validateInput(in); err != nil {
		return nil, err
	}
	var out AuthResult
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login calls POST /api/auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	in := loginInput{Email: email, Password: password}
	if err := c.validateInput(in); err != nil {
		return nil, err
	}
	var out AuthResult
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me calls GET /api/auth/me and returns the identity the backend sees
// for the current credential.
func (c *Client) Me(ctx context.Context) (*session.Identity, error) {
	var out session.Identity
	if err := c.getJSON(ctx, "/api/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
