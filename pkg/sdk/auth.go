// pkg/sdk/auth.go
package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// LoginInput carries the email/password pair for POST /auth/login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput carries the new account for POST /auth/register.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges an email/password pair for a Credential.
// It does not touch the SessionStore; persisting the token is the caller's decision.
//
// Invalid credentials surface as *AuthError carrying the server's message.
func (c *Client) Login(ctx context.Context, input LoginInput) (Credential, error) {
	var out loginResponse
	err := c.do(ctx, request{
		op:     "login",
		method: http.MethodPost,
		path:   "/auth/login",
		body:   input,
		out:    &out,
	})
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("login: response did not include a token")
	}
	return Credential(out.Token), nil
}

// Register creates an account. It does not log in; see the account flow for auto-login.
func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	return c.do(ctx, request{
		op:     "register",
		method: http.MethodPost,
		path:   "/auth/register",
		body:   input,
	})
}
