package authsdk

import (
	"context"
	"net/http"
)

// Register creates a new account and, on success, persists the returned
// session token and profile in the credential store.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if fields := req.Validate(); fields != nil {
		return nil, ErrValidation.WithDetails(fields)
	}
	req.Email = NormalizeEmail(req.Email)

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/register", req, "")
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}

	c.saveCredentials(&out)
	return &out, nil
}

// Login authenticates an existing account and persists the session on
// success. Invalid email and invalid password both surface as the same
// invalid_credentials error.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if fields := req.Validate(); fields != nil {
		return nil, ErrValidation.WithDetails(fields)
	}
	req.Email = NormalizeEmail(req.Email)

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", req, "")
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}

	c.saveCredentials(&out)
	return &out, nil
}

// Verify checks a session token against the server and returns the profile
// embedded in it. The credential store is not touched; use RestoreSession
// for the startup flow that also prunes stale credentials.
func (c *Client) Verify(ctx context.Context, token string) (*UserInfo, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/verify", nil, token)
	if err != nil {
		return nil, err
	}

	var out VerifyResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Refresh exchanges a still-valid session token for a fresh one with a full
// lifetime, persisting the new session on success.
func (c *Client) Refresh(ctx context.Context, token string) (*AuthResponse, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/refresh", nil, token)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}

	c.saveCredentials(&out)
	return &out, nil
}

// Logout discards the locally stored session. Tokens are stateless on the
// server side, so no network call is made.
func (c *Client) Logout() error {
	if c.Creds == nil {
		return nil
	}
	return c.Creds.Clear()
}

func (c *Client) saveCredentials(auth *AuthResponse) {
	if c.Creds == nil || auth == nil || auth.Token == "" {
		return
	}
	// Persistence failure does not invalidate the live session.
	_ = c.Creds.Save(&Credentials{Token: auth.Token, User: auth.User})
}
