package authsdk

import (
	"context"
	"errors"
)

// Session is the client-side view of an authenticated (or anonymous) user.
type Session struct {
	Token string
	User  *UserInfo
}

// Authenticated reports whether the session carries a verified token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// RestoreSession is the application startup flow: load persisted
// credentials, verify the stored token against the server, and return the
// resulting session.
//
// Outcomes:
//   - no stored credentials: anonymous session, no error
//   - server rejects the token: stored credentials are cleared and an
//     anonymous session is returned, no error
//   - server unreachable after retries: stored credentials are cleared and
//     an anonymous session is returned, no error; the user is treated as
//     logged out rather than the verify being retried indefinitely. Callers
//     that need to surface connectivity can check Healthy separately.
func (c *Client) RestoreSession(ctx context.Context) (*Session, error) {
	if c.Creds == nil {
		return &Session{}, nil
	}

	creds, err := c.Creds.Load()
	if err != nil {
		return nil, err
	}
	if creds == nil || creds.Token == "" {
		return &Session{}, nil
	}

	user, err := c.Verify(ctx, creds.Token)
	if err != nil {
		var apiErr *APIError
		var netErr *NetworkError
		if errors.As(err, &apiErr) || errors.As(err, &netErr) {
			// Token rejected, or the server could not be reached after
			// retries. Either way the stored session is discarded.
			if clearErr := c.Creds.Clear(); clearErr != nil {
				return nil, clearErr
			}
			return &Session{}, nil
		}
		return nil, err
	}

	// Refresh the cached profile in case it changed server-side.
	_ = c.Creds.Save(&Credentials{Token: creds.Token, User: *user})

	return &Session{Token: creds.Token, User: user}, nil
}
