package service

import (
	"context"
	"errors"
	"time"

	"github.com/pennywise-app/pennywise/internal/auth/domain"
	"github.com/pennywise-app/pennywise/internal/auth/store"
	"github.com/pennywise-app/pennywise/pkg/jwtx"
)

var ErrInvalidToken = errors.New("invalid_token")

type TokenService struct {
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Store      store.Store
	Issuer     string
	SessionTTL time.Duration
}

// Issue mints a signed session token for the user. Returns the compact token
// and its lifetime in whole seconds.
func (s *TokenService) Issue(u domain.User) (string, int, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(u.ID, u.Email, u.Role, ttl, s.Issuer, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", 0, err
	}
	return token, int(ttl.Seconds()), nil
}

// Resolve verifies a session token and loads the user it refers to. A valid
// signature is not enough: the user must still exist, so deleted accounts
// lose access even with an unexpired token in hand.
func (s *TokenService) Resolve(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.User{}, ErrInvalidToken
	}
	return s.ResolveSubject(ctx, claims.Subject)
}

// ResolveSubject loads the user behind already-verified claims. Used by
// handlers sitting behind the authn middleware, which has done the
// signature check.
func (s *TokenService) ResolveSubject(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}
	return u, nil
}

// Refresh exchanges a still-valid token for a fresh one with a full
// lifetime. The new token reflects the user's current email and role, not
// the values frozen into the old claims.
func (s *TokenService) Refresh(ctx context.Context, token string) (domain.User, string, int, error) {
	u, err := s.Resolve(ctx, token)
	if err != nil {
		return domain.User{}, "", 0, err
	}

	fresh, expiresIn, err := s.Issue(u)
	if err != nil {
		return domain.User{}, "", 0, err
	}
	return u, fresh, expiresIn, nil
}
