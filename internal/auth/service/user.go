package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pennywise-app/pennywise/internal/auth/domain"
	"github.com/pennywise-app/pennywise/internal/auth/store"
	"github.com/pennywise-app/pennywise/pkg/authsdk"
	"github.com/pennywise-app/pennywise/pkg/cryptox"
	"github.com/pennywise-app/pennywise/pkg/idx"
	"github.com/pennywise-app/pennywise/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailTaken         = errors.New("email_taken")
)

type UserService struct {
	Store store.Store
}

// Register creates a new account. The email is normalized before storage and
// uniqueness is enforced by the store itself, so two racing registrations of
// the same email resolve cleanly: one wins, the other gets ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, email, password, name, role string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        authsdk.NormalizeEmail(email),
		PasswordHash: hash,
		Name:         name,
		Role:         role,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("registration rejected, email taken", slog.String("email", u.Email))
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	l.Info("user registered",
		slog.String("user_id", u.ID),
		slog.String("role", u.Role),
	)
	return u, nil
}

// Authenticate checks an email/password pair. Unknown email and wrong
// password both return ErrInvalidCredentials so callers cannot tell which
// part failed.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, authsdk.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn comparable time so unknown emails are not distinguishable
			// from wrong passwords by response latency.
			cryptox.DummyVerify(password)
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("login rejected, bad password", slog.String("user_id", u.ID))
		return domain.User{}, ErrInvalidCredentials
	}

	return u, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
