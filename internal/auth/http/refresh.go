package http

import (
	"errors"
	"net/http"

	"github.com/pennywise-app/pennywise/internal/auth/service"
	"github.com/pennywise-app/pennywise/pkg/authsdk"
	"github.com/pennywise-app/pennywise/pkg/httpx"
	"github.com/pennywise-app/pennywise/pkg/slogx"
)

type RefreshHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP reissues a session from a still-valid bearer token. The fresh
// token carries a full lifetime and the account's current email and role.
//
//	@Summary		Refresh the current session
//	@Description	Exchanges a valid bearer session token for a fresh one with a full lifetime.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.AuthResponse	"Fresh session token"
//	@Failure		401	{object}	authsdk.ErrorResponse	"Missing, invalid or expired token, or deleted account"
//	@Failure		500	{object}	authsdk.ErrorResponse	"Internal error"
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	userID := httpx.UserIDFromContext(r.Context())
	u, err := h.TokenService.ResolveSubject(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			authsdk.ErrInvalidToken.WriteError(w)
			return
		}
		l.Error("refresh failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	token, expiresIn, err := h.TokenService.Issue(u)
	if err != nil {
		l.Error("session issue failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.AuthResponse{
		User:      toUserInfo(u),
		Token:     token,
		ExpiresIn: expiresIn,
	})
}
