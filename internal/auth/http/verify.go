package http

import (
	"errors"
	"net/http"

	"github.com/pennywise-app/pennywise/internal/auth/service"
	"github.com/pennywise-app/pennywise/pkg/authsdk"
	"github.com/pennywise-app/pennywise/pkg/httpx"
	"github.com/pennywise-app/pennywise/pkg/slogx"
)

type VerifyHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP checks the bearer session token and returns the account it
// belongs to. The authn middleware has already verified the signature and
// expiry; this handler additionally confirms the account still exists.
//
//	@Summary		Verify the current session
//	@Description	Validates the bearer session token and returns the authenticated account.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.VerifyResponse	"Authenticated account"
//	@Failure		401	{object}	authsdk.ErrorResponse	"Missing, invalid or expired token, or deleted account"
//	@Failure		500	{object}	authsdk.ErrorResponse	"Internal error"
//	@Router			/v1/auth/verify [post].
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	userID := httpx.UserIDFromContext(r.Context())
	u, err := h.TokenService.ResolveSubject(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			authsdk.ErrInvalidToken.WriteError(w)
			return
		}
		l.Error("verify failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.VerifyResponse{User: toUserInfo(u)})
}
