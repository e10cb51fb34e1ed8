package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pennywise-app/pennywise/internal/auth/service"
	"github.com/pennywise-app/pennywise/pkg/authsdk"
	"github.com/pennywise-app/pennywise/pkg/httpx"
	"github.com/pennywise-app/pennywise/pkg/slogx"
)

type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP handles email/password authentication.
//
//	@Summary		Log in to an existing account
//	@Description	Authenticates an email/password pair and returns a signed session token. Unknown email and wrong password produce the same error.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	authsdk.AuthResponse	"Authenticated with session token"
//	@Failure		400		{object}	authsdk.ErrorResponse	"Malformed body or field validation failure"
//	@Failure		401		{object}	authsdk.ErrorResponse	"Invalid email or password"
//	@Failure		500		{object}	authsdk.ErrorResponse	"Internal error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req authsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if errs := req.Validate(); errs != nil {
		authsdk.ErrValidation.WithDetails(errs).WriteError(w)
		return
	}

	u, err := h.UserService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			authsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		l.Error("login failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	token, expiresIn, err := h.TokenService.Issue(u)
	if err != nil {
		l.Error("session issue failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.AuthResponse{
		User:      toUserInfo(u),
		Token:     token,
		ExpiresIn: expiresIn,
	})
}
