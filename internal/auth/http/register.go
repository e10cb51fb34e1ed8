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

type RegisterHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP handles new account registration.
//
//	@Summary		Register a new account
//	@Description	Creates an account and returns a signed session token. The email is case-insensitive and must not already be registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	authsdk.AuthResponse	"Created account with session token"
//	@Failure		400		{object}	authsdk.ErrorResponse	"Malformed body or field validation failure"
//	@Failure		409		{object}	authsdk.ErrorResponse	"Email already registered"
//	@Failure		500		{object}	authsdk.ErrorResponse	"Internal error"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req authsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if errs := req.Validate(); errs != nil {
		authsdk.ErrValidation.WithDetails(errs).WriteError(w)
		return
	}

	u, err := h.UserService.Register(r.Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			authsdk.ErrEmailExists.WriteError(w)
			return
		}
		l.Error("registration failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	token, expiresIn, err := h.TokenService.Issue(u)
	if err != nil {
		l.Error("session issue failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.AuthResponse{
		User:      toUserInfo(u),
		Token:     token,
		ExpiresIn: expiresIn,
	})
}
