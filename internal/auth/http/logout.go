package http

import (
	"net/http"

	"github.com/pennywise-app/pennywise/pkg/authsdk"
	"github.com/pennywise-app/pennywise/pkg/httpx"
)

// LogoutHandler acknowledges a logout. Sessions are stateless JWTs, so there
// is nothing to revoke server-side; clients discard their stored token.
//
//	@Summary		Log out
//	@Description	Acknowledges logout. Session tokens are stateless, so discarding the token client-side ends the session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	authsdk.LogoutResponse	"Acknowledged"
//	@Router			/v1/auth/logout [post].
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, authsdk.LogoutResponse{Status: "ok"})
	}
}
