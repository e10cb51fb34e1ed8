package http

import (
	"github.com/pennywise-app/pennywise/internal/auth/domain"
	"github.com/pennywise-app/pennywise/pkg/authsdk"
)

// toUserInfo maps a domain user onto its public wire shape. The password
// hash never crosses this boundary.
func toUserInfo(u domain.User) authsdk.UserInfo {
	return authsdk.UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
