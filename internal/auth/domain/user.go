package domain

import "time"

type User struct {
	ID           string
	Email        string // normalized (lower-cased) at the service boundary
	PasswordHash string // argon2 encoded
	Name         string
	Role         string // one of: user, admin, business
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
