package authsdk

import "time"

// ============================================================================
// Request Types
// ============================================================================

// RegisterRequest contains the data needed to create a new account.
type RegisterRequest struct {
	// Email is the unique (case-insensitive) account identifier
	Email string `json:"email"`

	// Password is the plaintext credential (8-128 chars, mixed composition)
	Password string `json:"password"`

	// Name is the display name shown in the dashboard
	Name string `json:"name"`

	// Role is the account role: "user", "admin" or "business"
	Role string `json:"role"`
}

// LoginRequest contains the credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ============================================================================
// Response Types
// ============================================================================

// UserInfo is the public projection of a user record. It never carries the
// password or its hash.
type UserInfo struct {
	// ID is the opaque unique identifier for the user
	ID string `json:"id"`

	// Email is the normalized (lower-cased) account email
	Email string `json:"email"`

	// Name is the user's display name
	Name string `json:"name"`

	// Role is the account role ("user", "admin", "business")
	Role string `json:"role"`

	// CreatedAt is when the account was registered
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login (and refresh) with a
// freshly issued session token.
type AuthResponse struct {
	User UserInfo `json:"user"`

	// Token is the signed session JWT to present as a bearer credential
	Token string `json:"token"`

	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int `json:"expires_in"`
}

// VerifyResponse is returned by the verify endpoint for a valid token.
type VerifyResponse struct {
	User UserInfo `json:"user"`
}

// LogoutResponse is the stateless acknowledgement from the logout endpoint.
type LogoutResponse struct {
	Status string `json:"status"`
}

// ============================================================================
// Error Envelopes (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse is the standard error envelope written by the API.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "invalid_credentials")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// Details contains field-specific validation errors, when applicable
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is the response structure for the health check endpoints.
// Used by both /livez and /readyz (readyz includes the Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g. "ok", "degraded")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g. "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness results for critical dependencies (readyz only)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the user store connection status
	Database string `json:"database"`

	// Signer indicates the token signing capability status
	Signer string `json:"signer"`
}
