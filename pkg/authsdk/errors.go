package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pennywise-app/pennywise/pkg/httpx"
)

// ============================================================================
// Error Codes
// ============================================================================

const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeValidation         = "validation_error"
	ErrorCodeEmailExists        = "email_exists"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeServerError        = "server_error"
)

// ============================================================================
// APIError - the server responded and rejected the request
// ============================================================================

// APIError represents an error response received from (or produced by) the
// auth API. It implements the error interface and is used both by the server
// handlers (to write HTTP responses) and by the SDK client (to represent
// rejections). An APIError always means the server was reachable; contrast
// with NetworkError.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "invalid_credentials")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`

	// Details carries field-level validation messages, when applicable
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// WithDetails returns a copy of the error carrying field-level details.
func (e *APIError) WithDetails(details map[string]string) *APIError {
	clone := *e
	clone.Details = details
	return &clone
}

// ============================================================================
// Predefined API Errors
// ============================================================================

var (
	// ErrInvalidRequest is returned when the request body is malformed or
	// missing required parameters.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrValidation is returned when one or more fields fail validation.
	// Attach the per-field messages with WithDetails.
	ErrValidation = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidation,
		Description: "one or more fields failed validation",
	}

	// ErrEmailExists is returned when registering an email that is already
	// taken (case-insensitive).
	ErrEmailExists = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeEmailExists,
		Description: "an account with this email already exists",
	}

	// ErrInvalidCredentials is returned for login failures. Unknown email
	// and wrong password produce this same error so callers cannot probe
	// which part was wrong.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid email or password",
	}

	// ErrInvalidToken is returned when the bearer token is missing, invalid,
	// expired, or refers to a user that no longer exists.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the session token is missing, invalid or expired",
	}

	// ErrServerError is returned for unexpected internal faults. The
	// description is deliberately generic; the real cause is logged
	// server-side only.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// ============================================================================
// NetworkError - no response was received at all
// ============================================================================

// NetworkError reports that no HTTP response was received after the client
// exhausted its retries: the service is down, unreachable, or timing out.
// This is a different user-facing situation from an APIError and callers
// should surface it differently.
type NetworkError struct {
	// URL is the request URL that could not be reached
	URL string

	// Attempts is how many times the request was tried
	Attempts int

	// Err is the final underlying transport error
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("no response from %s after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse turns a non-2xx HTTP response body into a typed
// *APIError. Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Details:     errResp.Details,
		}
	}

	// Fallback: create a generic error from the status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
