package authsdk

import (
	"net/http"
	"strings"
	"time"
)

// Default retry policy for transport-level failures. Server rejections are
// never retried regardless of these settings.
const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = time.Second
	DefaultTimeout       = 10 * time.Second
)

// Client is a client for the Pennywise authentication service. It provides
// the register/login/verify/refresh operations and, when a CredentialStore
// is attached, persists the session token and profile across restarts.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Creds is where the session token and last-known profile are persisted.
	// Optional: a nil store makes the client fully stateless.
	Creds CredentialStore

	// RetryAttempts is how many times a request is tried when no HTTP
	// response is received (network failure). Minimum 1.
	RetryAttempts int

	// RetryDelay is the base delay between retries; attempt n waits
	// n * RetryDelay (linear backoff).
	RetryDelay time.Duration
}

// NewClient creates an auth service client with the default timeout and
// retry policy and no credential persistence.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		RetryAttempts: DefaultRetryAttempts,
		RetryDelay:    DefaultRetryDelay,
	}
}

// WithCredentialStore attaches a credential store and returns the client,
// for chaining at construction time.
func (c *Client) WithCredentialStore(store CredentialStore) *Client {
	c.Creds = store
	return c
}
