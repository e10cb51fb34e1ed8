package authsdk

import (
	"context"
	"net/http"
)

// GetLiveness reports whether the auth service process is up.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, "")
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness reports whether the auth service can serve traffic, including
// the state of its database and token signer.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, "")
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Healthy is a convenience wrapper around GetReadiness for callers that only
// want a yes/no answer.
func (c *Client) Healthy(ctx context.Context) bool {
	out, err := c.GetReadiness(ctx)
	return err == nil && out.Status == "ok"
}
