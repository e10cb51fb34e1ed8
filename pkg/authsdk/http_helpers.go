package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doRequest sends one logical request, retrying on transport failures with
// linear backoff. A received HTTP response, whatever its status code, ends
// the retry loop; only the absence of a response counts as retryable.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, bearer string) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	attempts := c.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := c.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}

		resp, err := c.HTTPClient.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt < attempts {
			select {
			case <-time.After(time.Duration(attempt) * delay):
			case <-ctx.Done():
				return nil, &NetworkError{URL: c.url(path), Attempts: attempt, Err: ctx.Err()}
			}
		}
	}

	return nil, &NetworkError{URL: c.url(path), Attempts: attempts, Err: lastErr}
}

// decodeJSON reads the response body and either decodes a success payload
// into out or returns the server's error as an *APIError.
func (c *Client) decodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}
