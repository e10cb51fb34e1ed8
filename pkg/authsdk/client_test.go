package authsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	c.Creds = &MemStore{}
	c.RetryDelay = time.Millisecond
	return c
}

func writeAuthResponse(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(AuthResponse{
		User: UserInfo{
			ID:        "01ARZ3NDEKTSV4RRFFQ69G5FAV",
			Email:     "alice@example.com",
			Name:      "Alice",
			Role:      RoleUser,
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		Token:     "issued.session.token",
		ExpiresIn: 604800,
	})
}

func TestClientRegister(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/auth/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice@example.com", req.Email, "email is normalized before sending")

		writeAuthResponse(w, http.StatusCreated)
	}))

	out, err := c.Register(context.Background(), RegisterRequest{
		Email:    "  Alice@Example.COM ",
		Password: "Str0ng!pass",
		Name:     "Alice",
		Role:     RoleUser,
	})
	require.NoError(t, err)
	require.Equal(t, "issued.session.token", out.Token)
	require.Equal(t, 604800, out.ExpiresIn)

	// A successful register persists the session.
	creds, err := c.Creds.Load()
	require.NoError(t, err)
	require.NotNil(t, creds)
	require.Equal(t, "issued.session.token", creds.Token)
	require.Equal(t, "alice@example.com", creds.User.Email)
}

func TestClientRegisterValidatesLocally(t *testing.T) {
	t.Parallel()

	var called atomic.Bool
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	}))

	_, err := c.Register(context.Background(), RegisterRequest{Email: "bad"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeValidation, apiErr.Code)
	require.Contains(t, apiErr.Details, "email")
	require.False(t, called.Load(), "invalid requests never reach the server")
}

func TestClientRegisterConflict(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrEmailExists.WriteError(w)
	}))

	_, err := c.Register(context.Background(), validRegister())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, ErrorCodeEmailExists, apiErr.Code)

	// A rejected register leaves nothing behind.
	creds, err := c.Creds.Load()
	require.NoError(t, err)
	require.Nil(t, creds)
}

func TestClientLogin(t *testing.T) {
	t.Parallel()

	t.Run("success persists credentials", func(t *testing.T) {
		t.Parallel()

		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/auth/login", r.URL.Path)
			writeAuthResponse(w, http.StatusOK)
		}))

		out, err := c.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "Str0ng!pass"})
		require.NoError(t, err)
		require.Equal(t, "issued.session.token", out.Token)

		creds, err := c.Creds.Load()
		require.NoError(t, err)
		require.NotNil(t, creds)
	})

	t.Run("rejection surfaces invalid_credentials", func(t *testing.T) {
		t.Parallel()

		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ErrInvalidCredentials.WriteError(w)
		}))

		_, err := c.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "wrong-One1!"})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, ErrorCodeInvalidCredentials, apiErr.Code)
		require.Equal(t, "invalid email or password", apiErr.Description)
	})
}

func TestClientVerify(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/auth/verify", r.URL.Path)
		require.Equal(t, "Bearer some.valid.token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(VerifyResponse{User: UserInfo{ID: "u1", Email: "alice@example.com"}})
	}))

	user, err := c.Verify(context.Background(), "some.valid.token")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)

	_, err = c.Verify(context.Background(), "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeInvalidToken, apiErr.Code)
}

func TestClientRefresh(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/auth/refresh", r.URL.Path)
		require.Equal(t, "Bearer old.session.token", r.Header.Get("Authorization"))
		writeAuthResponse(w, http.StatusOK)
	}))

	out, err := c.Refresh(context.Background(), "old.session.token")
	require.NoError(t, err)
	require.Equal(t, "issued.session.token", out.Token)

	creds, err := c.Creds.Load()
	require.NoError(t, err)
	require.Equal(t, "issued.session.token", creds.Token)
}

func TestClientLogoutClearsLocalState(t *testing.T) {
	t.Parallel()

	store := &MemStore{}
	require.NoError(t, store.Save(testCreds()))

	c := &Client{Creds: store}
	require.NoError(t, c.Logout())

	creds, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, creds)

	// Logout without a store is a no-op.
	require.NoError(t, (&Client{}).Logout())
}

func TestClientRetriesOnConnectionFailure(t *testing.T) {
	t.Parallel()

	// A server that is immediately closed gives a guaranteed refused port.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(srv.URL)
	c.RetryAttempts = 3
	c.RetryDelay = time.Millisecond

	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "x"})

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, 3, netErr.Attempts)
	require.Contains(t, netErr.URL, "/v1/auth/login")
}

func TestClientRecoversMidRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 2 {
			// Hijack and drop the connection so the client sees a
			// transport error rather than an HTTP response.
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		writeAuthResponse(w, http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	c.RetryAttempts = 3
	c.RetryDelay = time.Millisecond

	out, err := c.Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "x"})
	require.NoError(t, err)
	require.Equal(t, "issued.session.token", out.Token)
	require.Equal(t, int32(2), calls.Load())
}

func TestClientDoesNotRetryServerRejections(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		ErrServerError.WriteError(w)
	}))
	c.RetryAttempts = 5

	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, int32(1), calls.Load(), "a received response is final")
}

func TestClientNonJSONErrorBody(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}))

	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}

func TestRestoreSession(t *testing.T) {
	t.Parallel()

	t.Run("no stored credentials", func(t *testing.T) {
		t.Parallel()

		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		sess, err := c.RestoreSession(context.Background())
		require.NoError(t, err)
		require.False(t, sess.Authenticated())
	})

	t.Run("valid stored token", func(t *testing.T) {
		t.Parallel()

		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer signed.session.token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(VerifyResponse{User: testCreds().User})
		}))
		require.NoError(t, c.Creds.Save(testCreds()))

		sess, err := c.RestoreSession(context.Background())
		require.NoError(t, err)
		require.True(t, sess.Authenticated())
		require.Equal(t, "signed.session.token", sess.Token)
		require.Equal(t, "alice@example.com", sess.User.Email)
	})

	t.Run("rejected token clears credentials", func(t *testing.T) {
		t.Parallel()

		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ErrInvalidToken.WriteError(w)
		}))
		require.NoError(t, c.Creds.Save(testCreds()))

		sess, err := c.RestoreSession(context.Background())
		require.NoError(t, err)
		require.False(t, sess.Authenticated())

		creds, err := c.Creds.Load()
		require.NoError(t, err)
		require.Nil(t, creds, "stale credentials are pruned")
	})

	t.Run("unreachable server clears credentials", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		c := NewClient(srv.URL)
		c.Creds = &MemStore{}
		c.RetryAttempts = 1
		c.RetryDelay = time.Millisecond
		require.NoError(t, c.Creds.Save(testCreds()))

		sess, err := c.RestoreSession(context.Background())
		require.NoError(t, err)
		require.False(t, sess.Authenticated())

		creds, loadErr := c.Creds.Load()
		require.NoError(t, loadErr)
		require.Nil(t, creds, "unverifiable session is discarded, not retried forever")
	})
}

func TestClientHealth(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/livez":
			_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Uptime: "1h2m3s"})
		case "/readyz":
			_ = json.NewEncoder(w).Encode(HealthResponse{
				Status: "ok",
				Checks: &HealthChecks{Database: "ok", Signer: "ok"},
			})
		default:
			http.NotFound(w, r)
		}
	}))

	live, err := c.GetLiveness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := c.GetReadiness(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)

	require.True(t, c.Healthy(context.Background()))
}
