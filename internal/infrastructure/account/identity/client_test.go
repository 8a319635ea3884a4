package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-golf/internal/platform/cache"
	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
	"github.com/riskibarqy/fantasy-golf/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-golf/internal/usecase"
)

func newTestClient(srv *httptest.Server, breaker *resilience.CircuitBreaker, store *cache.Store) *Client {
	return NewClient(ClientConfig{
		HTTPClient:     srv.Client(),
		BaseURL:        srv.URL,
		IntrospectPath: "v1/auth/introspect",
		AdminKey:       "admin-secret",
		Breaker:        breaker,
		Cache:          store,
		Logger:         logging.NewNop(),
	})
}

func TestClientVerifyAccessToken_SendsAdminKeyAndParsesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/auth/introspect" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-admin-key"); got != "admin-secret" {
			t.Errorf("unexpected x-admin-key: %s", got)
		}

		var req map[string]string
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		if req["token"] != "token-abc" {
			t.Errorf("unexpected token value: %s", req["token"])
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"active":true,"user_id":"user-123","email":"ava@example.com","roles":["viewer"],"exp":1730000000}`))
	}))
	defer srv.Close()

	principal, err := newTestClient(srv, nil, nil).VerifyAccessToken(context.Background(), " token-abc ")
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}
	if principal.UserID != "user-123" || principal.Email != "ava@example.com" || !principal.HasRole("viewer") {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestClientVerifyAccessToken_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "inactive token", status: http.StatusOK, body: `{"active":false}`, wantErr: usecase.ErrUnauthorized},
		{name: "missing user id", status: http.StatusOK, body: `{"active":true}`, wantErr: usecase.ErrUnauthorized},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{}`, wantErr: usecase.ErrUnauthorized},
		{name: "bad admin key", status: http.StatusForbidden, body: `{"error":"forbidden"}`, wantErr: usecase.ErrDependencyUnavailable},
		{name: "server error", status: http.StatusBadGateway, body: `oops`, wantErr: usecase.ErrDependencyUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv, nil, nil).VerifyAccessToken(context.Background(), "token-abc")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestClientVerifyAccessToken_EmptyTokenSkipsNetwork(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls.Add(1) }))
	defer srv.Close()

	_, err := newTestClient(srv, nil, nil).VerifyAccessToken(context.Background(), "   ")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no introspection calls, got %d", calls.Load())
	}
}

func TestClientVerifyAccessToken_UsesCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"active":true,"user_id":"user-cache"}`))
	}))
	defer srv.Close()

	store := cache.NewStore(time.Minute)
	client := newTestClient(srv, nil, store)
	for i := 0; i < 2; i++ {
		principal, err := client.VerifyAccessToken(context.Background(), "cached-token")
		if err != nil {
			t.Fatalf("verify token failed: %v", err)
		}
		if principal.UserID != "user-cache" {
			t.Fatalf("unexpected user id: %s", principal.UserID)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one introspection call with cache, got %d", calls.Load())
	}
	if _, ok := store.Get(context.Background(), principalKeyPrefix+hashToken("cached-token")); !ok {
		t.Fatalf("expected principal cached under the token hash")
	}
}

func TestClientVerifyAccessToken_BreakerOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	var opened atomic.Bool
	breaker := resilience.NewCircuitBreaker("identity", resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Hour,
		HalfOpenMaxReq:   1,
	}, func(_ string, _, to resilience.CircuitState) {
		if to == resilience.CircuitStateOpen {
			opened.Store(true)
		}
	})
	client := newTestClient(srv, breaker, nil)

	for i := 0; i < 3; i++ {
		_, err := client.VerifyAccessToken(context.Background(), "token-abc")
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("call %d: expected ErrDependencyUnavailable, got %v", i, err)
		}
	}
	if !opened.Load() || breaker.State() != resilience.CircuitStateOpen {
		t.Fatalf("expected breaker open, got %s", breaker.State())
	}
	if calls.Load() != 2 {
		t.Fatalf("expected the open breaker to short-circuit the third call, got %d calls", calls.Load())
	}
}

func TestClientVerifyAccessToken_RejectedTokensDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	breaker := resilience.NewCircuitBreaker("identity", resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1}, nil)
	client := newTestClient(srv, breaker, nil)
	for i := 0; i < 3; i++ {
		if _, err := client.VerifyAccessToken(context.Background(), "bad"); !errors.Is(err, usecase.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	}
	if breaker.State() != resilience.CircuitStateClosed {
		t.Fatalf("expected breaker to stay closed, got %s", breaker.State())
	}
}
