package httpapi

import (
	"net/http/httptest"
	"testing"
)

func TestResolveClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "fly header wins", headers: map[string]string{"Fly-Client-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"}, remote: "10.0.0.1:5000", want: "203.0.113.7"},
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": " 198.51.100.1, 10.0.0.2"}, remote: "10.0.0.1:5000", want: "198.51.100.1"},
		{name: "invalid header falls through", headers: map[string]string{"X-Real-IP": "not-an-ip"}, remote: "192.0.2.9:443", want: "192.0.2.9"},
		{name: "ipv6 remote", remote: "[2001:db8::1]:8080", want: "2001:db8::1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/healthz", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := resolveClientIP(req); got != tc.want {
				t.Fatalf("resolveClientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}
