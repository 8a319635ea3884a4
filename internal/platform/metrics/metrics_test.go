package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordsAndServes(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveHTTP("GET /v1/seasons/{seasonID}/standings", http.MethodGet, http.StatusOK, 12*time.Millisecond)
	m.ObserveBoard("standings", 40, time.Millisecond)
	m.MemoHit("standings")
	m.MemoMiss("standings")
	m.MemoMiss("standings")
	m.BreakerChanged("identity", "closed", "open")
	m.ObserveFinalize("ok")
	m.ObserveJob("finalize_due", "error")

	if got := testutil.ToFloat64(m.memoLookups.WithLabelValues("standings", "miss")); got != 2 {
		t.Fatalf("expected 2 memo misses, got %v", got)
	}
	if got := testutil.ToFloat64(m.breakerState.WithLabelValues("identity")); got != 1 {
		t.Fatalf("expected open breaker gauge, got %v", got)
	}
	m.BreakerChanged("identity", "half_open", "closed")
	if got := testutil.ToFloat64(m.breakerState.WithLabelValues("identity")); got != 0 {
		t.Fatalf("expected closed breaker gauge, got %v", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		`fantasy_golf_http_requests_total{method="GET",route="GET /v1/seasons/{seasonID}/standings",status_code="200"} 1`,
		`fantasy_golf_engine_board_builds_total{board="standings"} 1`,
		`fantasy_golf_jobs_runs_total{job="finalize_due",outcome="error"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected exposition to contain %q", want)
		}
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveHTTP("", http.MethodGet, http.StatusOK, time.Millisecond)
	m.MemoHit("x")
	m.SetPoolWaiting(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 from nil metrics, got %d", rec.Code)
	}
}
