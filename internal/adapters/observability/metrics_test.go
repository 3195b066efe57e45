package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sainath-666/pgstay/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveExternal("pgapi", "listings", 200, 12*time.Millisecond)
	observability.ObserveBooking("pending")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "pgstay_external_requests_total") {
		t.Fatalf("expected pgstay_external_requests_total in output")
	}
	if !strings.Contains(out, "pgstay_booking_outcomes_total") {
		t.Fatalf("expected pgstay_booking_outcomes_total in output")
	}
}
