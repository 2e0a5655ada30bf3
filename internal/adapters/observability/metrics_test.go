package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stayquery/internal/adapters/observability"
	"stayquery/internal/domain"
)

func scrape(t *testing.T) string {
	t.Helper()
	reg := observability.InitRegistry()
	rr := httptest.NewRecorder()
	observability.MetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	return string(body)
}

func TestMetricsRegistryAndHandler(t *testing.T) {
	observability.ObserveHTTP("/v1/search", "POST", 200, 12*time.Millisecond)

	out := scrape(t)
	for _, want := range []string{
		`stayquery_http_request_duration_seconds_count{method="POST",route="/v1/search",status="200"}`,
		"go_goroutines",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output", want)
		}
	}
}

func TestObserveSearch(t *testing.T) {
	observability.ObserveSearch("fallback", "unavailable")

	want := `stayquery_search_outcomes_total{reason="unavailable",source="fallback"}`
	if !strings.Contains(scrape(t), want) {
		t.Fatalf("expected %s in output", want)
	}
}

func TestObserveParse(t *testing.T) {
	observability.ObserveParse(nil)
	observability.ObserveParse([]string{domain.FieldCity, domain.FieldCheckOut})

	out := scrape(t)
	for _, want := range []string{
		`stayquery_parsed_queries_total{missing="none"}`,
		`stayquery_parsed_queries_total{missing="city,check-out date"}`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output", want)
		}
	}
}

func TestObserveProviderAndBreaker(t *testing.T) {
	observability.ObserveProvider("/hotels/search", 0, time.Second)
	observability.ObserveBreaker(true)

	out := scrape(t)
	if !strings.Contains(out, `stayquery_provider_request_duration_seconds_count{endpoint="/hotels/search",status="transport_error"}`) {
		t.Fatalf("transport error not labelled:\n%s", out)
	}
	if !strings.Contains(out, "stayquery_provider_breaker_open 1") {
		t.Fatalf("breaker gauge not set:\n%s", out)
	}
	observability.ObserveBreaker(false)
	if !strings.Contains(scrape(t), "stayquery_provider_breaker_open 0") {
		t.Fatalf("breaker gauge not reset")
	}
}

func TestLabelErr(t *testing.T) {
	if got := observability.LabelErr(nil); got != "none" {
		t.Fatalf("LabelErr(nil) = %q", got)
	}
	if got := observability.LabelErr(io.EOF); got != "*errors.errorString" {
		t.Fatalf("LabelErr(io.EOF) = %q", got)
	}
}
