// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerExposesCollectors(t *testing.T) {
	SeedRunsTotal.WithLabelValues("speed-insights", "seeded").Inc()
	SeedItemsTotal.WithLabelValues("created").Inc()
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	HTTPRequestDuration.WithLabelValues("GET", "/health").Observe(0.01)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{
		`contenthub_seed_runs_total{status="seeded",topic="speed-insights"}`,
		`contenthub_seed_items_total{state="created"}`,
		`contenthub_http_requests_total{method="GET",route="/health",status="200"}`,
		`contenthub_http_request_duration_seconds_bucket`,
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
