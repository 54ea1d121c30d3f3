package integration

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"
)

func (s *IntegrationTestSuite) TestMetricsEndpoint_ReportsFlightActivity() {
	departure := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)

	body := `{"flight_number":"TG930","departure_code":"BKK","departure_time":"` +
		departure.Format(time.RFC3339) + `"}`
	req := httptest.NewRequest("POST", "/api/flights/manual", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusCreated, w.Code)

	req = httptest.NewRequest("GET", "/api/leave-time?latitude=13.7563&longitude=100.5018", nil)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/metrics", nil)
	w = httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	metrics := w.Body.String()
	s.Contains(metrics, `flight_detections_total{source="manualEntry"}`)
	s.Contains(metrics, `flight_source_fetches_total{outcome="success",source="Manual Entries"}`)
	s.Contains(metrics, `flight_eta_requests_total{mode="car",outcome="success",provider="Cached(OSRM+DistanceEstimator)"}`)
	s.Contains(metrics, "flight_snapshot_refresh_duration_seconds")
}
