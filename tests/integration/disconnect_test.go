package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/service"
)

const disconnectedMessage = "All flight sources disconnected"

func (s *IntegrationTestSuite) TestDisconnectSources_DropsCalendarUntilReconfigured() {
	departure := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)
	s.writeCalendar(icsEvent(
		"evt-1",
		"Flight TG930 to CDG",
		"Suvarnabhumi Airport (BKK)",
		"",
		departure,
		time.Time{},
	))

	req := httptest.NewRequest("GET", "/api/display", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusOK, w.Code)

	var view service.DisplayView
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &view))
	s.Require().True(view.Snapshot.HasFlight())
	s.Require().Equal("TG930", view.Snapshot.Flight.FlightNumber)

	req = httptest.NewRequest("DELETE", "/api/sources", nil)
	w = httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var response map[string]string
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(disconnectedMessage, response["message"])

	// The calendar file still exists, but the source stays down until the
	// process is reconfigured
	req = httptest.NewRequest("GET", "/api/status", nil)
	w = httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var report service.SourceStatusReport
	s.NoError(json.Unmarshal(w.Body.Bytes(), &report))
	s.Equal("connected to "+manualSourceName+", never synced", report.Summary)
	s.Require().Len(report.Sources, 2)
	s.False(report.Sources[0].Available)
	s.Equal("never", report.Sources[0].LastSyncHuman)
	s.True(report.Sources[1].Available)

	// The stored snapshot was cleared, so the display rebuilds without the
	// calendar flight
	req = httptest.NewRequest("GET", "/api/display", nil)
	w = httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	view = service.DisplayView{}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &view))
	s.Require().NotNil(view.Snapshot)
	s.False(view.Snapshot.HasFlight())
	s.Equal(noFlightHint, view.Snapshot.Hint)
	s.Empty(view.Timeline)
}

func (s *IntegrationTestSuite) TestDisconnectSources_ManualEntriesSurvive() {
	departure := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)

	body := `{"flight_number":"TG930","departure_code":"BKK","departure_time":"` +
		departure.Format(time.RFC3339) + `"}`
	req := httptest.NewRequest("POST", "/api/flights/manual", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusCreated, w.Code)

	req = httptest.NewRequest("DELETE", "/api/sources", nil)
	w = httptest.NewRecorder()

	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)

	// Disconnecting drops source credentials and sync state, never user data
	req = httptest.NewRequest("GET", "/api/flights/next", nil)
	w = httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var flight models.Flight
	s.NoError(json.Unmarshal(w.Body.Bytes(), &flight))
	s.Equal("TG930", flight.FlightNumber)
	s.Equal(models.SourceManualEntry, flight.Source)

	s.AssertManualFlightStored("TG930")
}
