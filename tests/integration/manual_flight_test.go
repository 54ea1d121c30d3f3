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

const (
	duplicateFlightError      = "a flight with this number and departure time already exists"
	pastDepartureError        = "departure time must be in the future"
	invalidRequestFormatError = "invalid request format"
	noFlightHint              = "no upcoming flights detected, add one manually"
)

func (s *IntegrationTestSuite) TestAddManualFlight_Success() {
	departure := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)

	body := `{"flight_number":"TG930","departure_code":"BKK","arrival_code":"CDG","departure_time":"` +
		departure.Format(time.RFC3339) + `"}`
	req := httptest.NewRequest("POST", "/api/flights/manual", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)

	var flight models.Flight
	s.NoError(json.Unmarshal(w.Body.Bytes(), &flight))
	s.NotEmpty(flight.ID)
	s.Equal("TG930", flight.FlightNumber)
	s.Equal(models.SourceManualEntry, flight.Source)
	s.Equal("BKK", flight.Departure.Code)
	s.Require().NotNil(flight.Arrival)
	s.Equal("CDG", flight.Arrival.Code)
	s.True(flight.DepartureTime.Equal(departure))

	s.AssertManualFlightStored("TG930")
}

func (s *IntegrationTestSuite) TestAddManualFlight_AppearsOnDisplay() {
	departure := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)

	body := `{"flight_number":"TG930","departure_code":"BKK","arrival_code":"CDG","departure_time":"` +
		departure.Format(time.RFC3339) + `"}`
	req := httptest.NewRequest("POST", "/api/flights/manual", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusCreated, w.Code)

	req = httptest.NewRequest("GET", "/api/display", nil)
	w = httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var view service.DisplayView
	s.NoError(json.Unmarshal(w.Body.Bytes(), &view))
	s.Require().NotNil(view.Snapshot)
	s.Require().True(view.Snapshot.HasFlight())
	s.Equal("TG930", view.Snapshot.Flight.FlightNumber)
	s.Equal(models.StateUpcoming, view.Snapshot.State)
	s.Equal(models.UrgencyRelaxed, view.Snapshot.Urgency)
	s.Equal(15*time.Minute, view.Snapshot.RefreshInterval)
	s.NotEmpty(view.Timeline)

	// The background refresh used the configured home origin and the
	// routed car duration from the fake router
	s.Require().NotNil(view.Snapshot.Calculation)
	s.Equal(models.ModeCar, view.Snapshot.Calculation.Mode)
	s.Equal(30*time.Minute, view.Snapshot.Calculation.TransportDuration)
	s.False(view.Snapshot.Calculation.TransportEstimated)
}

func (s *IntegrationTestSuite) TestAddManualFlight_DuplicateRejected() {
	departure := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	body := `{"flight_number":"TG930","departure_code":"BKK","departure_time":"` +
		departure.Format(time.RFC3339) + `"}`

	req := httptest.NewRequest("POST", "/api/flights/manual", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Require().Equal(http.StatusCreated, w.Code)

	req = httptest.NewRequest("POST", "/api/flights/manual", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusConflict, w.Code)

	var errorResponse models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &errorResponse))
	s.Equal(duplicateFlightError, errorResponse.Error)
}

func (s *IntegrationTestSuite) TestAddManualFlight_UnknownAirport() {
	departure := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	body := `{"flight_number":"XX100","departure_code":"ZZZ","departure_time":"` +
		departure.Format(time.RFC3339) + `"}`

	req := httptest.NewRequest("POST", "/api/flights/manual", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)

	var errorResponse models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &errorResponse))
	s.Equal(`airport "ZZZ" is not in the directory`, errorResponse.Error)
}

func (s *IntegrationTestSuite) TestAddManualFlight_PastDeparture() {
	departure := time.Now().UTC().Add(-time.Hour)
	body := `{"flight_number":"TG930","departure_code":"BKK","departure_time":"` +
		departure.Format(time.RFC3339) + `"}`

	req := httptest.NewRequest("POST", "/api/flights/manual", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)

	var errorResponse models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &errorResponse))
	s.Equal(pastDepartureError, errorResponse.Error)
}

func (s *IntegrationTestSuite) TestAddManualFlight_MissingDepartureCode() {
	departure := time.Now().UTC().Add(48 * time.Hour)
	body := `{"flight_number":"TG930","departure_time":"` + departure.Format(time.RFC3339) + `"}`

	req := httptest.NewRequest("POST", "/api/flights/manual", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)

	var errorResponse models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &errorResponse))
	s.Equal(invalidRequestFormatError, errorResponse.Error)
}

func (s *IntegrationTestSuite) TestNextFlight_PicksSoonestUpcoming() {
	now := time.Now().UTC()
	s.createManualFlight("TG500", "BKK", "NRT", now.Add(72*time.Hour))
	s.createManualFlight("PG201", "BKK", "HKT", now.Add(24*time.Hour))

	req := httptest.NewRequest("GET", "/api/flights/next", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var flight models.Flight
	s.NoError(json.Unmarshal(w.Body.Bytes(), &flight))
	s.Equal("PG201", flight.FlightNumber)
	s.Equal(models.SourceManualEntry, flight.Source)
}

func (s *IntegrationTestSuite) TestGetFlights_EmptyWhenNothingScheduled() {
	req := httptest.NewRequest("GET", "/api/flights", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var response struct {
		Flights []models.Flight `json:"flights"`
		Count   int             `json:"count"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(0, response.Count)
	s.Empty(response.Flights)
}

func (s *IntegrationTestSuite) TestGetDisplay_EmptyStateCarriesHint() {
	req := httptest.NewRequest("GET", "/api/display", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var view service.DisplayView
	s.NoError(json.Unmarshal(w.Body.Bytes(), &view))
	s.Require().NotNil(view.Snapshot)
	s.False(view.Snapshot.HasFlight())
	s.Equal(noFlightHint, view.Snapshot.Hint)
	s.Equal(15*time.Minute, view.Snapshot.RefreshInterval)
	s.Empty(view.Timeline)
}
