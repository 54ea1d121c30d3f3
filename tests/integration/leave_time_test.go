package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/adrianrdguez/GoFast/models"
)

const noUpcomingFlightError = "no upcoming flight to calculate for"

func (s *IntegrationTestSuite) TestLeaveTime_RoutedDurationFromRouter() {
	departure := time.Now().UTC().Add(30 * time.Hour).Truncate(time.Second)
	record := s.createManualFlight("TG930", "BKK", "CDG", departure)

	req := httptest.NewRequest("GET", "/api/leave-time?latitude=13.7563&longitude=100.5018", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var calc models.LeaveTimeCalculation
	s.NoError(json.Unmarshal(w.Body.Bytes(), &calc))
	s.Equal(record.ID, calc.Flight.ID)
	s.Equal(models.ModeCar, calc.Mode)
	s.Equal(30*time.Minute, calc.TransportDuration)
	s.False(calc.TransportEstimated)

	// International departure: 3h procedures plus the 30m free-tier buffer,
	// then the routed 30m drive on top
	s.Equal(3*time.Hour, calc.ProcedureDuration)
	s.Equal(30*time.Minute, calc.BufferDuration)
	s.True(calc.AirportArrivalTime.Equal(departure.Add(-3*time.Hour - 30*time.Minute)))
	s.True(calc.LeaveTime.Equal(departure.Add(-4 * time.Hour)))
}

func (s *IntegrationTestSuite) TestLeaveTime_DomesticProcedureWindow() {
	departure := time.Now().UTC().Add(30 * time.Hour).Truncate(time.Second)
	s.createManualFlight("PG201", "BKK", "HKT", departure)

	req := httptest.NewRequest("GET", "/api/leave-time?latitude=13.7563&longitude=100.5018", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var calc models.LeaveTimeCalculation
	s.NoError(json.Unmarshal(w.Body.Bytes(), &calc))
	s.Equal(90*time.Minute, calc.ProcedureDuration)
	s.Equal(15*time.Minute, calc.BufferDuration)
	s.True(calc.LeaveTime.Equal(departure.Add(-2*time.Hour - 15*time.Minute)))
}

func (s *IntegrationTestSuite) TestLeaveTime_RouterDownFallsBackToEstimate() {
	s.osrmDown.Store(true)

	departure := time.Now().UTC().Add(30 * time.Hour).Truncate(time.Second)
	s.createManualFlight("TG930", "BKK", "CDG", departure)

	req := httptest.NewRequest("GET", "/api/leave-time?latitude=13.7563&longitude=100.5018", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var calc models.LeaveTimeCalculation
	s.NoError(json.Unmarshal(w.Body.Bytes(), &calc))
	s.Equal(models.ModeCar, calc.Mode)
	s.True(calc.TransportEstimated)
	s.Greater(calc.TransportDuration, time.Duration(0))
	s.True(calc.LeaveTime.Before(departure))
}

func (s *IntegrationTestSuite) TestLeaveTime_ExplicitFlightID() {
	now := time.Now().UTC()
	s.createManualFlight("PG201", "BKK", "HKT", now.Add(24*time.Hour).Truncate(time.Second))
	later := s.createManualFlight("TG500", "BKK", "NRT", now.Add(72*time.Hour).Truncate(time.Second))

	req := httptest.NewRequest("GET",
		"/api/leave-time?flight_id="+later.ID+"&latitude=13.7563&longitude=100.5018&mode=car", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var calc models.LeaveTimeCalculation
	s.NoError(json.Unmarshal(w.Body.Bytes(), &calc))
	s.Equal(later.ID, calc.Flight.ID)
	s.Equal("TG500", calc.Flight.FlightNumber)
}

func (s *IntegrationTestSuite) TestLeaveTime_NoUpcomingFlight() {
	req := httptest.NewRequest("GET", "/api/leave-time?latitude=13.7563&longitude=100.5018", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)

	var errorResponse models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &errorResponse))
	s.Equal(noUpcomingFlightError, errorResponse.Error)
}

func (s *IntegrationTestSuite) TestLeaveTime_InvalidCoordinates() {
	req := httptest.NewRequest("GET", "/api/leave-time?latitude=200&longitude=0", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)

	var errorResponse models.ErrorResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &errorResponse))
	s.Equal(invalidRequestFormatError, errorResponse.Error)
}

func (s *IntegrationTestSuite) TestLeaveTimeOptions_FreeTierReturnsCarOnly() {
	departure := time.Now().UTC().Add(30 * time.Hour).Truncate(time.Second)
	s.createManualFlight("TG930", "BKK", "CDG", departure)

	req := httptest.NewRequest("GET", "/api/leave-time/options?latitude=13.7563&longitude=100.5018", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var response struct {
		Options []models.LeaveTimeCalculation `json:"options"`
		Count   int                           `json:"count"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(1, response.Count)
	s.Require().Len(response.Options, 1)
	s.Equal(models.ModeCar, response.Options[0].Mode)
}

func (s *IntegrationTestSuite) TestLeaveTimeOptions_ProTierSortedByLeaveTime() {
	s.buildApplication(proCalculatorConfig())

	departure := time.Now().UTC().Add(30 * time.Hour).Truncate(time.Second)
	s.createManualFlight("TG930", "BKK", "CDG", departure)

	req := httptest.NewRequest("GET",
		"/api/leave-time/options?modes=car,walking&latitude=13.7563&longitude=100.5018", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var response struct {
		Options []models.LeaveTimeCalculation `json:"options"`
		Count   int                           `json:"count"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(2, response.Count)
	s.Require().Len(response.Options, 2)

	// Walking takes 4h on the fake router against 30m by car, so it has to
	// leave first
	s.Equal(models.ModeWalking, response.Options[0].Mode)
	s.Equal(models.ModeCar, response.Options[1].Mode)
	s.True(response.Options[0].LeaveTime.Before(response.Options[1].LeaveTime))

	for _, option := range response.Options {
		s.Equal(20*time.Minute, option.BufferDuration)
		s.False(option.ProCustomized)
	}
}

func (s *IntegrationTestSuite) TestLeaveTime_ProTransitUsesEstimate() {
	s.buildApplication(proCalculatorConfig())

	departure := time.Now().UTC().Add(30 * time.Hour).Truncate(time.Second)
	s.createManualFlight("TG930", "BKK", "CDG", departure)

	req := httptest.NewRequest("GET",
		"/api/leave-time?latitude=13.7563&longitude=100.5018&mode=transit", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var calc models.LeaveTimeCalculation
	s.NoError(json.Unmarshal(w.Body.Bytes(), &calc))
	s.Equal(models.ModeTransit, calc.Mode)
	s.True(calc.TransportEstimated)
}

func (s *IntegrationTestSuite) TestLeaveTime_ProBufferOverride() {
	s.buildApplication(proCalculatorConfig())

	departure := time.Now().UTC().Add(30 * time.Hour).Truncate(time.Second)
	s.createManualFlight("TG930", "BKK", "CDG", departure)

	req := httptest.NewRequest("GET",
		"/api/leave-time?latitude=13.7563&longitude=100.5018&mode=cycling&buffer_minutes=45", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var calc models.LeaveTimeCalculation
	s.NoError(json.Unmarshal(w.Body.Bytes(), &calc))
	s.Equal(models.ModeCycling, calc.Mode)
	s.Equal(2*time.Hour, calc.TransportDuration)
	s.Equal(45*time.Minute, calc.BufferDuration)
	s.True(calc.ProCustomized)
	s.True(calc.LeaveTime.Equal(departure.Add(-3*time.Hour - 45*time.Minute - 2*time.Hour)))
}
