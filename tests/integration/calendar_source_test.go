package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/service"
)

const (
	calendarSourceName = "Calendar File"
	manualSourceName   = "Manual Entries"
)

func (s *IntegrationTestSuite) TestCalendarDetection_FlightEventServed() {
	departure := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)
	s.writeCalendar(icsEvent(
		"evt-1",
		"Flight TG930 to CDG",
		"Suvarnabhumi Airport (BKK)",
		"Gate D4",
		departure,
		departure.Add(11*time.Hour),
	))

	req := httptest.NewRequest("GET", "/api/flights", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var response struct {
		Flights []models.Flight `json:"flights"`
		Count   int             `json:"count"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(1, response.Count)
	s.Require().Len(response.Flights, 1)

	flight := response.Flights[0]
	s.Equal("TG930", flight.FlightNumber)
	s.Equal("TG", flight.Airline)
	s.Equal(models.SourceICSCalendar, flight.Source)
	s.Equal("BKK", flight.Departure.Code)
	s.Equal("D4", flight.Gate)
	s.True(flight.DepartureTime.Equal(departure))
	s.Require().NotNil(flight.ArrivalTime)
	s.True(flight.ArrivalTime.Equal(departure.Add(11 * time.Hour)))

	req = httptest.NewRequest("GET", "/api/status", nil)
	w = httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var report service.SourceStatusReport
	s.NoError(json.Unmarshal(w.Body.Bytes(), &report))
	s.Contains(report.Summary, "connected to "+calendarSourceName)
	s.Require().Len(report.Sources, 2)
	s.Equal(calendarSourceName, report.Sources[0].Name)
	s.True(report.Sources[0].Available)
	s.True(report.Sources[0].RequiresAuth)
	s.NotEqual("never", report.Sources[0].LastSyncHuman)
}

func (s *IntegrationTestSuite) TestCalendarDetection_FirstSourceWins() {
	now := time.Now().UTC()
	departure := now.Add(72 * time.Hour).Truncate(time.Second)
	s.writeCalendar(icsEvent(
		"evt-1",
		"Flight TG930 to CDG",
		"Suvarnabhumi Airport (BKK)",
		"",
		departure,
		time.Time{},
	))
	s.createManualFlight("PG201", "BKK", "HKT", now.Add(24*time.Hour))

	req := httptest.NewRequest("GET", "/api/flights", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	// The calendar answered, so manual entries are not merged in even
	// though one departs sooner
	var response struct {
		Flights []models.Flight `json:"flights"`
		Count   int             `json:"count"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(1, response.Count)
	s.Require().Len(response.Flights, 1)
	s.Equal("TG930", response.Flights[0].FlightNumber)
	s.Equal(models.SourceICSCalendar, response.Flights[0].Source)

	s.AssertManualFlightStored("PG201")
}

func (s *IntegrationTestSuite) TestCalendarDetection_NonFlightEventsYieldNoFlights() {
	now := time.Now().UTC()
	s.writeCalendar(icsEvent(
		"evt-1",
		"Team standup",
		"Office",
		"",
		now.Add(26*time.Hour),
		time.Time{},
	))
	s.createManualFlight("PG201", "BKK", "HKT", now.Add(24*time.Hour))

	req := httptest.NewRequest("GET", "/api/flights", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	// A successful scan with zero flights still claims the result
	var response struct {
		Flights []models.Flight `json:"flights"`
		Count   int             `json:"count"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(0, response.Count)
	s.Empty(response.Flights)
}

func (s *IntegrationTestSuite) TestCalendarMissing_FallsBackToManualEntries() {
	now := time.Now().UTC()
	s.createManualFlight("PG201", "BKK", "HKT", now.Add(24*time.Hour))

	req := httptest.NewRequest("GET", "/api/flights", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var response struct {
		Flights []models.Flight `json:"flights"`
		Count   int             `json:"count"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(1, response.Count)
	s.Require().Len(response.Flights, 1)
	s.Equal("PG201", response.Flights[0].FlightNumber)
	s.Equal(models.SourceManualEntry, response.Flights[0].Source)

	req = httptest.NewRequest("GET", "/api/status", nil)
	w = httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var report service.SourceStatusReport
	s.NoError(json.Unmarshal(w.Body.Bytes(), &report))
	s.Contains(report.Summary, "connected to "+manualSourceName)
	s.Require().Len(report.Sources, 2)
	s.Equal(calendarSourceName, report.Sources[0].Name)
	s.False(report.Sources[0].Available)
	s.Equal(manualSourceName, report.Sources[1].Name)
	s.True(report.Sources[1].Available)
	s.False(report.Sources[1].RequiresAuth)
	s.NotEqual("never", report.Sources[1].LastSyncHuman)
}

func (s *IntegrationTestSuite) TestCalendarUnparsable_FallsBackToManualEntries() {
	s.Require().NoError(os.WriteFile(s.icsPath, []byte("not a calendar at all"), 0o644))

	now := time.Now().UTC()
	s.createManualFlight("PG201", "BKK", "HKT", now.Add(24*time.Hour))

	req := httptest.NewRequest("GET", "/api/flights", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	// The calendar source failed mid-fetch, so the next source answers
	var response struct {
		Flights []models.Flight `json:"flights"`
		Count   int             `json:"count"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(1, response.Count)
	s.Require().Len(response.Flights, 1)
	s.Equal("PG201", response.Flights[0].FlightNumber)
	s.Equal(models.SourceManualEntry, response.Flights[0].Source)
}

func (s *IntegrationTestSuite) TestCalendarDetection_DedupKeepsHighestConfidence() {
	departure := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)
	s.writeCalendar(
		icsEvent(
			"evt-1",
			"Flight TG930 to CDG",
			"Suvarnabhumi Airport (BKK)",
			"",
			departure,
			time.Time{},
		),
		icsEvent(
			"evt-2",
			"TG930 reminder",
			"",
			"Taxi to BKK at nine",
			departure,
			time.Time{},
		),
	)

	req := httptest.NewRequest("GET", "/api/flights", nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	// Both events describe the same departure; only one record survives
	var response struct {
		Flights []models.Flight `json:"flights"`
		Count   int             `json:"count"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(1, response.Count)
	s.Require().Len(response.Flights, 1)
	s.Equal("TG930", response.Flights[0].FlightNumber)
}
