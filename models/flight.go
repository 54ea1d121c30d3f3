package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/pkg/validation"
)

// DepartureGraceWindow keeps a flight listed as upcoming for a while after
// its scheduled departure, since boarding often runs late.
const DepartureGraceWindow = 2 * time.Hour

// Flight is a detected or manually entered flight
type Flight struct {
	ID            string          `json:"id"`
	FlightNumber  string          `json:"flight_number,omitempty"`
	Airline       string          `json:"airline,omitempty"`
	Departure     Airport         `json:"departure"`
	Arrival       *Airport        `json:"arrival,omitempty"`
	DepartureTime time.Time       `json:"departure_time"`
	ArrivalTime   *time.Time      `json:"arrival_time,omitempty"`
	Terminal      string          `json:"terminal,omitempty"`
	Gate          string          `json:"gate,omitempty"`
	Seat          string          `json:"seat,omitempty"`
	Source        DetectionSource `json:"source"`
	DetectedAt    time.Time       `json:"detected_at"`
}

// NewFlight builds a flight record, normalizing the flight number and
// storing times in UTC. The departure airport and time are mandatory.
func NewFlight(flightNumber string, departure Airport, departureTime time.Time, source DetectionSource) (*Flight, error) {
	if departure.Code == "" {
		return nil, errors.NewInvalidFlightError("flight requires a departure airport")
	}
	if departureTime.IsZero() {
		return nil, errors.NewInvalidFlightError("flight requires a departure time")
	}
	return &Flight{
		ID:            uuid.NewString(),
		FlightNumber:  validation.CanonicalFlightNumber(flightNumber),
		Departure:     departure,
		DepartureTime: departureTime.UTC(),
		Source:        source,
		DetectedAt:    time.Now().UTC(),
	}, nil
}

// Confidence returns the score of the flight's detection source
func (f Flight) Confidence() float64 {
	return f.Source.Confidence()
}

// DedupKey identifies flights that describe the same departure.
// Records without a flight number share the "unknown" bucket per departure time.
func (f Flight) DedupKey() string {
	number := f.FlightNumber
	if number == "" {
		number = "unknown"
	}
	return number + "|" + f.DepartureTime.UTC().Format(time.RFC3339)
}

// Status reports the flight's lifecycle position at the given moment
func (f Flight) Status(now time.Time) FlightStatus {
	if f.DepartureTime.IsZero() {
		return StatusUnknown
	}
	if now.Before(f.DepartureTime.Add(DepartureGraceWindow)) || now.Equal(f.DepartureTime.Add(DepartureGraceWindow)) {
		return StatusUpcoming
	}
	return StatusDeparted
}

// IsInternational reports whether the flight crosses a border. When the
// arrival airport is unknown it falls back to the departure hub's flag.
func (f Flight) IsInternational() bool {
	if f.Arrival != nil {
		return f.Arrival.Country != f.Departure.Country
	}
	return f.Departure.International
}

// TimeUntilDeparture is the remaining duration before scheduled departure,
// negative once the departure time has passed.
func (f Flight) TimeUntilDeparture(now time.Time) time.Duration {
	return f.DepartureTime.Sub(now)
}

// LeaveTimeCalculation is the derived answer to "when do I have to leave"
type LeaveTimeCalculation struct {
	Flight             Flight        `json:"flight"`
	Mode               TransportMode `json:"mode"`
	LeaveTime          time.Time     `json:"leave_time"`
	AirportArrivalTime time.Time     `json:"airport_arrival_time"`
	DepartureTime      time.Time     `json:"departure_time"`
	TransportDuration  time.Duration `json:"transport_duration"`
	ProcedureDuration  time.Duration `json:"procedure_duration"`
	BufferDuration     time.Duration `json:"buffer_duration"`
	TransportEstimated bool          `json:"transport_estimated"`
	ProCustomized      bool          `json:"pro_customized"`
	CalculatedAt       time.Time     `json:"calculated_at"`
}

// TimeUntilLeave is the remaining duration before the user must depart,
// negative when the leave time has already passed.
func (c LeaveTimeCalculation) TimeUntilLeave(now time.Time) time.Duration {
	return c.LeaveTime.Sub(now)
}

// DisplaySnapshot is the refreshed view the UI renders for the current flight
type DisplaySnapshot struct {
	Flight          *Flight               `json:"flight,omitempty"`
	Calculation     *LeaveTimeCalculation `json:"calculation,omitempty"`
	State           FlightState           `json:"state,omitempty"`
	Urgency         Urgency               `json:"urgency,omitempty"`
	RefreshInterval time.Duration         `json:"refresh_interval"`
	Hint            string                `json:"hint,omitempty"`
	GeneratedAt     time.Time             `json:"generated_at"`
}

// HasFlight reports whether the snapshot carries a flight to display
func (s DisplaySnapshot) HasFlight() bool {
	return s.Flight != nil
}
