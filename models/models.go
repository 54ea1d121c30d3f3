// Package models defines data structures used throughout the application
package models

import (
	"time"

	"gorm.io/gorm"
)

// Event represents a calendar entry as received from an event source.
// Only the identifier and start date are guaranteed to be present.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date"`
}

// Coordinate is a WGS84 point used as the traveler's origin location
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsValid reports whether the coordinate is usable as an origin.
// The zero value (0,0) is treated as unset.
func (c Coordinate) IsValid() bool {
	if c.Latitude == 0 && c.Longitude == 0 {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Airport describes one entry of the airport directory.
// Country carries the ISO-3166-1 alpha-2 code.
type Airport struct {
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	Coordinate    Coordinate `json:"coordinate"`
	Timezone      string     `json:"timezone"`
	International bool       `json:"international"`
	Terminals     []string   `json:"terminals,omitempty"`
}

// Location resolves the airport's IANA timezone, falling back to UTC
// when the identifier is missing or unknown.
func (a Airport) Location() *time.Location {
	if a.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DetectionSource identifies how a flight record was produced
type DetectionSource string

const (
	SourceStructuredEvent DetectionSource = "structuredEvent"
	SourceKeywordMatch    DetectionSource = "keywordMatch"
	SourceFlightNumber    DetectionSource = "flightNumberRegex"
	SourceManualEntry     DetectionSource = "manualEntry"
	SourceGoogleCalendar  DetectionSource = "googleCalendar"
	SourceICSCalendar     DetectionSource = "icsCalendar"
)

var sourceConfidence = map[DetectionSource]float64{
	SourceStructuredEvent: 0.95,
	SourceKeywordMatch:    0.60,
	SourceFlightNumber:    0.40,
	SourceManualEntry:     1.0,
	SourceGoogleCalendar:  0.90,
	SourceICSCalendar:     0.70,
}

// Confidence returns the fixed confidence score assigned to the source.
// Unknown sources score zero.
func (s DetectionSource) Confidence() float64 {
	return sourceConfidence[s]
}

// TransportMode enumerates the supported ways of reaching the airport
type TransportMode string

const (
	ModeCar     TransportMode = "car"
	ModeTransit TransportMode = "transit"
	ModeWalking TransportMode = "walking"
	ModeCycling TransportMode = "cycling"
)

func (m TransportMode) IsValid() bool {
	switch m {
	case ModeCar, ModeTransit, ModeWalking, ModeCycling:
		return true
	}
	return false
}

// AllTransportModes returns every supported mode in display order
func AllTransportModes() []TransportMode {
	return []TransportMode{ModeCar, ModeTransit, ModeWalking, ModeCycling}
}

// Tier identifies the subscription level driving buffer and mode rules
type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// TierConfig carries the tier together with optional per-mode pro buffer overrides
type TierConfig struct {
	Tier            Tier                            `json:"tier"`
	BufferOverrides map[TransportMode]time.Duration `json:"buffer_overrides,omitempty"`
}

// FlightStatus is the coarse lifecycle position of a flight
type FlightStatus string

const (
	StatusUnknown  FlightStatus = "unknown"
	StatusUpcoming FlightStatus = "upcoming"
	StatusDeparted FlightStatus = "departed"
)

// FlightState is the staged display state shown to the user
type FlightState string

const (
	StateUpcoming FlightState = "upcoming"
	StatePrepare  FlightState = "prepare"
	StateGoMode   FlightState = "goMode"
)

// Urgency grades how soon the user has to act on the leave time
type Urgency string

const (
	UrgencyRelaxed Urgency = "relaxed"
	UrgencySoon    Urgency = "soon"
	UrgencyUrgent  Urgency = "urgent"
)

// ManualFlight is the persisted form of a user-entered flight
type ManualFlight struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	FlightNumber  string         `json:"flight_number" gorm:"index"`
	DepartureCode string         `json:"departure_code" gorm:"not null"`
	ArrivalCode   string         `json:"arrival_code"`
	DepartureTime time.Time      `json:"departure_time" gorm:"index;not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// ManualFlightRequest represents data required to register a flight by hand
type ManualFlightRequest struct {
	FlightNumber  string    `json:"flight_number" form:"flight_number" binding:"omitempty,max=8"`
	DepartureCode string    `json:"departure_code" form:"departure_code" binding:"required,len=3,alpha"`
	ArrivalCode   string    `json:"arrival_code" form:"arrival_code" binding:"omitempty,len=3,alpha"`
	DepartureTime time.Time `json:"departure_time" form:"departure_time" binding:"required"`
}

// DetectRequest carries raw events submitted for flight detection
type DetectRequest struct {
	Events []Event `json:"events" binding:"required,dive"`
}

// LeaveTimeRequest represents the query for a leave-time calculation
type LeaveTimeRequest struct {
	FlightID      string  `json:"flight_id" form:"flight_id"`
	Latitude      float64 `json:"latitude" form:"latitude" binding:"gte=-90,lte=90"`
	Longitude     float64 `json:"longitude" form:"longitude" binding:"gte=-180,lte=180"`
	Mode          string  `json:"mode" form:"mode" binding:"omitempty,transportmode"`
	BufferMinutes *int    `json:"buffer_minutes" form:"buffer_minutes"`
}

// Origin converts the request's point into a Coordinate
func (r LeaveTimeRequest) Origin() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
