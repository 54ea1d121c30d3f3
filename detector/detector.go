// Package detector converts raw calendar events into structured flight
// records using tiered, confidence-scored text detection.
package detector

import (
	"context"
	"sort"
	"time"

	"github.com/adrianrdguez/GoFast/airports"
	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/parser"
)

// Detector runs the 3-tier detection pipeline over calendar events.
// Tiers are tried in descending confidence order and the first hit claims
// the event.
type Detector struct {
	directory *airports.Directory
}

func NewDetector(directory *airports.Directory) *Detector {
	return &Detector{directory: directory}
}

// Scan verifies read access on the source, lists the window and detects.
// Access failures surface before any parsing happens.
func (d *Detector) Scan(ctx context.Context, source EventSource, start, end time.Time) ([]models.Flight, error) {
	if err := d.ensureAccess(ctx, source); err != nil {
		return nil, err
	}
	events, err := source.ListEvents(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return d.DetectFlights(events)
}

func (d *Detector) ensureAccess(ctx context.Context, source EventSource) error {
	switch source.AuthorizationStatus(ctx) {
	case AuthorizationAuthorized:
		return nil
	case AuthorizationDenied:
		return errors.NewCalendarAccessDeniedError("calendar access was denied; re-request permission in settings")
	case AuthorizationRestricted:
		return errors.NewCalendarAccessRestrictedError("calendar access is restricted on this device")
	}
	granted, err := source.RequestAuthorization(ctx)
	if err != nil {
		return err
	}
	if !granted {
		return errors.NewCalendarAccessDeniedError("calendar authorization request was declined")
	}
	return nil
}

// DetectFlights turns events into deduplicated flights sorted by departure
// time ascending. An empty input window is an error; nonempty input that
// yields zero flights is not.
func (d *Detector) DetectFlights(events []models.Event) ([]models.Flight, error) {
	if len(events) == 0 {
		return nil, errors.NewNoEventsFoundError("no events found in the requested window")
	}

	claimed := make(map[string]bool, len(events))
	candidates := make([]models.Flight, 0, len(events))
	for _, event := range events {
		if event.ID != "" && claimed[event.ID] {
			continue
		}
		flight, ok := d.detectOne(event)
		if !ok {
			continue
		}
		if event.ID != "" {
			claimed[event.ID] = true
		}
		candidates = append(candidates, flight)
	}

	flights := Deduplicate(candidates)
	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].DepartureTime.Before(flights[j].DepartureTime)
	})
	return flights, nil
}

// detectOne tries the tiers in order. Tier 1 looks for an airport code in
// the title/notes, tier 2 only in the location field; keeping those scopes
// apart is what separates a 0.95 match from a 0.60 one.
func (d *Detector) detectOne(event models.Event) (models.Flight, bool) {
	contentText := event.Title + " " + event.Notes
	fullText := contentText + " " + event.Location

	// Tier 1: airport code in title/notes plus a travel keyword anywhere.
	if airport, ok := parser.ExtractIATACode(contentText, d.directory); ok && parser.ContainsFlightKeyword(fullText) {
		departure := d.resolveDeparture(event.Location, airport)
		return d.buildFlight(event, fullText, departure, models.SourceStructuredEvent)
	}

	// Tier 2: travel keyword anywhere plus an airport code specifically in
	// the location field. Codes buried in title/notes do not count here.
	if parser.ContainsFlightKeyword(fullText) {
		if airport, ok := parser.ExtractIATACode(event.Location, d.directory); ok {
			return d.buildFlight(event, fullText, airport, models.SourceKeywordMatch)
		}
	}

	// Tier 3: a flight-number-shaped token plus any resolvable airport code.
	if parser.ExtractFlightNumber(fullText) != "" {
		if airport, ok := parser.ExtractIATACode(fullText, d.directory); ok {
			departure := d.resolveDeparture(event.Location, airport)
			return d.buildFlight(event, fullText, departure, models.SourceFlightNumber)
		}
	}

	return models.Flight{}, false
}

// resolveDeparture prefers a code from the location field, where calendar
// events name the airport the user leaves from; titles usually carry the
// destination ("Flight AA123 to BKK").
func (d *Detector) resolveDeparture(location string, fallback models.Airport) models.Airport {
	if airport, ok := parser.ExtractIATACode(location, d.directory); ok {
		return airport
	}
	return fallback
}

func (d *Detector) buildFlight(event models.Event, fullText string, departure models.Airport, source models.DetectionSource) (models.Flight, bool) {
	flight, err := models.NewFlight(parser.ExtractFlightNumber(fullText), departure, event.StartDate, source)
	if err != nil {
		return models.Flight{}, false
	}
	flight.Airline = parser.ExtractAirline(flight.FlightNumber)
	flight.Terminal = parser.ExtractTerminal(fullText)
	flight.Gate = parser.ExtractGate(fullText)
	if !event.EndDate.IsZero() && event.EndDate.After(event.StartDate) {
		arrival := event.EndDate.UTC()
		flight.ArrivalTime = &arrival
	}
	return *flight, true
}

// Deduplicate keeps exactly one flight per dedup key: the record with the
// highest detection confidence, first-encountered winning ties. The relative
// order of surviving keys follows the input.
func Deduplicate(flights []models.Flight) []models.Flight {
	position := make(map[string]int, len(flights))
	out := make([]models.Flight, 0, len(flights))
	for _, flight := range flights {
		key := flight.DedupKey()
		if i, seen := position[key]; seen {
			if flight.Confidence() > out[i].Confidence() {
				out[i] = flight
			}
			continue
		}
		position[key] = len(out)
		out = append(out, flight)
	}
	return out
}
