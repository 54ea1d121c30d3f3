package sources

import (
	"context"
	"sync"
	"time"

	"github.com/adrianrdguez/GoFast/detector"
	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
)

// DefaultScanWindow is how far ahead a calendar source scans for flights
const DefaultScanWindow = 7 * 24 * time.Hour

// CalendarSource detects flights from a calendar event source. Flights it
// returns carry the source's provider tag instead of the per-event tier tag,
// so confidence reflects where the data came from.
type CalendarSource struct {
	name       string
	tag        models.DetectionSource
	events     detector.EventSource
	detector   *detector.Detector
	scanWindow time.Duration

	mu           sync.RWMutex
	lastSync     time.Time
	disconnected bool
}

// NewGoogleCalendarSource creates a source backed by the remote calendar API
func NewGoogleCalendarSource(events detector.EventSource, det *detector.Detector, scanWindow time.Duration) *CalendarSource {
	return newCalendarSource("Google Calendar", models.SourceGoogleCalendar, events, det, scanWindow)
}

// NewICSCalendarSource creates a source backed by a local calendar file
func NewICSCalendarSource(events detector.EventSource, det *detector.Detector, scanWindow time.Duration) *CalendarSource {
	return newCalendarSource("Calendar File", models.SourceICSCalendar, events, det, scanWindow)
}

func newCalendarSource(name string, tag models.DetectionSource, events detector.EventSource, det *detector.Detector, scanWindow time.Duration) *CalendarSource {
	if scanWindow <= 0 {
		scanWindow = DefaultScanWindow
	}
	return &CalendarSource{
		name:       name,
		tag:        tag,
		events:     events,
		detector:   det,
		scanWindow: scanWindow,
	}
}

// SourceName returns the source's display name
func (s *CalendarSource) SourceName() string {
	return s.name
}

// RequiresAuth reports that calendar access needs user authorization
func (s *CalendarSource) RequiresAuth() bool {
	return true
}

// IsAvailable reports whether the calendar can be scanned. A disconnected
// source stays unavailable until the process reconfigures it.
func (s *CalendarSource) IsAvailable(ctx context.Context) bool {
	s.mu.RLock()
	disconnected := s.disconnected
	s.mu.RUnlock()
	if disconnected {
		return false
	}

	switch s.events.AuthorizationStatus(ctx) {
	case detector.AuthorizationDenied, detector.AuthorizationRestricted:
		return false
	}
	return true
}

// LastSync returns when the source last fetched successfully
func (s *CalendarSource) LastSync() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync
}

// FetchFlights scans the calendar window and returns detected flights
// re-tagged with this source's provider tag
func (s *CalendarSource) FetchFlights(ctx context.Context) ([]models.Flight, error) {
	s.mu.RLock()
	disconnected := s.disconnected
	s.mu.RUnlock()
	if disconnected {
		return nil, errors.NewCalendarAccessDeniedError("calendar source has been disconnected")
	}

	start := time.Now().UTC()
	flights, err := s.detector.Scan(ctx, s.events, start, start.Add(s.scanWindow))
	if err != nil {
		return nil, err
	}

	for i := range flights {
		flights[i].Source = s.tag
	}

	s.mu.Lock()
	s.lastSync = time.Now().UTC()
	s.mu.Unlock()

	return flights, nil
}

// Disconnect drops the source's sync state and marks it unavailable.
// Irreversible without reconfiguring the source.
func (s *CalendarSource) Disconnect(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disconnected = true
	s.lastSync = time.Time{}
	return nil
}
