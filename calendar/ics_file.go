package calendar

import (
	"context"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/adrianrdguez/GoFast/config"
	"github.com/adrianrdguez/GoFast/detector"
	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
)

// ICSFile reads events from a local iCalendar (.ics) file, typically an
// export or a subscription synced to disk by another tool.
type ICSFile struct {
	path string
}

// NewICSFile creates a new ICS file event source
func NewICSFile(config *config.CalendarConfig) *ICSFile {
	return &ICSFile{path: config.ICSPath}
}

// AuthorizationStatus reports whether the calendar file can be read
func (f *ICSFile) AuthorizationStatus(ctx context.Context) detector.AuthorizationStatus {
	if f.path == "" {
		return detector.AuthorizationNotDetermined
	}
	if _, err := os.Stat(f.path); err != nil {
		if os.IsPermission(err) {
			return detector.AuthorizationRestricted
		}
		return detector.AuthorizationDenied
	}
	return detector.AuthorizationAuthorized
}

// RequestAuthorization re-checks file access; there is no interactive
// flow for a local file.
func (f *ICSFile) RequestAuthorization(ctx context.Context) (bool, error) {
	return f.AuthorizationStatus(ctx) == detector.AuthorizationAuthorized, nil
}

// ListEvents parses the calendar file and returns the events whose start
// falls inside the given window
func (f *ICSFile) ListEvents(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, errors.NewCalendarAccessRestrictedError("calendar file access is restricted")
		}
		return nil, errors.NewCalendarAccessDeniedError("calendar file cannot be read")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			// Ignore close error as it's not critical for the main operation
			_ = closeErr
		}
	}()

	cal, err := ics.ParseCalendar(file)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to parse calendar file", err)
	}

	items := cal.Events()
	events := make([]models.Event, 0, len(items))
	for _, item := range items {
		startAt, err := item.GetStartAt()
		if err != nil || startAt.IsZero() {
			continue
		}
		if startAt.Before(start) || startAt.After(end) {
			continue
		}
		endAt, err := item.GetEndAt()
		if err != nil {
			endAt = time.Time{}
		}
		events = append(events, models.Event{
			ID:        item.Id(),
			Title:     propertyValue(item, ics.ComponentPropertySummary),
			Notes:     propertyValue(item, ics.ComponentPropertyDescription),
			Location:  propertyValue(item, ics.ComponentPropertyLocation),
			StartDate: startAt,
			EndDate:   endAt,
		})
	}

	return events, nil
}

func propertyValue(event *ics.VEvent, name ics.ComponentProperty) string {
	prop := event.GetProperty(name)
	if prop == nil {
		return ""
	}
	return prop.Value
}
