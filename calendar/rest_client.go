// Package calendar provides the event sources flights are detected from:
// a remote REST calendar API and a local ICS file.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/adrianrdguez/GoFast/config"
	"github.com/adrianrdguez/GoFast/detector"
	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
)

// RESTClient reads events from a JSON calendar API compatible with the
// Google Calendar v3 event list shape. Authentication uses a static
// bearer token; obtaining and refreshing the token is out of scope.
type RESTClient struct {
	baseURL    string
	calendarID string
	token      string
	client     *http.Client
}

// NewRESTClient creates a new calendar API client
func NewRESTClient(config *config.CalendarConfig) *RESTClient {
	return &RESTClient{
		baseURL:    config.BaseURL,
		calendarID: config.CalendarID,
		token:      config.Token,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthorizationStatus reports the access state of the remote calendar.
// Without a token the source is not determined; a configured token is
// treated as granted access until the API says otherwise.
func (c *RESTClient) AuthorizationStatus(ctx context.Context) detector.AuthorizationStatus {
	if c.token == "" {
		return detector.AuthorizationNotDetermined
	}
	return detector.AuthorizationAuthorized
}

// RequestAuthorization reports whether access can be granted. A static
// token either exists or it does not, so no interactive flow happens here.
func (c *RESTClient) RequestAuthorization(ctx context.Context) (bool, error) {
	return c.token != "", nil
}

// ListEvents retrieves events whose start falls inside the given window
func (c *RESTClient) ListEvents(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to create calendar request", err)
	}

	query := req.URL.Query()
	query.Set("timeMin", start.UTC().Format(time.RFC3339))
	query.Set("timeMax", end.UTC().Format(time.RFC3339))
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		// Cancellation must reach the caller unwrapped
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.NewExternalAPIError("failed to list calendar events", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			// Ignore close error as it's not critical for the main operation
			_ = closeErr
		}
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, errors.NewCalendarAccessDeniedError("calendar API rejected the access token")
	case resp.StatusCode == http.StatusForbidden:
		return nil, errors.NewCalendarAccessRestrictedError("calendar API access is restricted")
	case resp.StatusCode != http.StatusOK:
		return nil, errors.NewExternalAPIError(fmt.Sprintf("calendar API returned status code %d", resp.StatusCode), nil)
	}

	var list eventList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode calendar response", err)
	}

	events := make([]models.Event, 0, len(list.Items))
	for _, item := range list.Items {
		startAt, err := item.Start.resolve()
		if err != nil || startAt.IsZero() {
			// Events without a usable start date cannot hold a departure
			continue
		}
		endAt, err := item.End.resolve()
		if err != nil {
			endAt = time.Time{}
		}
		events = append(events, models.Event{
			ID:        item.ID,
			Title:     item.Summary,
			Notes:     item.Description,
			Location:  item.Location,
			StartDate: startAt,
			EndDate:   endAt,
		})
	}

	return events, nil
}

type eventList struct {
	Items []eventItem `json:"items"`
}

type eventItem struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Start       eventTime `json:"start"`
	End         eventTime `json:"end"`
}

// eventTime carries either a timed start (dateTime) or an all-day
// date, mirroring the calendar API wire format.
type eventTime struct {
	DateTime string `json:"dateTime"`
	Date     string `json:"date"`
}

func (t eventTime) resolve() (time.Time, error) {
	if t.DateTime != "" {
		return time.Parse(time.RFC3339, t.DateTime)
	}
	if t.Date != "" {
		return time.Parse("2006-01-02", t.Date)
	}
	return time.Time{}, nil
}
