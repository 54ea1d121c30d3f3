package detector

import (
	"context"
	"time"

	"github.com/adrianrdguez/GoFast/models"
)

// AuthorizationStatus mirrors the permission states that calendar backends
// report for read access.
type AuthorizationStatus string

const (
	AuthorizationNotDetermined AuthorizationStatus = "notDetermined"
	AuthorizationAuthorized    AuthorizationStatus = "authorized"
	AuthorizationDenied        AuthorizationStatus = "denied"
	AuthorizationRestricted    AuthorizationStatus = "restricted"
)

// EventSource is the calendar boundary the detector scans. Implementations
// wrap a remote calendar API or a local calendar file.
type EventSource interface {
	// AuthorizationStatus reports the current read-access state.
	AuthorizationStatus(ctx context.Context) AuthorizationStatus
	// RequestAuthorization asks for read access; it may block on user action.
	RequestAuthorization(ctx context.Context) (bool, error)
	// ListEvents returns events whose start date falls inside [start, end].
	ListEvents(ctx context.Context, start, end time.Time) ([]models.Event, error)
}
