// Package sources provides the flight sources the coordinator queries:
// calendar-backed detection and manually entered flights.
package sources

import (
	"context"
	"time"

	"github.com/adrianrdguez/GoFast/models"
)

// FlightSource is one provider of upcoming flights
type FlightSource interface {
	// SourceName returns the human-readable name used in status summaries
	SourceName() string
	// RequiresAuth reports whether the source needs user authorization
	RequiresAuth() bool
	// IsAvailable reports whether the source can currently be fetched from
	IsAvailable(ctx context.Context) bool
	// LastSync returns when the source last fetched successfully, zero if never
	LastSync() time.Time
	// FetchFlights returns the source's upcoming flights
	FetchFlights(ctx context.Context) ([]models.Flight, error)
	// Disconnect clears the source's credentials and sync state
	Disconnect(ctx context.Context) error
}
