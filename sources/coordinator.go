package sources

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/metrics"
	"github.com/adrianrdguez/GoFast/models"
)

// Coordinator queries flight sources in priority order and returns the first
// successful result. Results are never merged across sources.
type Coordinator struct {
	sources []FlightSource
}

// NewCoordinator creates a coordinator over the given sources, highest
// priority first
func NewCoordinator(sources ...FlightSource) *Coordinator {
	return &Coordinator{sources: sources}
}

// FetchFlights walks the sources in priority order: unavailable sources are
// skipped, a failing source is recorded and the next one tried. When every
// available source failed the last error surfaces; when none was available
// at all that is its own condition.
func (c *Coordinator) FetchFlights(ctx context.Context) ([]models.Flight, error) {
	var lastErr error
	available := 0

	for _, source := range c.sources {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !source.IsAvailable(ctx) {
			slog.Debug("flight source unavailable", "source", source.SourceName())
			continue
		}
		available++

		flights, err := source.FetchFlights(ctx)
		if err != nil {
			// Cancellation is the caller's doing, not a source failure
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			metrics.RecordSourceFetch(source.SourceName(), false)
			slog.Info("flight source failed, trying next", "source", source.SourceName(), "error", err)
			lastErr = err
			continue
		}

		metrics.RecordSourceFetch(source.SourceName(), true)
		return flights, nil
	}

	if available == 0 {
		return nil, errors.NewNoDataSourceError("no flight source is available", nil)
	}
	return nil, lastErr
}

// StatusSummary describes the first available source in a sentence fit for
// direct display
func (c *Coordinator) StatusSummary(ctx context.Context) string {
	for _, source := range c.sources {
		if !source.IsAvailable(ctx) {
			continue
		}
		lastSync := source.LastSync()
		if lastSync.IsZero() {
			return fmt.Sprintf("connected to %s, never synced", source.SourceName())
		}
		return fmt.Sprintf("connected to %s, last synced %s", source.SourceName(), humanize.Time(lastSync))
	}
	return "no calendar connected"
}

// SourceStatus is the per-source view returned by the status endpoint
type SourceStatus struct {
	Name          string    `json:"name"`
	Available     bool      `json:"available"`
	RequiresAuth  bool      `json:"requires_auth"`
	LastSync      time.Time `json:"last_sync"`
	LastSyncHuman string    `json:"last_sync_human"`
}

// Status reports every source's availability and sync recency in order
func (c *Coordinator) Status(ctx context.Context) []SourceStatus {
	statuses := make([]SourceStatus, 0, len(c.sources))
	for _, source := range c.sources {
		status := SourceStatus{
			Name:          source.SourceName(),
			Available:     source.IsAvailable(ctx),
			RequiresAuth:  source.RequiresAuth(),
			LastSync:      source.LastSync(),
			LastSyncHuman: "never",
		}
		if !status.LastSync.IsZero() {
			status.LastSyncHuman = humanize.Time(status.LastSync)
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// DisconnectAll clears every source's credentials and sync state. This is
// irreversible without re-authentication.
func (c *Coordinator) DisconnectAll(ctx context.Context) error {
	var errs []error
	for _, source := range c.sources {
		if err := source.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", source.SourceName(), err))
		}
	}
	return stderrors.Join(errs...)
}

// CoordinatorBuilder assembles a coordinator from sources in priority order
type CoordinatorBuilder struct {
	sources []FlightSource
}

func NewCoordinatorBuilder() *CoordinatorBuilder {
	return &CoordinatorBuilder{
		sources: make([]FlightSource, 0),
	}
}

// AddSource appends a source at the next lower priority
func (cb *CoordinatorBuilder) AddSource(source FlightSource) *CoordinatorBuilder {
	cb.sources = append(cb.sources, source)
	return cb
}

func (cb *CoordinatorBuilder) Build() *Coordinator {
	return NewCoordinator(cb.sources...)
}
