package service

import (
	"context"
	stderrors "errors"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/adrianrdguez/GoFast/config"
	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/flightstate"
	"github.com/adrianrdguez/GoFast/metrics"
	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/snapshot"
	"github.com/adrianrdguez/GoFast/sources"
)

// noFlightHint is shown on the display when no source produced a flight
const noFlightHint = "no upcoming flights detected, add one manually"

// FlightService ties detection, leave-time calculation and the display
// snapshot together and carries the business rules between them
type FlightService struct {
	detector     FlightDetectorInterface
	coordinator  FlightFetcherInterface
	calculator   LeaveTimeCalculatorInterface
	engine       *flightstate.Engine
	repository   ManualFlightRepositoryInterface
	snapshots    *snapshot.Store
	transport    TransportInfoInterface
	config       *config.CalculatorConfig
	refreshGroup singleflight.Group
}

// NewFlightService creates a new flight service
func NewFlightService(
	detector FlightDetectorInterface,
	coordinator FlightFetcherInterface,
	calculator LeaveTimeCalculatorInterface,
	engine *flightstate.Engine,
	repository ManualFlightRepositoryInterface,
	snapshots *snapshot.Store,
	transport TransportInfoInterface,
	config *config.CalculatorConfig,
) *FlightService {
	return &FlightService{
		detector:    detector,
		coordinator: coordinator,
		calculator:  calculator,
		engine:      engine,
		repository:  repository,
		snapshots:   snapshots,
		transport:   transport,
		config:      config,
	}
}

// DetectFlights runs detection over caller-provided calendar events
func (s *FlightService) DetectFlights(events []models.Event) ([]models.Flight, error) {
	log.Printf("[DEBUG] FlightService.DetectFlights called with %d events\n", len(events))

	flights, err := s.detector.DetectFlights(events)
	if err != nil {
		log.Printf("[ERROR] Flight detection error: %v\n", err)
		return nil, err
	}

	for _, flight := range flights {
		metrics.RecordDetection(string(flight.Source))
	}

	log.Printf("[DEBUG] Detected %d flights\n", len(flights))
	return flights, nil
}

// FetchFlights returns the upcoming flights from the first source that answers
func (s *FlightService) FetchFlights(ctx context.Context) ([]models.Flight, error) {
	log.Printf("[DEBUG] FlightService.FetchFlights called\n")

	flights, err := s.coordinator.FetchFlights(ctx)
	if err != nil {
		log.Printf("[ERROR] Flight source error: %v\n", err)
		return nil, err
	}

	log.Printf("[DEBUG] Fetched %d flights\n", len(flights))
	return flights, nil
}

// NextFlight returns the soonest flight that has not yet departed
func (s *FlightService) NextFlight(ctx context.Context) (*models.Flight, error) {
	flights, err := s.coordinator.FetchFlights(ctx)
	if err != nil {
		return nil, err
	}

	next := nextUpcoming(flights, time.Now().UTC())
	if next == nil {
		return nil, errors.NewNotFoundError("no upcoming flights")
	}
	return next, nil
}

// RefreshSnapshot rebuilds the display snapshot from fresh source data.
// Concurrent refreshes are coalesced into a single rebuild.
func (s *FlightService) RefreshSnapshot(ctx context.Context) (*models.DisplaySnapshot, error) {
	result, err, _ := s.refreshGroup.Do("snapshot", func() (interface{}, error) {
		return s.rebuildSnapshot(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.DisplaySnapshot), nil
}

func (s *FlightService) rebuildSnapshot(ctx context.Context) (*models.DisplaySnapshot, error) {
	log.Printf("[DEBUG] FlightService.RefreshSnapshot rebuilding display snapshot\n")
	startTime := time.Now()

	snap, err := s.composeSnapshot(ctx, startTime.UTC())
	if err != nil {
		return nil, err
	}

	if err := s.snapshots.Save(ctx, snap); err != nil {
		log.Printf("[WARNING] Failed to store display snapshot: %v\n", err)
	}

	metrics.ObserveRefreshLatency(time.Since(startTime).Seconds())
	return snap, nil
}

func (s *FlightService) composeSnapshot(ctx context.Context, now time.Time) (*models.DisplaySnapshot, error) {
	flights, err := s.coordinator.FetchFlights(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if isEmptyResult(err) {
			return s.emptySnapshot(now), nil
		}
		log.Printf("[ERROR] Snapshot refresh could not fetch flights: %v\n", err)
		return nil, err
	}

	next := nextUpcoming(flights, now)
	if next == nil {
		return s.emptySnapshot(now), nil
	}

	mode := s.defaultMode()
	calculation, err := s.calculator.LeaveTime(ctx, next, s.homeOrigin(), mode, s.tierConfig(nil, mode))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// The display degrades to departure-only data when no travel time is available
		log.Printf("[WARNING] Leave time unavailable for flight %s: %v\n", next.FlightNumber, err)
		calculation = nil
	}

	state := s.engine.ClassifyState(*next, calculation, now)

	return &models.DisplaySnapshot{
		Flight:          next,
		Calculation:     calculation,
		State:           state,
		Urgency:         s.engine.ClassifyUrgency(calculation, now),
		RefreshInterval: s.engine.RefreshInterval(state),
		GeneratedAt:     now,
	}, nil
}

// emptySnapshot is the renderable "nothing scheduled" state. Finding zero
// flights is a valid outcome, not a refresh failure.
func (s *FlightService) emptySnapshot(now time.Time) *models.DisplaySnapshot {
	return &models.DisplaySnapshot{
		RefreshInterval: s.engine.RefreshInterval(models.StateUpcoming),
		Hint:            noFlightHint,
		GeneratedAt:     now,
	}
}

// isEmptyResult reports whether err means "no flights anywhere" rather than a failure
func isEmptyResult(err error) bool {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Type == errors.NoEventsFound || appErr.Type == errors.NoDataSourceAvailable
}

// CurrentSnapshot returns the stored display snapshot, rebuilding it when missing
func (s *FlightService) CurrentSnapshot(ctx context.Context) (*models.DisplaySnapshot, error) {
	if snap, found := s.snapshots.Current(ctx); found {
		return snap, nil
	}
	return s.RefreshSnapshot(ctx)
}

// DisplayView is the widget payload: the snapshot plus its projected timeline
type DisplayView struct {
	Snapshot *models.DisplaySnapshot     `json:"snapshot"`
	Timeline []flightstate.TimelineEntry `json:"timeline,omitempty"`
}

// Display returns the snapshot together with the timeline the widget renders
func (s *FlightService) Display(ctx context.Context) (*DisplayView, error) {
	snap, err := s.CurrentSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	view := &DisplayView{Snapshot: snap}
	if snap.HasFlight() {
		view.Timeline = s.engine.Timeline(*snap.Flight, snap.Calculation, time.Now().UTC())
	}
	return view, nil
}

// LeaveTime calculates when to leave for the requested flight
func (s *FlightService) LeaveTime(ctx context.Context, req *models.LeaveTimeRequest) (*models.LeaveTimeCalculation, error) {
	log.Printf("[DEBUG] FlightService.LeaveTime called\n")

	if req == nil {
		return nil, errors.NewValidationError("request cannot be nil")
	}

	flight, err := s.resolveFlight(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}

	mode := s.resolveMode(req.Mode)
	return s.calculator.LeaveTime(ctx, flight, s.resolveOrigin(req), mode, s.tierConfig(req.BufferMinutes, mode))
}

// LeaveTimeOptions calculates leave times for several transport modes at once
func (s *FlightService) LeaveTimeOptions(ctx context.Context, req *models.LeaveTimeRequest, modes []models.TransportMode) ([]models.LeaveTimeCalculation, error) {
	log.Printf("[DEBUG] FlightService.LeaveTimeOptions called with %d modes\n", len(modes))

	if req == nil {
		return nil, errors.NewValidationError("request cannot be nil")
	}

	flight, err := s.resolveFlight(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}

	return s.calculator.LeaveTimeOptions(ctx, flight, s.resolveOrigin(req), modes, s.tierConfig(req.BufferMinutes, modes...))
}

// AddManualFlight stores a user-entered flight and refreshes the display
func (s *FlightService) AddManualFlight(ctx context.Context, req *models.ManualFlightRequest) (*models.Flight, error) {
	if req == nil {
		return nil, errors.NewValidationError("request cannot be nil")
	}

	log.Printf("[DEBUG] FlightService.AddManualFlight called for flight: %s\n", req.FlightNumber)

	if !req.DepartureTime.After(time.Now()) {
		return nil, errors.NewInvalidFlightError("departure time must be in the future")
	}

	record := &models.ManualFlight{
		FlightNumber:  req.FlightNumber,
		DepartureCode: req.DepartureCode,
		ArrivalCode:   req.ArrivalCode,
		DepartureTime: req.DepartureTime,
	}
	if err := s.repository.Create(record); err != nil {
		log.Printf("[ERROR] Failed to store manual flight: %v\n", err)
		return nil, err
	}

	metrics.RecordDetection(string(models.SourceManualEntry))

	flight, err := s.repository.FindByID(record.ID)
	if err != nil {
		return nil, err
	}

	// Refresh so the new flight can take over the display without waiting a cycle
	if _, err := s.RefreshSnapshot(ctx); err != nil {
		log.Printf("[WARNING] Snapshot refresh after manual entry failed: %v\n", err)
	}

	return flight, nil
}

// CleanupDepartedFlights removes manual entries whose grace window has passed
func (s *FlightService) CleanupDepartedFlights() (int64, error) {
	deleted, err := s.repository.DeleteDeparted(time.Now().UTC())
	if err != nil {
		log.Printf("[ERROR] Departed flight cleanup failed: %v\n", err)
		return 0, err
	}
	if deleted > 0 {
		log.Printf("[DEBUG] Removed %d departed manual flights\n", deleted)
	}
	return deleted, nil
}

// SourceStatusReport describes the connection state of every flight source
type SourceStatusReport struct {
	Summary string                 `json:"summary"`
	Sources []sources.SourceStatus `json:"sources"`
}

// SourceStatus reports how each flight source is doing
func (s *FlightService) SourceStatus(ctx context.Context) *SourceStatusReport {
	return &SourceStatusReport{
		Summary: s.coordinator.StatusSummary(ctx),
		Sources: s.coordinator.Status(ctx),
	}
}

// DisconnectAll disconnects every flight source and clears the stored
// snapshot. Manual entries stay in the database.
func (s *FlightService) DisconnectAll(ctx context.Context) error {
	log.Printf("[DEBUG] FlightService.DisconnectAll called\n")

	err := s.coordinator.DisconnectAll(ctx)
	s.snapshots.Clear(ctx)
	if err != nil {
		log.Printf("[ERROR] Source disconnect error: %v\n", err)
		return err
	}
	return nil
}

// ProviderInfo exposes how the travel-time stack is wired, for the debug endpoint
func (s *FlightService) ProviderInfo() map[string]interface{} {
	if s.transport == nil {
		return map[string]interface{}{}
	}
	return s.transport.GetProviderInfo()
}

// resolveFlight picks the flight a leave-time request refers to: an explicit
// ID wins, otherwise the flight currently on display.
func (s *FlightService) resolveFlight(ctx context.Context, flightID string) (*models.Flight, error) {
	if flightID != "" {
		if snap, found := s.snapshots.Current(ctx); found && snap.HasFlight() && snap.Flight.ID == flightID {
			return snap.Flight, nil
		}
		return s.repository.FindByID(flightID)
	}

	snap, err := s.CurrentSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !snap.HasFlight() {
		return nil, errors.NewNotFoundError("no upcoming flight to calculate for")
	}
	return snap.Flight, nil
}

func (s *FlightService) resolveOrigin(req *models.LeaveTimeRequest) models.Coordinate {
	if origin := req.Origin(); origin.IsValid() {
		return origin
	}
	return s.homeOrigin()
}

func (s *FlightService) resolveMode(requested string) models.TransportMode {
	if requested == "" {
		return s.defaultMode()
	}
	return models.TransportMode(requested)
}

// tierConfig builds the effective tier, fanning a request's buffer override
// out to the modes that request computes. No modes means all of them.
func (s *FlightService) tierConfig(bufferMinutes *int, modes ...models.TransportMode) models.TierConfig {
	tier := models.TierConfig{Tier: models.Tier(s.config.Tier)}
	if tier.Tier != models.TierPro {
		return tier
	}

	minutes := s.config.ProBufferMinutes
	if bufferMinutes != nil {
		minutes = *bufferMinutes
	}
	if minutes < 0 {
		return tier
	}

	if len(modes) == 0 {
		modes = models.AllTransportModes()
	}
	override := time.Duration(minutes) * time.Minute
	tier.BufferOverrides = make(map[models.TransportMode]time.Duration, len(modes))
	for _, mode := range modes {
		tier.BufferOverrides[mode] = override
	}
	return tier
}

func (s *FlightService) homeOrigin() models.Coordinate {
	return models.Coordinate{Latitude: s.config.HomeLat, Longitude: s.config.HomeLon}
}

func (s *FlightService) defaultMode() models.TransportMode {
	return models.TransportMode(s.config.DefaultMode)
}

// nextUpcoming returns the earliest flight still inside its departure grace window
func nextUpcoming(flights []models.Flight, now time.Time) *models.Flight {
	var next *models.Flight
	for i := range flights {
		if flights[i].Status(now) == models.StatusDeparted {
			continue
		}
		if next == nil || flights[i].DepartureTime.Before(next.DepartureTime) {
			next = &flights[i]
		}
	}
	return next
}
