// Package calculator answers "when do I have to leave for my flight" from
// the departure time, airport procedures, tier buffers and travel time.
package calculator

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/adrianrdguez/GoFast/airports"
	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/transport"
)

// Procedure and buffer durations by flight scope and tier
const (
	DomesticProcedure       = 90 * time.Minute
	InternationalProcedure  = 180 * time.Minute
	FreeDomesticBuffer      = 15 * time.Minute
	FreeInternationalBuffer = 30 * time.Minute
	ProDefaultBuffer        = 20 * time.Minute
	MaxProBuffer            = 60 * time.Minute
)

// TravelTimeProvider resolves door-to-airport travel durations
type TravelTimeProvider interface {
	ETA(ctx context.Context, origin models.Coordinate, dest models.Airport, mode models.TransportMode) (*transport.ETA, error)
}

// Calculator computes leave times for upcoming flights
type Calculator struct {
	directory *airports.Directory
	transport TravelTimeProvider
}

// NewCalculator creates a new leave-time calculator
func NewCalculator(directory *airports.Directory, travel TravelTimeProvider) *Calculator {
	return &Calculator{
		directory: directory,
		transport: travel,
	}
}

// tripPlan carries the validated inputs shared by every mode of one request
type tripPlan struct {
	airport    models.Airport
	procedure  time.Duration
	freeBuffer time.Duration
	tier       models.TierConfig
}

// bufferFor resolves the buffer for one transport mode. Free tier keys the
// buffer by flight scope; pro uses its default unless the mode carries an
// override, clamped to [0, MaxProBuffer].
func (p *tripPlan) bufferFor(mode models.TransportMode) (time.Duration, bool) {
	if p.tier.Tier != models.TierPro {
		return p.freeBuffer, false
	}
	override, ok := p.tier.BufferOverrides[mode]
	if !ok {
		return ProDefaultBuffer, false
	}
	if override < 0 {
		override = 0
	}
	if override > MaxProBuffer {
		override = MaxProBuffer
	}
	return override, true
}

// LeaveTime computes the single leave-time calculation for one transport mode.
// Free tier requests are always calculated for the car.
func (c *Calculator) LeaveTime(ctx context.Context, flight *models.Flight, origin models.Coordinate, mode models.TransportMode, tier models.TierConfig) (*models.LeaveTimeCalculation, error) {
	now := time.Now().UTC()

	plan, err := c.prepare(flight, origin, tier, now)
	if err != nil {
		return nil, err
	}

	resolvedMode, err := resolveMode(mode, tier)
	if err != nil {
		return nil, err
	}

	eta, err := c.transport.ETA(ctx, origin, plan.airport, resolvedMode)
	if err != nil {
		// Cancellation must reach the caller unwrapped
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.NewTransportCalculationError("could not determine travel time", err)
	}

	return buildCalculation(flight, plan, resolvedMode, eta, now), nil
}

// LeaveTimeOptions computes calculations across transport modes, sorted by
// leave time ascending. Pro tier only; free tier gets the single car option.
// Modes that fail to produce a travel time are skipped.
func (c *Calculator) LeaveTimeOptions(ctx context.Context, flight *models.Flight, origin models.Coordinate, modes []models.TransportMode, tier models.TierConfig) ([]models.LeaveTimeCalculation, error) {
	now := time.Now().UTC()

	plan, err := c.prepare(flight, origin, tier, now)
	if err != nil {
		return nil, err
	}

	if tier.Tier != models.TierPro {
		eta, err := c.transport.ETA(ctx, origin, plan.airport, models.ModeCar)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, errors.NewTransportCalculationError("could not determine travel time", err)
		}
		return []models.LeaveTimeCalculation{*buildCalculation(flight, plan, models.ModeCar, eta, now)}, nil
	}

	if len(modes) == 0 {
		modes = models.AllTransportModes()
	}

	results := make([]*models.LeaveTimeCalculation, len(modes))
	group, groupCtx := errgroup.WithContext(ctx)

	for i, mode := range modes {
		if !mode.IsValid() {
			continue
		}
		i, mode := i, mode
		group.Go(func() error {
			eta, err := c.transport.ETA(groupCtx, origin, plan.airport, mode)
			if err != nil {
				// Cancellation aborts the whole call; other failures
				// only cost this mode its slot
				if groupCtx.Err() != nil {
					return groupCtx.Err()
				}
				slog.Info("transport mode skipped", "mode", mode, "error", err)
				return nil
			}
			results[i] = buildCalculation(flight, plan, mode, eta, now)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	options := make([]models.LeaveTimeCalculation, 0, len(results))
	for _, calc := range results {
		if calc != nil {
			options = append(options, *calc)
		}
	}

	if len(options) == 0 {
		return nil, errors.NewTransportCalculationError("no transport mode produced a travel time", nil)
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].LeaveTime.Before(options[j].LeaveTime)
	})

	return options, nil
}

func (c *Calculator) prepare(flight *models.Flight, origin models.Coordinate, tier models.TierConfig, now time.Time) (*tripPlan, error) {
	if flight == nil {
		return nil, errors.NewInvalidFlightError("no flight to calculate for")
	}
	if !flight.DepartureTime.After(now) {
		return nil, errors.NewInvalidFlightError("flight departure is not in the future")
	}
	if !origin.IsValid() {
		return nil, errors.NewLocationUnavailableError("origin location is not available")
	}

	airport, ok := c.directory.Find(flight.Departure.Code)
	if !ok {
		return nil, errors.NewAirportNotFoundError(flight.Departure.Code)
	}

	international := airport.International
	if flight.Arrival != nil {
		international = flight.Arrival.Country != airport.Country
	}

	procedure := DomesticProcedure
	freeBuffer := FreeDomesticBuffer
	if international {
		procedure = InternationalProcedure
		freeBuffer = FreeInternationalBuffer
	}

	return &tripPlan{
		airport:    airport,
		procedure:  procedure,
		freeBuffer: freeBuffer,
		tier:       tier,
	}, nil
}

// resolveMode applies the tier's mode rules: free tier rides by car only
func resolveMode(mode models.TransportMode, tier models.TierConfig) (models.TransportMode, error) {
	if tier.Tier != models.TierPro {
		return models.ModeCar, nil
	}
	if !mode.IsValid() {
		return "", errors.NewValidationError("unsupported transport mode")
	}
	return mode, nil
}

func buildCalculation(flight *models.Flight, plan *tripPlan, mode models.TransportMode, eta *transport.ETA, now time.Time) *models.LeaveTimeCalculation {
	buffer, customized := plan.bufferFor(mode)
	airportArrival := flight.DepartureTime.Add(-(plan.procedure + buffer))
	leaveTime := airportArrival.Add(-eta.Duration)

	return &models.LeaveTimeCalculation{
		Flight:             *flight,
		Mode:               mode,
		LeaveTime:          leaveTime,
		AirportArrivalTime: airportArrival,
		DepartureTime:      flight.DepartureTime,
		TransportDuration:  eta.Duration,
		ProcedureDuration:  plan.procedure,
		BufferDuration:     buffer,
		TransportEstimated: eta.Estimated,
		ProCustomized:      customized,
		CalculatedAt:       now,
	}
}
