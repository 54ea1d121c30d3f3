package transport

import (
	"context"
	"time"

	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/pkg/geo"
)

// estimatorSpeeds holds assumed average speeds in km/h per transport mode
var estimatorSpeeds = map[models.TransportMode]float64{
	models.ModeCar:     45,
	models.ModeTransit: 30,
	models.ModeCycling: 15,
	models.ModeWalking: 5,
}

// uncertaintyMarkup widens estimates because great-circle distance
// understates real route length.
const uncertaintyMarkup = 1.2

// DistanceEstimator derives a travel duration from the great-circle
// distance to the airport. It needs no network access and is the last
// resort when routed providers fail.
type DistanceEstimator struct{}

// NewDistanceEstimator creates a new distance-based estimator
func NewDistanceEstimator() *DistanceEstimator {
	return &DistanceEstimator{}
}

// ProviderName identifies this provider in logs and metrics
func (e *DistanceEstimator) ProviderName() string {
	return "DistanceEstimator"
}

// ETA estimates the travel duration from origin to the airport
func (e *DistanceEstimator) ETA(ctx context.Context, origin models.Coordinate, dest models.Airport, mode models.TransportMode) (*ETA, error) {
	if !origin.IsValid() {
		return nil, errors.NewLocationUnavailableError("origin location is not available")
	}
	if !dest.Coordinate.IsValid() {
		return nil, errors.NewAirportNotFoundError(dest.Code)
	}

	speed, ok := estimatorSpeeds[mode]
	if !ok {
		return nil, errors.NewValidationError("unsupported transport mode")
	}

	distanceKm := geo.DistanceKm(
		origin.Latitude, origin.Longitude,
		dest.Coordinate.Latitude, dest.Coordinate.Longitude,
	)

	hours := distanceKm / speed * uncertaintyMarkup
	duration := time.Duration(hours * float64(time.Hour)).Round(time.Second)

	return &ETA{Duration: duration, Estimated: true}, nil
}
