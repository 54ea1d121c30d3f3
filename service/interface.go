package service

import (
	"context"
	"time"

	"github.com/adrianrdguez/GoFast/calculator"
	"github.com/adrianrdguez/GoFast/detector"
	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/repository"
	"github.com/adrianrdguez/GoFast/sources"
	"github.com/adrianrdguez/GoFast/transport"
)

// DetectionServiceInterface handles flight discovery operations
type DetectionServiceInterface interface {
	DetectFlights(events []models.Event) ([]models.Flight, error)
	FetchFlights(ctx context.Context) ([]models.Flight, error)
	NextFlight(ctx context.Context) (*models.Flight, error)
}

// DisplayServiceInterface handles the display snapshot lifecycle
type DisplayServiceInterface interface {
	RefreshSnapshot(ctx context.Context) (*models.DisplaySnapshot, error)
	CurrentSnapshot(ctx context.Context) (*models.DisplaySnapshot, error)
	Display(ctx context.Context) (*DisplayView, error)
}

// PlanningServiceInterface handles leave-time calculations
type PlanningServiceInterface interface {
	LeaveTime(ctx context.Context, req *models.LeaveTimeRequest) (*models.LeaveTimeCalculation, error)
	LeaveTimeOptions(ctx context.Context, req *models.LeaveTimeRequest, modes []models.TransportMode) ([]models.LeaveTimeCalculation, error)
}

// SourceManagementInterface handles manual flights and source administration
type SourceManagementInterface interface {
	AddManualFlight(ctx context.Context, req *models.ManualFlightRequest) (*models.Flight, error)
	SourceStatus(ctx context.Context) *SourceStatusReport
	DisconnectAll(ctx context.Context) error
}

// Combined interface for API consumers
type FlightServiceInterface interface {
	DetectionServiceInterface
	DisplayServiceInterface
	PlanningServiceInterface
	SourceManagementInterface
	ProviderInfo() map[string]interface{}
}

// FlightDetectorInterface defines the detection operations the service needs
type FlightDetectorInterface interface {
	DetectFlights(events []models.Event) ([]models.Flight, error)
}

// FlightFetcherInterface covers the multi-source coordinator
type FlightFetcherInterface interface {
	FetchFlights(ctx context.Context) ([]models.Flight, error)
	StatusSummary(ctx context.Context) string
	Status(ctx context.Context) []sources.SourceStatus
	DisconnectAll(ctx context.Context) error
}

// LeaveTimeCalculatorInterface defines the leave-time operations
type LeaveTimeCalculatorInterface interface {
	LeaveTime(ctx context.Context, flight *models.Flight, origin models.Coordinate, mode models.TransportMode, tier models.TierConfig) (*models.LeaveTimeCalculation, error)
	LeaveTimeOptions(ctx context.Context, flight *models.Flight, origin models.Coordinate, modes []models.TransportMode, tier models.TierConfig) ([]models.LeaveTimeCalculation, error)
}

// ManualFlightRepositoryInterface defines manual flight persistence
type ManualFlightRepositoryInterface interface {
	Create(flight *models.ManualFlight) error
	FindByID(id string) (*models.Flight, error)
	ListUpcoming(now time.Time) ([]models.Flight, error)
	DeleteDeparted(now time.Time) (int64, error)
}

// TransportInfoInterface exposes transport wiring details for debugging
type TransportInfoInterface interface {
	GetProviderInfo() map[string]interface{}
}

// Ensure implementations satisfy interfaces
var _ FlightServiceInterface = (*FlightService)(nil)
var _ FlightDetectorInterface = (*detector.Detector)(nil)
var _ FlightFetcherInterface = (*sources.Coordinator)(nil)
var _ LeaveTimeCalculatorInterface = (*calculator.Calculator)(nil)
var _ ManualFlightRepositoryInterface = (*repository.ManualFlightRepository)(nil)
var _ TransportInfoInterface = (*transport.ProviderManager)(nil)
