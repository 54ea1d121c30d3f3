// Package repository implements data access for manually entered flights
package repository

import (
	stderrors "errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adrianrdguez/GoFast/airports"
	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/pkg/validation"
)

// ManualFlightRepository handles persistence of user-entered flights.
// Rows store bare airport codes; reads resolve them against the directory
// so callers always receive fully populated flights.
type ManualFlightRepository struct {
	db        *gorm.DB
	directory *airports.Directory
}

// NewManualFlightRepository creates a new repository for manual flights
func NewManualFlightRepository(db *gorm.DB, directory *airports.Directory) *ManualFlightRepository {
	return &ManualFlightRepository{db: db, directory: directory}
}

// Create persists a new manual flight. Codes are canonicalized and must
// resolve against the directory; a record with the same flight number and
// departure time must not already exist.
func (r *ManualFlightRepository) Create(flight *models.ManualFlight) error {
	if flight == nil {
		return errors.NewValidationError("manual flight cannot be nil")
	}
	if flight.DepartureTime.IsZero() {
		return errors.NewValidationError("departure time cannot be empty")
	}

	flight.FlightNumber = validation.CanonicalFlightNumber(flight.FlightNumber)
	flight.DepartureCode = strings.ToUpper(strings.TrimSpace(flight.DepartureCode))
	flight.ArrivalCode = strings.ToUpper(strings.TrimSpace(flight.ArrivalCode))
	flight.DepartureTime = flight.DepartureTime.UTC()

	if !r.directory.Contains(flight.DepartureCode) {
		return errors.NewAirportNotFoundError(flight.DepartureCode)
	}
	if flight.ArrivalCode != "" && !r.directory.Contains(flight.ArrivalCode) {
		return errors.NewAirportNotFoundError(flight.ArrivalCode)
	}

	if flight.ID == "" {
		flight.ID = uuid.NewString()
	}

	log.Printf("[DEBUG] ManualFlightRepository.Create: %+v\n", flight)

	var existing models.ManualFlight
	result := r.db.Where("flight_number = ? AND departure_time = ?", flight.FlightNumber, flight.DepartureTime).First(&existing)
	if result.Error == nil {
		return errors.NewAlreadyExistsError("a flight with this number and departure time already exists")
	}
	if !stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] Database error when checking for duplicate flight: %v\n", result.Error)
		return errors.NewDatabaseError("failed to check for existing flight", result.Error)
	}

	if result := r.db.Create(flight); result.Error != nil {
		log.Printf("[ERROR] Database error when creating manual flight: %v\n", result.Error)
		return errors.NewDatabaseError("failed to store manual flight", result.Error)
	}

	log.Printf("[DEBUG] Created manual flight with ID: %s\n", flight.ID)
	return nil
}

// FindByID retrieves a manual flight by its identifier, resolved against
// the airport directory
func (r *ManualFlightRepository) FindByID(id string) (*models.Flight, error) {
	if id == "" {
		return nil, errors.NewValidationError("flight ID cannot be empty")
	}

	log.Printf("[DEBUG] ManualFlightRepository.FindByID: id=%s\n", id)

	var record models.ManualFlight
	result := r.db.Where("id = ?", id).First(&record)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("manual flight not found")
		}
		log.Printf("[ERROR] Database error when finding manual flight: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to load manual flight", result.Error)
	}

	return r.toFlight(record)
}

// ListUpcoming returns all manual flights that have not yet departed past
// the grace window, soonest first. Rows whose departure code no longer
// resolves are skipped.
func (r *ManualFlightRepository) ListUpcoming(now time.Time) ([]models.Flight, error) {
	cutoff := now.UTC().Add(-models.DepartureGraceWindow)

	var records []models.ManualFlight
	result := r.db.Where("departure_time >= ?", cutoff).Order("departure_time ASC").Find(&records)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when listing upcoming flights: %v\n", result.Error)
		return nil, errors.NewDatabaseError("failed to list manual flights", result.Error)
	}

	flights := make([]models.Flight, 0, len(records))
	for _, record := range records {
		flight, err := r.toFlight(record)
		if err != nil {
			log.Printf("[DEBUG] Skipping manual flight %s: %v\n", record.ID, err)
			continue
		}
		flights = append(flights, *flight)
	}

	log.Printf("[DEBUG] Found %d upcoming manual flights\n", len(flights))
	return flights, nil
}

// DeleteDeparted removes flights that departed longer than the grace window
// ago and returns how many were removed
func (r *ManualFlightRepository) DeleteDeparted(now time.Time) (int64, error) {
	cutoff := now.UTC().Add(-models.DepartureGraceWindow)

	result := r.db.Where("departure_time < ?", cutoff).Delete(&models.ManualFlight{})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when deleting departed flights: %v\n", result.Error)
		return 0, errors.NewDatabaseError("failed to delete departed flights", result.Error)
	}

	log.Printf("[DEBUG] Deleted %d departed flights\n", result.RowsAffected)
	return result.RowsAffected, nil
}

// toFlight maps a stored record onto a directory-resolved flight
func (r *ManualFlightRepository) toFlight(record models.ManualFlight) (*models.Flight, error) {
	departure, ok := r.directory.Find(record.DepartureCode)
	if !ok {
		return nil, errors.NewAirportNotFoundError(record.DepartureCode)
	}

	flight := &models.Flight{
		ID:            record.ID,
		FlightNumber:  record.FlightNumber,
		Departure:     departure,
		DepartureTime: record.DepartureTime.UTC(),
		Source:        models.SourceManualEntry,
		DetectedAt:    record.CreatedAt.UTC(),
	}
	if record.ArrivalCode != "" {
		if arrival, ok := r.directory.Find(record.ArrivalCode); ok {
			flight.Arrival = &arrival
		}
	}
	return flight, nil
}
