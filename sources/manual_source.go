package sources

import (
	"context"
	"sync"
	"time"

	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/repository"
)

// ManualSource serves flights the user entered by hand. It is always
// available and acts as the lowest-priority fallback.
type ManualSource struct {
	repository *repository.ManualFlightRepository

	mu       sync.RWMutex
	lastSync time.Time
}

// NewManualSource creates a source over the manual flight repository
func NewManualSource(repo *repository.ManualFlightRepository) *ManualSource {
	return &ManualSource{repository: repo}
}

// SourceName returns the source's display name
func (s *ManualSource) SourceName() string {
	return "Manual Entries"
}

// RequiresAuth reports that manual entries need no authorization
func (s *ManualSource) RequiresAuth() bool {
	return false
}

// IsAvailable reports whether the backing repository is usable
func (s *ManualSource) IsAvailable(_ context.Context) bool {
	return s.repository != nil
}

// LastSync returns when the source last fetched successfully
func (s *ManualSource) LastSync() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync
}

// FetchFlights lists the upcoming manual flights. An empty list is a valid
// result, not an error.
func (s *ManualSource) FetchFlights(_ context.Context) ([]models.Flight, error) {
	flights, err := s.repository.ListUpcoming(time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastSync = time.Now().UTC()
	s.mu.Unlock()

	return flights, nil
}

// Disconnect clears the sync state. User entries are never deleted here;
// removing them is the cleanup job's responsibility.
func (s *ManualSource) Disconnect(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSync = time.Time{}
	return nil
}
