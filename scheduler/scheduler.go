// Package scheduler implements background job scheduling
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/adrianrdguez/GoFast/config"
	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/service"
)

// refreshTimeout bounds a single snapshot rebuild, sources and ETA included
const refreshTimeout = 30 * time.Second

// FlightRefresher covers the service operations the scheduler drives
type FlightRefresher interface {
	RefreshSnapshot(ctx context.Context) (*models.DisplaySnapshot, error)
	CleanupDepartedFlights() (int64, error)
}

var _ FlightRefresher = (*service.FlightService)(nil)

// Scheduler runs the adaptive display refresh loop and the daily cleanup job
type Scheduler struct {
	service  FlightRefresher
	fallback time.Duration
	cleanup  time.Duration
	stop     chan struct{}
	stopOnce sync.Once
	done     sync.WaitGroup
}

// NewScheduler creates and configures a new task scheduler
func NewScheduler(service FlightRefresher, config *config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		service:  service,
		fallback: time.Duration(config.RefreshFallback) * time.Minute,
		cleanup:  time.Duration(config.CleanupInterval) * time.Minute,
		stop:     make(chan struct{}),
	}
}

// Start begins the scheduler's operations
func (s *Scheduler) Start() {
	s.done.Add(2)
	go s.runRefreshLoop()
	go s.runCleanupLoop()
}

// Stop halts both loops and waits for them to finish
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	s.done.Wait()
}

// runRefreshLoop refreshes the snapshot on the cadence the snapshot itself
// reports: a goMode flight refreshes every minute, a distant one every 15.
func (s *Scheduler) runRefreshLoop() {
	defer s.done.Done()

	timer := time.NewTimer(s.refreshOnce())
	defer timer.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-timer.C:
			timer.Reset(s.refreshOnce())
		}
	}
}

// refreshOnce runs one refresh and returns how long to wait before the next
func (s *Scheduler) refreshOnce() time.Duration {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	snap, err := s.service.RefreshSnapshot(ctx)
	if err != nil {
		log.Printf("Error refreshing display snapshot: %v\n", err)
		return s.fallback
	}
	if snap.RefreshInterval <= 0 {
		return s.fallback
	}
	return snap.RefreshInterval
}

func (s *Scheduler) runCleanupLoop() {
	defer s.done.Done()

	s.cleanupOnce()

	ticker := time.NewTicker(s.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.cleanupOnce()
		}
	}
}

func (s *Scheduler) cleanupOnce() {
	if _, err := s.service.CleanupDepartedFlights(); err != nil {
		log.Printf("Error cleaning up departed flights: %v\n", err)
	}
}
