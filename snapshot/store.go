// Package snapshot persists the current display snapshot between refreshes
// so the API can serve the glanceable view without recomputing it.
package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/adrianrdguez/GoFast/cache"
	"github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
)

const snapshotKey = "display:current"

// DefaultTTL keeps a stale snapshot renderable while the refresh loop is
// down, without letting it live forever.
const DefaultTTL = 24 * time.Hour

// Store holds the single current display snapshot. Every save replaces the
// previous snapshot; the newest write wins.
type Store struct {
	cache cache.GenericCacheInterface
	ttl   time.Duration
}

// NewStore creates a snapshot store on top of the given cache.
// Non-positive TTLs fall back to the default.
func NewStore(c cache.GenericCacheInterface, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{cache: c, ttl: ttl}
}

// Save replaces the current snapshot
func (s *Store) Save(ctx context.Context, snap *models.DisplaySnapshot) error {
	if snap == nil {
		return errors.NewValidationError("cannot store a nil snapshot")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return errors.NewValidationError("failed to encode snapshot")
	}

	s.cache.Set(ctx, snapshotKey, data, s.ttl)
	return nil
}

// Current returns the stored snapshot. Entries that cannot be decoded are
// dropped and reported as missing.
func (s *Store) Current(ctx context.Context) (*models.DisplaySnapshot, bool) {
	data, found := s.cache.Get(ctx, snapshotKey)
	if !found {
		return nil, false
	}

	var snap models.DisplaySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		slog.Warn("discarding unreadable snapshot", "error", err)
		s.cache.Delete(ctx, snapshotKey)
		return nil, false
	}
	return &snap, true
}

// Clear removes the stored snapshot
func (s *Store) Clear(ctx context.Context) {
	s.cache.Delete(ctx, snapshotKey)
}
