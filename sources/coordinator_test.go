package sources

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
)

// stubSource is a scriptable FlightSource recording fetch attempts
type stubSource struct {
	name          string
	available     bool
	requiresAuth  bool
	lastSync      time.Time
	flights       []models.Flight
	err           error
	onFetch       func()
	fetches       int
	disconnected  bool
	disconnectErr error
}

func (s *stubSource) SourceName() string                 { return s.name }
func (s *stubSource) RequiresAuth() bool                 { return s.requiresAuth }
func (s *stubSource) IsAvailable(_ context.Context) bool { return s.available }
func (s *stubSource) LastSync() time.Time                { return s.lastSync }

func (s *stubSource) FetchFlights(ctx context.Context) ([]models.Flight, error) {
	s.fetches++
	if s.onFetch != nil {
		s.onFetch()
	}
	if s.err != nil {
		return nil, s.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.flights, nil
}

func (s *stubSource) Disconnect(_ context.Context) error {
	if s.disconnectErr != nil {
		return s.disconnectErr
	}
	s.disconnected = true
	return nil
}

func flightFixture(number string) models.Flight {
	return models.Flight{
		ID:            "flt-" + number,
		FlightNumber:  number,
		Departure:     models.Airport{Code: "BKK", Country: "TH"},
		DepartureTime: time.Now().Add(24 * time.Hour).UTC(),
		Source:        models.SourceGoogleCalendar,
		DetectedAt:    time.Now().UTC(),
	}
}

func TestCoordinator_FetchFlights(t *testing.T) {
	t.Run("FirstAvailableSourceWins", func(t *testing.T) {
		primary := &stubSource{name: "Google Calendar", available: true, flights: []models.Flight{flightFixture("TG930")}}
		secondary := &stubSource{name: "Calendar File", available: true, flights: []models.Flight{flightFixture("PG110")}}
		coordinator := NewCoordinator(primary, secondary)

		flights, err := coordinator.FetchFlights(context.Background())

		require.NoError(t, err)
		require.Len(t, flights, 1)
		assert.Equal(t, "TG930", flights[0].FlightNumber)
		assert.Equal(t, 1, primary.fetches)
		assert.Equal(t, 0, secondary.fetches)
	})

	t.Run("SkipsUnavailableSources", func(t *testing.T) {
		primary := &stubSource{name: "Google Calendar", available: false}
		secondary := &stubSource{name: "Calendar File", available: true, flights: []models.Flight{flightFixture("PG110")}}
		coordinator := NewCoordinator(primary, secondary)

		flights, err := coordinator.FetchFlights(context.Background())

		require.NoError(t, err)
		require.Len(t, flights, 1)
		assert.Equal(t, "PG110", flights[0].FlightNumber)
		assert.Equal(t, 0, primary.fetches)
	})

	t.Run("FallsBackOnFailure", func(t *testing.T) {
		primary := &stubSource{name: "Google Calendar", available: true, err: apperrors.NewExternalAPIError("calendar API down", nil)}
		secondary := &stubSource{name: "Manual Entries", available: true, flights: []models.Flight{flightFixture("PG110")}}
		coordinator := NewCoordinator(primary, secondary)

		flights, err := coordinator.FetchFlights(context.Background())

		require.NoError(t, err)
		require.Len(t, flights, 1)
		assert.Equal(t, 1, primary.fetches)
		assert.Equal(t, 1, secondary.fetches)
	})

	t.Run("LastErrorSurfaces", func(t *testing.T) {
		firstErr := apperrors.NewExternalAPIError("calendar API down", nil)
		lastErr := apperrors.NewCalendarAccessDeniedError("token revoked")
		primary := &stubSource{name: "Google Calendar", available: true, err: firstErr}
		secondary := &stubSource{name: "Calendar File", available: true, err: lastErr}
		coordinator := NewCoordinator(primary, secondary)

		flights, err := coordinator.FetchFlights(context.Background())

		assert.Nil(t, flights)
		assert.Equal(t, lastErr, err)
	})

	t.Run("NoSourceAvailable", func(t *testing.T) {
		primary := &stubSource{name: "Google Calendar", available: false}
		secondary := &stubSource{name: "Calendar File", available: false}
		coordinator := NewCoordinator(primary, secondary)

		flights, err := coordinator.FetchFlights(context.Background())

		assert.Nil(t, flights)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.NoDataSourceAvailable, appErr.Type)
	})

	t.Run("NoSourcesConfigured", func(t *testing.T) {
		coordinator := NewCoordinator()

		flights, err := coordinator.FetchFlights(context.Background())

		assert.Nil(t, flights)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.NoDataSourceAvailable, appErr.Type)
	})

	t.Run("CancelledBeforeFetch", func(t *testing.T) {
		primary := &stubSource{name: "Google Calendar", available: true, flights: []models.Flight{flightFixture("TG930")}}
		coordinator := NewCoordinator(primary)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		flights, err := coordinator.FetchFlights(ctx)

		assert.Nil(t, flights)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, primary.fetches)
	})

	t.Run("CancellationDoesNotFallBack", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		primary := &stubSource{name: "Google Calendar", available: true, err: context.Canceled, onFetch: cancel}
		secondary := &stubSource{name: "Calendar File", available: true, flights: []models.Flight{flightFixture("PG110")}}
		coordinator := NewCoordinator(primary, secondary)

		flights, err := coordinator.FetchFlights(ctx)

		assert.Nil(t, flights)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, secondary.fetches)
	})
}

func TestCoordinator_StatusSummary(t *testing.T) {
	t.Run("NoCalendarConnected", func(t *testing.T) {
		coordinator := NewCoordinator(&stubSource{name: "Google Calendar", available: false})
		assert.Equal(t, "no calendar connected", coordinator.StatusSummary(context.Background()))
	})

	t.Run("NoSourcesConfigured", func(t *testing.T) {
		coordinator := NewCoordinator()
		assert.Equal(t, "no calendar connected", coordinator.StatusSummary(context.Background()))
	})

	t.Run("ConnectedNeverSynced", func(t *testing.T) {
		coordinator := NewCoordinator(&stubSource{name: "Google Calendar", available: true})
		assert.Equal(t, "connected to Google Calendar, never synced", coordinator.StatusSummary(context.Background()))
	})

	t.Run("ConnectedWithRecentSync", func(t *testing.T) {
		source := &stubSource{name: "Google Calendar", available: true, lastSync: time.Now().Add(-3 * time.Minute)}
		coordinator := NewCoordinator(source)

		summary := coordinator.StatusSummary(context.Background())

		assert.Contains(t, summary, "connected to Google Calendar, last synced")
		assert.Contains(t, summary, "ago")
	})

	t.Run("FirstAvailableSourceDescribed", func(t *testing.T) {
		primary := &stubSource{name: "Google Calendar", available: false}
		secondary := &stubSource{name: "Manual Entries", available: true}
		coordinator := NewCoordinator(primary, secondary)

		assert.Contains(t, coordinator.StatusSummary(context.Background()), "Manual Entries")
	})
}

func TestCoordinator_Status(t *testing.T) {
	synced := time.Now().Add(-10 * time.Minute)
	primary := &stubSource{name: "Google Calendar", available: true, requiresAuth: true, lastSync: synced}
	secondary := &stubSource{name: "Manual Entries", available: true}
	coordinator := NewCoordinator(primary, secondary)

	statuses := coordinator.Status(context.Background())

	require.Len(t, statuses, 2)
	assert.Equal(t, "Google Calendar", statuses[0].Name)
	assert.True(t, statuses[0].RequiresAuth)
	assert.Contains(t, statuses[0].LastSyncHuman, "ago")
	assert.Equal(t, "Manual Entries", statuses[1].Name)
	assert.False(t, statuses[1].RequiresAuth)
	assert.Equal(t, "never", statuses[1].LastSyncHuman)
}

func TestCoordinator_DisconnectAll(t *testing.T) {
	t.Run("AllSourcesDisconnected", func(t *testing.T) {
		primary := &stubSource{name: "Google Calendar", available: true}
		secondary := &stubSource{name: "Calendar File", available: true}
		coordinator := NewCoordinator(primary, secondary)

		err := coordinator.DisconnectAll(context.Background())

		assert.NoError(t, err)
		assert.True(t, primary.disconnected)
		assert.True(t, secondary.disconnected)
	})

	t.Run("FailuresAggregatedWithoutStopping", func(t *testing.T) {
		primary := &stubSource{name: "Google Calendar", disconnectErr: errors.New("credential store locked")}
		secondary := &stubSource{name: "Calendar File"}
		coordinator := NewCoordinator(primary, secondary)

		err := coordinator.DisconnectAll(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Google Calendar")
		assert.True(t, secondary.disconnected)
	})
}

func TestCoordinatorBuilder(t *testing.T) {
	primary := &stubSource{name: "Google Calendar", available: true, flights: []models.Flight{flightFixture("TG930")}}
	secondary := &stubSource{name: "Manual Entries", available: true, flights: []models.Flight{flightFixture("PG110")}}

	coordinator := NewCoordinatorBuilder().
		AddSource(primary).
		AddSource(secondary).
		Build()

	flights, err := coordinator.FetchFlights(context.Background())

	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "TG930", flights[0].FlightNumber)
}
