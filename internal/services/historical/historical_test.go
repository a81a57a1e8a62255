package historical

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/apperrors"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/logger"
)

type mockGeocoder struct {
	coords models.Coordinates
	err    error
	calls  int32
}

func (m *mockGeocoder) Name() string { return "mock-geocoder" }

func (m *mockGeocoder) Direct(ctx context.Context, city string) (models.Coordinates, error) {
	atomic.AddInt32(&m.calls, 1)
	return m.coords, m.err
}

func (m *mockGeocoder) Reverse(ctx context.Context, lat, lon float64) (models.Coordinates, error) {
	atomic.AddInt32(&m.calls, 1)
	return m.coords, m.err
}

type mockArchive struct {
	result models.HistoricalResult
	err    error
	delay  time.Duration
	calls  int32
}

func (m *mockArchive) Name() string { return "mock-archive" }

func (m *mockArchive) FetchDay(ctx context.Context, lat, lon float64, date string) (models.HistoricalResult, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return models.HistoricalResult{}, ctx.Err()
		case <-time.After(m.delay):
		}
	}
	return m.result, m.err
}

func newTestService(geo *mockGeocoder, archive *mockArchive, timeout time.Duration) *Service {
	v := NewValidator(5)
	v.Now = func() time.Time { return time.Date(2025, 7, 25, 12, 0, 0, 0, time.UTC) }
	return NewService(repositories.Repositories{Archive: archive, Geocoding: geo}, v, timeout, logger.Nop())
}

func TestService_Lookup_Success(t *testing.T) {
	geo := &mockGeocoder{coords: models.Coordinates{Lat: 51.5, Lon: -0.12, Name: "London", Country: "GB"}}
	archive := &mockArchive{result: models.HistoricalResult{
		Temperature: 10, Humidity: 80, Pressure: 1012, WindSpeed: 3, Description: "clear sky",
	}}

	payload := newTestService(geo, archive, time.Second).Lookup(context.Background(), "London", "2023-01-01")

	require.False(t, payload.Failed(), payload.Error)
	assert.Equal(t, "2023-01-01", payload.Date)
	assert.Equal(t, float64(10), payload.Temperature)
	assert.Equal(t, "clear sky", payload.Description)
}

func TestService_Lookup_Required(t *testing.T) {
	s := newTestService(&mockGeocoder{}, &mockArchive{}, time.Second)

	assert.Equal(t, MsgRequired, s.Lookup(context.Background(), "", "2023-01-01").Error)
	assert.Equal(t, MsgRequired, s.Lookup(context.Background(), "London", " ").Error)
}

func TestService_Lookup_Validation(t *testing.T) {
	geo := &mockGeocoder{}
	s := newTestService(geo, &mockArchive{}, time.Second)

	payload := s.Lookup(context.Background(), "London", "2030-01-01")
	assert.Equal(t, MsgFutureDate, payload.Error)
	assert.Zero(t, atomic.LoadInt32(&geo.calls))
}

func TestService_Lookup_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		geoErr     error
		archiveErr error
		want       string
	}{
		{"city not found", repositories.ErrCityNotFound, nil, "City not found in geocoding service"},
		{"geocoding down", repositories.ErrGeocodingUnavailable, nil, "Unable to find city coordinates"},
		{"geocoding transport", apperrors.Network("geo", errors.New("refused")), nil, MsgCoordinatesFailed},
		{"archive rejects", nil, repositories.ErrArchiveUnavailable, "Historical weather data not available for this date"},
		{"archive empty", nil, repositories.ErrNoArchiveData, "No historical data available for the selected date"},
		{"archive garbage", nil, errors.New("failed to parse JSON response"), MsgArchiveFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := &mockGeocoder{err: tt.geoErr}
			archive := &mockArchive{err: tt.archiveErr}

			payload := newTestService(geo, archive, time.Second).Lookup(context.Background(), "London", "2023-01-01")
			assert.Equal(t, tt.want, payload.Error)
		})
	}
}

func TestService_Lookup_Timeout(t *testing.T) {
	archive := &mockArchive{delay: time.Second}
	s := newTestService(&mockGeocoder{}, archive, 20*time.Millisecond)

	payload := s.Lookup(context.Background(), "London", "2023-01-01")
	assert.Equal(t, MsgArchiveFailed, payload.Error)
}

func TestService_Lookup_DeduplicatesInFlight(t *testing.T) {
	archive := &mockArchive{delay: 100 * time.Millisecond, result: models.HistoricalResult{Temperature: 4}}
	s := newTestService(&mockGeocoder{}, archive, time.Second)

	var wg sync.WaitGroup
	for _, city := range []string{"London", "london", " London "} {
		wg.Add(1)
		go func(city string) {
			defer wg.Done()
			payload := s.Lookup(context.Background(), city, "2023-01-01")
			assert.Equal(t, float64(4), payload.Temperature)
		}(city)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&archive.calls))
}

func TestService_Lookup_SharedCallSurvivesFirstCallerCancel(t *testing.T) {
	archive := &mockArchive{delay: 200 * time.Millisecond, result: models.HistoricalResult{Temperature: 4}}
	s := newTestService(&mockGeocoder{}, archive, time.Second)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	defer cancelFirst()

	first := make(chan models.HistoricalPayload, 1)
	go func() { first <- s.Lookup(firstCtx, "London", "2023-01-01") }()
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&archive.calls) == 1
	}, time.Second, 5*time.Millisecond)

	second := make(chan models.HistoricalPayload, 1)
	go func() { second <- s.Lookup(context.Background(), "London", "2023-01-01") }()
	time.Sleep(20 * time.Millisecond)
	cancelFirst()

	got := <-second
	assert.Empty(t, got.Error)
	assert.Equal(t, float64(4), got.Temperature)
	<-first
	assert.Equal(t, int32(1), atomic.LoadInt32(&archive.calls))
}

func TestService_ReverseGeocode(t *testing.T) {
	geo := &mockGeocoder{coords: models.Coordinates{Name: "Paris", Country: "FR"}}
	s := newTestService(geo, &mockArchive{}, time.Second)

	label, err := s.ReverseGeocode(context.Background(), 48.85, 2.35)
	require.NoError(t, err)
	assert.Equal(t, "Paris, FR", label)

	_, err = s.ReverseGeocode(context.Background(), 91, 0)
	assert.True(t, apperrors.IsValidation(err))

	geo.err = repositories.ErrLocationNotFound
	_, err = s.ReverseGeocode(context.Background(), 0, 0)
	assert.ErrorIs(t, err, repositories.ErrLocationNotFound)
}
