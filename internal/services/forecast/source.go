package forecast

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"weather-dashboard/internal/models"
)

const (
	SourceMock           = "mock"
	SourceSeasonal       = "seasonal"
	SourceOpenWeatherMap = "openweathermap"

	// WeekLength is the number of forecast days, today included.
	WeekLength = 7
)

// Source produces the samples shown on the current weather card and the forecast strip.
type Source interface {
	Name() string
	Current(ctx context.Context) (models.WeatherSample, error)
	Week(ctx context.Context) ([]models.ForecastSample, error)
}

// NewSource builds the named source. A nil rnd is seeded from the clock.
func NewSource(name string, rnd *rand.Rand, now func() time.Time) (Source, error) {
	if now == nil {
		now = time.Now
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(now().UnixNano()))
	}

	switch name {
	case "", SourceMock:
		return NewMockSource(rnd, now), nil
	case SourceSeasonal:
		return NewSeasonalSource(rnd, now), nil
	case SourceOpenWeatherMap:
		return nil, fmt.Errorf("forecast source %q needs a weather repository, use NewOpenWeatherMapSource", name)
	default:
		return nil, fmt.Errorf("unknown forecast source %q", name)
	}
}

// lockedRand serialises access to a *rand.Rand, which is not safe for concurrent use.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// between returns an int in [lo, hi).
func (r *lockedRand) between(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rnd.Intn(hi-lo)
}

func (r *lockedRand) float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

func sampleDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

func sampleTime(t time.Time) string {
	return t.Format("15:04")
}
