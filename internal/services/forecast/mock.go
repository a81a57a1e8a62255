package forecast

import (
	"context"
	"math/rand"
	"time"

	"weather-dashboard/internal/models"
)

// MockSource draws every value uniformly at random.
type MockSource struct {
	rnd *lockedRand
	now func() time.Time
}

func NewMockSource(rnd *rand.Rand, now func() time.Time) *MockSource {
	return &MockSource{rnd: &lockedRand{rnd: rnd}, now: now}
}

func (m *MockSource) Name() string {
	return SourceMock
}

func (m *MockSource) condition() models.Condition {
	return models.Conditions[m.rnd.between(0, len(models.Conditions))]
}

func (m *MockSource) Current(ctx context.Context) (models.WeatherSample, error) {
	if err := ctx.Err(); err != nil {
		return models.WeatherSample{}, err
	}

	now := m.now()
	c := m.condition()
	info, _ := c.Info()

	return models.WeatherSample{
		Condition:   c,
		Temperature: m.rnd.between(15, 35),
		Humidity:    m.rnd.between(40, 80),
		WindSpeed:   m.rnd.between(5, 25),
		Probability: float64(m.rnd.between(50, 90)),
		Icon:        info.Icon,
		Description: info.Current,
		Date:        sampleDate(now),
		Time:        sampleTime(now),
	}, nil
}

func (m *MockSource) Week(ctx context.Context) ([]models.ForecastSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	today := m.now()
	days := make([]models.ForecastSample, 0, WeekLength)

	for i := 0; i < WeekLength; i++ {
		date := today.AddDate(0, 0, i)
		c := m.condition()
		info, _ := c.Info()

		days = append(days, models.ForecastSample{
			WeatherSample: models.WeatherSample{
				Condition:   c,
				Temperature: m.rnd.between(10, 30),
				Humidity:    m.rnd.between(40, 80),
				WindSpeed:   m.rnd.between(5, 25),
				Probability: float64(m.rnd.between(30, 90)),
				Icon:        info.Icon,
				Description: info.Forecast,
				Date:        sampleDate(date),
			},
			Day: date.Weekday().String(),
		})
	}

	return days, nil
}
