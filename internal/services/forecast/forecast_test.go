package forecast

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

var fixedNow = time.Date(2025, 7, 25, 14, 30, 0, 0, time.UTC) // a Friday

func clock() time.Time { return fixedNow }

type failingSource struct {
	err      error
	panicMsg string
	delay    time.Duration
}

func (f *failingSource) Name() string { return "failing" }

func (f *failingSource) Current(ctx context.Context) (models.WeatherSample, error) {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.delay > 0 {
		<-time.After(f.delay)
	}
	return models.WeatherSample{}, f.err
}

func (f *failingSource) Week(ctx context.Context) ([]models.ForecastSample, error) {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return nil, f.err
}

func TestMockSource_Current(t *testing.T) {
	src := NewMockSource(rand.New(rand.NewSource(1)), clock)

	for i := 0; i < 200; i++ {
		s, err := src.Current(context.Background())
		require.NoError(t, err)

		info, ok := s.Condition.Info()
		require.True(t, ok)
		assert.Equal(t, info.Icon, s.Icon)
		assert.Equal(t, info.Current, s.Description)
		assert.GreaterOrEqual(t, s.Temperature, 15)
		assert.Less(t, s.Temperature, 35)
		assert.GreaterOrEqual(t, s.Humidity, 40)
		assert.Less(t, s.Humidity, 80)
		assert.GreaterOrEqual(t, s.WindSpeed, 5)
		assert.Less(t, s.WindSpeed, 25)
		assert.GreaterOrEqual(t, s.Probability, 50.0)
		assert.Less(t, s.Probability, 90.0)
		assert.Equal(t, "2025-07-25", s.Date)
		assert.Equal(t, "14:30", s.Time)
	}
}

func TestMockSource_Week(t *testing.T) {
	src := NewMockSource(rand.New(rand.NewSource(2)), clock)

	days, err := src.Week(context.Background())
	require.NoError(t, err)
	require.Len(t, days, WeekLength)

	wantDays := []string{"Friday", "Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday"}
	for i, d := range days {
		assert.Equal(t, wantDays[i], d.Day)
		assert.Equal(t, fixedNow.AddDate(0, 0, i).Format(models.DateLayout), d.Date)

		info, ok := d.Condition.Info()
		require.True(t, ok)
		assert.Equal(t, info.Forecast, d.Description)
		assert.GreaterOrEqual(t, d.Temperature, 10)
		assert.Less(t, d.Temperature, 30)
		assert.GreaterOrEqual(t, d.Probability, 30.0)
		assert.Less(t, d.Probability, 90.0)
	}
}

func TestMockSource_CancelledContext(t *testing.T) {
	src := NewMockSource(rand.New(rand.NewSource(3)), clock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Week(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLikelihoods(t *testing.T) {
	w := Likelihoods(time.July, "")
	assert.InDelta(t, 0.75, w[models.Sunny], 1e-9)

	w = Likelihoods(time.July, models.Stormy)
	total := 0.0
	for _, p := range w {
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	// 0.3*0.05 + 0.7*0.2
	assert.InDelta(t, 0.155, w[models.Stormy], 1e-9)
}

func TestSeasonalSource_Week(t *testing.T) {
	src := NewSeasonalSource(rand.New(rand.NewSource(4)), clock)

	days, err := src.Week(context.Background())
	require.NoError(t, err)
	require.Len(t, days, WeekLength)

	for _, d := range days {
		p := patterns[d.Condition]
		assert.GreaterOrEqual(t, d.Temperature, p.temp[0])
		assert.LessOrEqual(t, d.Temperature, p.temp[1])
		assert.GreaterOrEqual(t, d.Humidity, p.humidity[0])
		assert.LessOrEqual(t, d.Humidity, p.humidity[1])
		assert.Contains(t, p.descriptions, d.Description)
		assert.Greater(t, d.Probability, 0.0)
		assert.LessOrEqual(t, d.Probability, 100.0)
	}
}

func TestSeasonalSource_CurrentProbability(t *testing.T) {
	src := NewSeasonalSource(rand.New(rand.NewSource(5)), clock)

	s, err := src.Current(context.Background())
	require.NoError(t, err)

	want := Likelihoods(time.July, "")[s.Condition] * 100
	assert.InDelta(t, want, s.Probability, 0.05)
	assert.Equal(t, "14:30", s.Time)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource("", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, SourceMock, src.Name())

	src, err = NewSource(SourceSeasonal, nil, clock)
	require.NoError(t, err)
	assert.Equal(t, SourceSeasonal, src.Name())

	_, err = NewSource("crystal-ball", nil, nil)
	assert.Error(t, err)

	// needs a repository, built with NewOpenWeatherMapSource instead
	_, err = NewSource(SourceOpenWeatherMap, nil, nil)
	assert.Error(t, err)
}

func TestService_Current_Fallback(t *testing.T) {
	tests := []struct {
		name   string
		source *failingSource
	}{
		{"error", &failingSource{err: errors.New("boom")}},
		{"panic", &failingSource{panicMsg: "boom"}},
		{"timeout", &failingSource{delay: 200 * time.Millisecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.source, Options{Timeout: 20 * time.Millisecond, Now: clock}, logger.Nop())

			cur := svc.Current(context.Background())
			require.True(t, cur.Fallback)
			require.NotNil(t, cur.Banner)
			assert.Equal(t, models.BannerDanger, cur.Banner.Level)
			assert.Equal(t, MsgCurrentFailed, cur.Banner.Message)
			assert.Equal(t, "🌤️", cur.Sample.Icon)
			assert.Equal(t, 22, cur.Sample.Temperature)
			assert.Equal(t, "Partly cloudy", cur.Sample.Description)
			assert.Equal(t, 65, cur.Sample.Humidity)
			assert.Equal(t, 12, cur.Sample.WindSpeed)
			assert.Equal(t, 75.0, cur.Sample.Probability)
			assert.Equal(t, "2025-07-25", cur.Sample.Date)
		})
	}
}

func TestService_Week_Fallback(t *testing.T) {
	svc := NewService(&failingSource{panicMsg: "boom"}, Options{Now: clock}, logger.Nop())

	week := svc.Week(context.Background())
	require.True(t, week.Fallback)
	require.NotNil(t, week.Banner)
	assert.Equal(t, MsgForecastFailed, week.Banner.Message)
	require.Len(t, week.Days, 7)
	assert.Equal(t, "Today", week.Days[0].Day)
	assert.Equal(t, "☀️", week.Days[0].Icon)
	assert.Equal(t, 22, week.Days[0].Temperature)
	assert.Equal(t, 85.0, week.Days[0].Probability)
	assert.Equal(t, "Tuesday", week.Days[6].Day)
	assert.Equal(t, models.Rainy, week.Days[2].Condition)
}

func TestService_Refresh(t *testing.T) {
	src := NewMockSource(rand.New(rand.NewSource(6)), clock)
	svc := NewService(src, Options{Now: clock}, logger.Nop())

	r := svc.Refresh(context.Background())
	assert.False(t, r.Current.Fallback)
	assert.False(t, r.Week.Fallback)
	assert.Len(t, r.Week.Days, WeekLength)
	assert.Empty(t, r.Banners())
	assert.Equal(t, time.Second, r.Overlay.ClearAfter)
	assert.Equal(t, int64(1000), r.Overlay.ClearAfterMillis())
}

func TestService_Refresh_IndependentFallback(t *testing.T) {
	svc := NewService(&failingSource{err: errors.New("down")}, Options{Now: clock, OverlayDelay: 2 * time.Second}, logger.Nop())

	r := svc.Refresh(context.Background())
	assert.True(t, r.Current.Fallback)
	assert.True(t, r.Week.Fallback)
	assert.Len(t, r.Banners(), 2)
	assert.Equal(t, 2*time.Second, r.Overlay.ClearAfter)
}

// currentDownSource serves a real week while its current reading always fails.
type currentDownSource struct {
	*MockSource
}

func (s currentDownSource) Current(ctx context.Context) (models.WeatherSample, error) {
	return models.WeatherSample{}, errors.New("station offline")
}

func TestService_Refresh_CurrentFailsWeekSucceeds(t *testing.T) {
	src := currentDownSource{NewMockSource(rand.New(rand.NewSource(7)), clock)}
	svc := NewService(src, Options{Now: clock}, logger.Nop())

	r := svc.Refresh(context.Background())

	require.True(t, r.Current.Fallback)
	require.NotNil(t, r.Current.Banner)
	assert.Equal(t, MsgCurrentFailed, r.Current.Banner.Message)
	assert.Equal(t, 22, r.Current.Sample.Temperature)

	assert.False(t, r.Week.Fallback)
	assert.Nil(t, r.Week.Banner)
	require.Len(t, r.Week.Days, WeekLength)
	assert.Equal(t, "Friday", r.Week.Days[0].Day)

	banners := r.Banners()
	require.Len(t, banners, 1)
	assert.Equal(t, MsgCurrentFailed, banners[0].Message)
}
