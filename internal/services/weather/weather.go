// Package weather answers the /weather endpoint: live conditions and the five
// day forecast for a city typed into the search form.
package weather

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"weather-dashboard/internal/apperrors"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/timer"
	"weather-dashboard/pkg/logger"
)

const (
	MsgCityRequired   = "Please enter a city name"
	MsgTimeout        = "Request timed out. Please try again."
	MsgConnection     = "Connection error. Please check your internet connection."
	MsgCurrentFailed  = "Unable to fetch current weather data."
	MsgForecastFailed = "Unable to fetch forecast data."
)

type Service struct {
	repo    repositories.CityWeatherRepository
	timeout time.Duration
	l       *logger.Logger
}

func NewService(repo repositories.CityWeatherRepository, timeout time.Duration, l *logger.Logger) *Service {
	return &Service{repo: repo, timeout: timeout, l: l}
}

// Lookup never fails: every problem is reported in the report's Error field.
// Both halves are fetched concurrently and the first failure wins.
func (s *Service) Lookup(ctx context.Context, city string) models.WeatherReport {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.WeatherReport{Error: MsgCityRequired}
	}

	var (
		current  models.CityWeather
		forecast []models.DailyForecast
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := timer.WithTimeout(gctx, s.timeout, "current weather", func(ctx context.Context) error {
			var err error
			current, err = s.repo.Current(ctx, city)
			return err
		})
		return s.classify(err, MsgCurrentFailed)
	})
	g.Go(func() error {
		err := timer.WithTimeout(gctx, s.timeout, "forecast", func(ctx context.Context) error {
			var err error
			forecast, err = s.repo.Forecast(ctx, city)
			return err
		})
		return s.classify(err, MsgForecastFailed)
	})

	if err := g.Wait(); err != nil {
		s.l.Warning("weather lookup failed", map[string]any{
			"city":   city,
			"reason": err.Error(),
		})
		return models.WeatherReport{Error: err.Error()}
	}

	s.l.Info("weather lookup complete", map[string]any{
		"city":        city,
		"resolved":    current.City,
		"temperature": current.Temperature,
		"days":        len(forecast),
	})

	return models.WeatherReport{Weather: &current, Forecast: forecast}
}

// classify maps a failure to the message shown to the user. Upstream answers
// are passed through, anything unexpected is logged and replaced by fallback.
func (s *Service) classify(err error, fallback string) error {
	var status *repositories.StatusError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrWeatherCityNotFound),
		errors.Is(err, repositories.ErrWeatherAPIKey),
		errors.Is(err, repositories.ErrForecastUnavailable),
		errors.As(err, &status):
		return err
	case errors.Is(err, apperrors.ErrTimeout):
		return errors.New(MsgTimeout)
	case errors.Is(err, apperrors.ErrNetwork):
		return errors.New(MsgConnection)
	default:
		s.l.Error(errors.Wrap(err, "weather lookup"))
		return errors.New(fallback)
	}
}
