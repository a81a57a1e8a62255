// Package historical answers the /historical endpoint: a city is geocoded and
// the archive is asked for that single day.
package historical

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"weather-dashboard/internal/apperrors"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/timer"
	"weather-dashboard/pkg/logger"
)

const (
	MsgRequired          = "City and date are required"
	MsgCoordinatesFailed = "Error getting city coordinates"
	MsgArchiveFailed     = "Unable to fetch historical weather data"
)

// ErrBadCoordinates rejects a reverse lookup outside the valid lat/lon range.
var ErrBadCoordinates = errors.New("latitude must be between -90 and 90 and longitude between -180 and 180")

type Service struct {
	archive   repositories.ArchiveRepository
	geocoding repositories.GeocodingRepository
	validator *Validator
	timeout   time.Duration
	group     singleflight.Group
	l         *logger.Logger
}

func NewService(repos repositories.Repositories, validator *Validator, timeout time.Duration, l *logger.Logger) *Service {
	if validator == nil {
		validator = NewValidator(DefaultMaxAgeYears)
	}
	return &Service{
		archive:   repos.Archive,
		geocoding: repos.Geocoding,
		validator: validator,
		timeout:   timeout,
		l:         l,
	}
}

func (s *Service) Validator() *Validator {
	return s.validator
}

// Lookup never fails: every problem is reported in the payload's Error field.
func (s *Service) Lookup(ctx context.Context, city, date string) models.HistoricalPayload {
	if strings.TrimSpace(city) == "" || strings.TrimSpace(date) == "" {
		return models.HistoricalPayload{Error: MsgRequired}
	}

	q, err := s.validator.Validate(city, date)
	if err != nil {
		return models.HistoricalPayload{Error: err.Error()}
	}

	return s.LookupQuery(ctx, q)
}

// LookupQuery fetches an already validated query. Identical in-flight queries share one upstream round trip.
func (s *Service) LookupQuery(ctx context.Context, q models.HistoricalQuery) models.HistoricalPayload {
	// Waiters share this call, so the first caller's cancellation must not
	// fail them; the fetch deadline still bounds it.
	shareCtx := context.WithoutCancel(ctx)
	v, _, shared := s.group.Do(q.Key(), func() (any, error) {
		return s.fetch(shareCtx, q), nil
	})
	if shared {
		s.l.Debug("historical lookup shared with an in-flight request", map[string]any{"key": q.Key()})
	}
	return v.(models.HistoricalPayload)
}

func (s *Service) fetch(ctx context.Context, q models.HistoricalQuery) models.HistoricalPayload {
	s.l.Info("starting historical lookup", map[string]any{
		"city": q.City,
		"date": q.DateString(),
	})

	coords, err := timer.Call(ctx, s.timeout, "geocoding", func(ctx context.Context) (models.Coordinates, error) {
		return s.geocoding.Direct(ctx, q.City)
	})
	if err != nil {
		return s.failed(err, MsgCoordinatesFailed, q, repositories.ErrCityNotFound, repositories.ErrGeocodingUnavailable)
	}

	result, err := timer.Call(ctx, s.timeout, "archive", func(ctx context.Context) (models.HistoricalResult, error) {
		return s.archive.FetchDay(ctx, coords.Lat, coords.Lon, q.DateString())
	})
	if err != nil {
		return s.failed(err, MsgArchiveFailed, q, repositories.ErrArchiveUnavailable, repositories.ErrNoArchiveData)
	}
	result.Date = q.DateString()

	s.l.Info("historical lookup complete", map[string]any{
		"city":        q.City,
		"resolved":    coords.Label(),
		"temperature": result.Temperature,
	})

	return models.HistoricalPayload{HistoricalResult: result}
}

// failed reports known upstream answers verbatim and everything else as fallback.
func (s *Service) failed(err error, fallback string, q models.HistoricalQuery, known ...error) models.HistoricalPayload {
	for _, k := range known {
		if errors.Is(err, k) {
			s.l.Warning("historical lookup rejected", map[string]any{
				"city":   q.City,
				"date":   q.DateString(),
				"reason": k.Error(),
			})
			return models.HistoricalPayload{Error: k.Error()}
		}
	}

	s.l.Error(errors.Wrap(err, "historical lookup"), map[string]any{
		"city": q.City,
		"date": q.DateString(),
	})
	return models.HistoricalPayload{Error: fallback}
}

// ReverseGeocode turns browser coordinates into a "Name, CC" label.
func (s *Service) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return "", apperrors.NewValidation("coordinates", ErrBadCoordinates.Error())
	}

	coords, err := timer.Call(ctx, s.timeout, "reverse geocoding", func(ctx context.Context) (models.Coordinates, error) {
		return s.geocoding.Reverse(ctx, lat, lon)
	})
	if err != nil {
		return "", errors.Wrap(err, "reverse geocoding")
	}

	return coords.Label(), nil
}
