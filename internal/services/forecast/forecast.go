// Package forecast produces the current weather card and the seven day strip.
// A failing source never leaves the page empty: the fixed fallback dataset is
// served with a danger banner instead.
package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/timer"
	"weather-dashboard/pkg/logger"
)

// DefaultOverlayDelay is how long the loading overlay stays up after a refresh.
const DefaultOverlayDelay = time.Second

type Current struct {
	Sample   models.WeatherSample
	Fallback bool
	Banner   *models.Banner
}

type Week struct {
	Days        []models.ForecastSample
	Fallback    bool
	Banner      *models.Banner
	GeneratedAt time.Time
}

// Overlay tells the page when to clear the loading overlay, whatever the outcome.
type Overlay struct {
	ClearAfter time.Duration
}

func (o Overlay) ClearAfterMillis() int64 {
	return o.ClearAfter.Milliseconds()
}

type Refreshed struct {
	Current Current
	Week    Week
	Overlay Overlay
}

// Banners returns the banners raised by either half of the refresh.
func (r Refreshed) Banners() []models.Banner {
	var out []models.Banner
	if r.Current.Banner != nil {
		out = append(out, *r.Current.Banner)
	}
	if r.Week.Banner != nil {
		out = append(out, *r.Week.Banner)
	}
	return out
}

type Service struct {
	source       Source
	timeout      time.Duration
	overlayDelay time.Duration
	now          func() time.Time
	l            *logger.Logger
}

type Options struct {
	Timeout      time.Duration
	OverlayDelay time.Duration
	Now          func() time.Time
}

func NewService(source Source, opts Options, l *logger.Logger) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = timer.DefaultRequestTimeout
	}
	if opts.OverlayDelay <= 0 {
		opts.OverlayDelay = DefaultOverlayDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		source:       source,
		timeout:      opts.Timeout,
		overlayDelay: opts.OverlayDelay,
		now:          opts.Now,
		l:            l,
	}
}

func (s *Service) SourceName() string {
	return s.source.Name()
}

// guard turns a panic inside fn into an error.
func guard[T any](fn func(ctx context.Context) (T, error)) func(ctx context.Context) (T, error) {
	return func(ctx context.Context) (v T, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("forecast source panicked: %v", r)
			}
		}()
		return fn(ctx)
	}
}

func (s *Service) Current(ctx context.Context) Current {
	sample, err := timer.Call(ctx, s.timeout, "current weather", guard(s.source.Current))
	if err != nil {
		s.l.Error(errors.Wrap(err, "load current weather"), map[string]any{"source": s.source.Name()})
		banner := models.NewBanner(models.BannerDanger, MsgCurrentFailed)
		return Current{Sample: FallbackCurrent(s.now()), Fallback: true, Banner: &banner}
	}

	return Current{Sample: sample}
}

func (s *Service) Week(ctx context.Context) Week {
	days, err := timer.Call(ctx, s.timeout, "weather forecast", guard(s.source.Week))
	if err == nil && len(days) == 0 {
		err = errors.New("forecast source returned no days")
	}
	if err != nil {
		s.l.Error(errors.Wrap(err, "load weather forecast"), map[string]any{"source": s.source.Name()})
		banner := models.NewBanner(models.BannerDanger, MsgForecastFailed)
		return Week{Days: FallbackWeek(), Fallback: true, Banner: &banner, GeneratedAt: s.now()}
	}

	return Week{Days: days, GeneratedAt: s.now()}
}

// Refresh reloads both halves concurrently. Each half falls back on its own.
func (s *Service) Refresh(ctx context.Context) Refreshed {
	var out Refreshed
	var g errgroup.Group

	g.Go(func() error {
		out.Current = s.Current(ctx)
		return nil
	})
	g.Go(func() error {
		out.Week = s.Week(ctx)
		return nil
	})
	_ = g.Wait()

	out.Overlay = Overlay{ClearAfter: s.overlayDelay}

	s.l.Info("forecast refreshed", map[string]any{
		"source":           s.source.Name(),
		"currentFallback":  out.Current.Fallback,
		"forecastFallback": out.Week.Fallback,
	})

	return out
}
