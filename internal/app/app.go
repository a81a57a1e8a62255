// Package app owns every component of the dashboard and their lifecycle.
package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/config"
	v1 "weather-dashboard/internal/controllers/http/v1"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/requester"
	"weather-dashboard/internal/services/forecast"
	"weather-dashboard/internal/services/historical"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/internal/views"
	"weather-dashboard/pkg/httpserver"
	"weather-dashboard/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	cfg *config.Config
	l   *logger.Logger

	server     *fiber.App
	historical *historical.Service
	forecast   *forecast.Service
	weather    *weather.Service
	requester  *requester.Requester

	ready   atomic.Bool
	errCh   chan error
	started bool
}

// New wires every component. Nothing listens until Start.
func New(cfg *config.Config, l *logger.Logger) (*App, error) {
	if err := views.LoadTemplates(); err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, l: l, errCh: make(chan error, 1)}

	repos := repositories.InitWeatherRepositories(cfg, l)
	validator := historical.NewValidator(cfg.Historical.MaxAgeYears)
	a.historical = historical.NewService(repos, validator, cfg.Historical.RequestTimeout, l)

	var fetcher requester.Fetcher = requester.NewServiceFetcher(a.historical)
	if cfg.Historical.BackendURL != "" {
		client := &http.Client{Timeout: cfg.Historical.RequestTimeout}
		fetcher = requester.NewHTTPFetcher(cfg.Historical.BackendURL, client, cfg.Historical.RequestTimeout, l)
		l.Info("historical lookups go to a remote backend", map[string]any{"backend": cfg.Historical.BackendURL})
	}
	a.requester = requester.New(validator, fetcher, cfg.Server.PublicURL, l)

	source, err := newForecastSource(cfg, repos)
	if err != nil {
		return nil, err
	}
	a.forecast = forecast.NewService(source, forecast.Options{
		Timeout:      cfg.Forecast.RequestTimeout,
		OverlayDelay: cfg.Forecast.OverlayDelay,
	}, l)
	a.weather = weather.NewService(repos.Weather, cfg.Forecast.RequestTimeout, l)

	a.server = httpserver.InitFiberServer(httpserver.Options{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Ready:        a.ready.Load,
	}, l)

	v1.NewRouter(a.server, v1.Deps{
		Title:      "Weather Dashboard",
		Historical: a.historical,
		Requester:  a.requester,
		Forecast:   a.forecast,
		Weather:    a.weather,
	}, l)

	return a, nil
}

func newForecastSource(cfg *config.Config, repos repositories.Repositories) (forecast.Source, error) {
	if cfg.Forecast.Source == forecast.SourceOpenWeatherMap {
		return forecast.NewOpenWeatherMapSource(repos.Weather, cfg.Forecast.City, nil), nil
	}
	return forecast.NewSource(cfg.Forecast.Source, nil, nil)
}

// Handler exposes the router, mostly for tests.
func (a *App) Handler() *fiber.App {
	return a.server
}

// Start listens on the configured port in the background.
func (a *App) Start() error {
	ln, err := net.Listen("tcp", ":"+a.cfg.Server.Port)
	if err != nil {
		return err
	}
	return a.Serve(ln)
}

// Serve accepts connections on ln in the background.
func (a *App) Serve(ln net.Listener) error {
	if a.started {
		return errors.New("app already started")
	}
	a.started = true

	go func() {
		a.errCh <- a.server.Listener(ln)
	}()
	a.ready.Store(true)

	a.l.Info("application started successfully", map[string]any{
		"addr":   ln.Addr().String(),
		"source": a.forecast.SourceName(),
	})
	return nil
}

// Errors reports a listener failure after Start.
func (a *App) Errors() <-chan error {
	return a.errCh
}

// Close stops accepting requests and waits for in-flight ones.
func (a *App) Close(ctx context.Context) error {
	a.ready.Store(false)
	if !a.started {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	a.l.Warning("stopping application services")
	return a.server.ShutdownWithContext(ctx)
}
