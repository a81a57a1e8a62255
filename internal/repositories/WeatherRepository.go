package repositories

import (
	"context"
	"net/http"
	"strings"
	"time"

	"weather-dashboard/config"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const defaultUpstreamTimeout = 10 * time.Second

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ArchiveRepository returns archived daily observations for a location.
type ArchiveRepository interface {
	Name() string
	FetchDay(ctx context.Context, lat, lon float64, date string) (models.HistoricalResult, error)
}

// GeocodingRepository resolves city names to coordinates and back.
type GeocodingRepository interface {
	Name() string
	Direct(ctx context.Context, city string) (models.Coordinates, error)
	Reverse(ctx context.Context, lat, lon float64) (models.Coordinates, error)
}

// CityWeatherRepository returns live conditions and the short forecast for a city name.
type CityWeatherRepository interface {
	Name() string
	Current(ctx context.Context, city string) (models.CityWeather, error)
	Forecast(ctx context.Context, city string) ([]models.DailyForecast, error)
}

type Repositories struct {
	Archive   ArchiveRepository
	Geocoding GeocodingRepository
	Weather   CityWeatherRepository
}

// InitWeatherRepositories builds one repository per configured upstream. Upstreams
// missing from the config fall back to their public defaults.
func InitWeatherRepositories(cfg *config.Config, l *logger.Logger) Repositories {
	repos := Repositories{}

	for _, api := range cfg.GetWeatherAPIs() {
		client := newUpstreamClient(api)

		switch api.Name {
		case "open-meteo-archive":
			repos.Archive = NewOpenMeteoArchiveRepository(api.BaseURL, l, client)
		case "openweathermap":
			repos.Geocoding = NewOpenWeatherMapGeocoder(api.BaseURL, api.APIKey, l, client)
		case "openweathermap-weather":
			repos.Weather = NewWeatherAPIRepository(api.BaseURL, sharedKey(cfg, api), l, client)
		default:
			l.Warning("unknown weather api in config, skipping", map[string]any{"name": api.Name})
		}
	}

	if repos.Archive == nil {
		repos.Archive = NewOpenMeteoArchiveRepository("", l, &http.Client{Timeout: defaultUpstreamTimeout})
	}
	if repos.Geocoding == nil {
		repos.Geocoding = NewOpenWeatherMapGeocoder("", "", l, &http.Client{Timeout: defaultUpstreamTimeout})
	}
	if repos.Weather == nil {
		api := config.WeatherAPIConfig{Name: "openweathermap-weather"}
		repos.Weather = NewWeatherAPIRepository("", sharedKey(cfg, api), l, &http.Client{Timeout: defaultUpstreamTimeout})
	}

	return repos
}

// sharedKey lets the data endpoints reuse the geocoding key, which OpenWeatherMap
// issues per account rather than per endpoint.
func sharedKey(cfg *config.Config, api config.WeatherAPIConfig) string {
	if strings.TrimSpace(api.APIKey) != "" {
		return api.APIKey
	}
	if geo, ok := cfg.GetWeatherAPIByName("openweathermap"); ok {
		return geo.APIKey
	}
	return ""
}

func newUpstreamClient(api config.WeatherAPIConfig) HTTPClient {
	client := &http.Client{Timeout: api.TimeoutFor(defaultUpstreamTimeout)}
	return NewRateLimitedClient(client, api.RateLimit, api.Burst)
}
