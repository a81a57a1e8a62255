package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weather-dashboard/internal/apperrors"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const (
	OpenWeatherMapGeoBaseURL = "https://api.openweathermap.org/geo/1.0"
)

var (
	ErrCityNotFound         = errors.New("City not found in geocoding service")
	ErrGeocodingUnavailable = errors.New("Unable to find city coordinates")
	ErrLocationNotFound     = errors.New("Unable to determine city name")
	ErrMissingAPIKey        = errors.New("API key cannot be empty")
)

type OpenWeatherMapGeocoder struct {
	baseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherMapGeocoder(baseURL, apiKey string, l *logger.Logger, httpClient HTTPClient) *OpenWeatherMapGeocoder {
	if baseURL == "" {
		baseURL = OpenWeatherMapGeoBaseURL
	}
	return &OpenWeatherMapGeocoder{
		baseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}
}

func (g *OpenWeatherMapGeocoder) Name() string {
	return "openweathermap"
}

type geocodingEntry struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

func (g *OpenWeatherMapGeocoder) Direct(ctx context.Context, city string) (models.Coordinates, error) {
	q := url.Values{}
	q.Set("q", city)

	entries, err := g.lookup(ctx, "direct", q)
	if err != nil {
		return models.Coordinates{}, err
	}
	if len(entries) == 0 {
		return models.Coordinates{}, ErrCityNotFound
	}

	return toCoordinates(entries[0]), nil
}

func (g *OpenWeatherMapGeocoder) Reverse(ctx context.Context, lat, lon float64) (models.Coordinates, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	entries, err := g.lookup(ctx, "reverse", q)
	if err != nil {
		return models.Coordinates{}, err
	}
	if len(entries) == 0 {
		return models.Coordinates{}, ErrLocationNotFound
	}

	return toCoordinates(entries[0]), nil
}

func (g *OpenWeatherMapGeocoder) lookup(ctx context.Context, endpoint string, q url.Values) ([]geocodingEntry, error) {
	// Validate API key before making request
	if strings.TrimSpace(g.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	q.Set("limit", "1")
	q.Set("appid", g.APIKey)
	u := fmt.Sprintf("%s/%s?%s", g.baseURL, endpoint, q.Encode())

	g.l.Info("making openweathermap geocoding request", map[string]any{
		"endpoint": endpoint,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Network("openweathermap geocoding", err)
	}
	defer resp.Body.Close()

	g.l.Info("received openweathermap geocoding response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Network("openweathermap geocoding", fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ErrGeocodingUnavailable
	}

	var entries []geocodingEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return entries, nil
}

func toCoordinates(e geocodingEntry) models.Coordinates {
	return models.Coordinates{
		Lat:     e.Lat,
		Lon:     e.Lon,
		Name:    e.Name,
		Country: e.Country,
	}
}
