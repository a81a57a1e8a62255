package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/config"
	"weather-dashboard/pkg/logger"
)

func TestInitWeatherRepositories(t *testing.T) {
	cfg := &config.Config{}
	cfg.Weather.APIs = []config.WeatherAPIConfig{
		{Name: "open-meteo-archive", BaseURL: "http://archive.local", Timeout: 5},
		{Name: "openweathermap", BaseURL: "http://geo.local", APIKey: "k", Timeout: 5, RateLimit: 1, Burst: 2},
		{Name: "openweathermap-weather", BaseURL: "http://data.local/", Timeout: 5},
		{Name: "something-else"},
	}

	repos := InitWeatherRepositories(cfg, logger.Nop())
	require.NotNil(t, repos.Archive)
	require.NotNil(t, repos.Geocoding)

	archive := repos.Archive.(*OpenMeteoArchiveRepository)
	assert.Equal(t, "http://archive.local", archive.baseURL)

	geo := repos.Geocoding.(*OpenWeatherMapGeocoder)
	assert.Equal(t, "http://geo.local", geo.baseURL)
	assert.Equal(t, "k", geo.APIKey)
	assert.IsType(t, &RateLimitedClient{}, geo.httpClient)

	// no key of its own: the geocoding key is shared
	data := repos.Weather.(*WeatherAPIRepository)
	assert.Equal(t, "http://data.local", data.baseURL)
	assert.Equal(t, "k", data.APIKey)
}

func TestInitWeatherRepositories_WeatherOwnKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.Weather.APIs = []config.WeatherAPIConfig{
		{Name: "openweathermap", APIKey: "geo-key"},
		{Name: "openweathermap-weather", APIKey: "data-key"},
	}

	repos := InitWeatherRepositories(cfg, logger.Nop())
	assert.Equal(t, "data-key", repos.Weather.(*WeatherAPIRepository).APIKey)
}

func TestInitWeatherRepositories_Defaults(t *testing.T) {
	repos := InitWeatherRepositories(&config.Config{}, logger.Nop())

	assert.Equal(t, OpenMeteoArchiveBaseURL, repos.Archive.(*OpenMeteoArchiveRepository).baseURL)
	assert.Equal(t, OpenWeatherMapGeoBaseURL, repos.Geocoding.(*OpenWeatherMapGeocoder).baseURL)
	assert.Equal(t, OpenWeatherMapDataBaseURL, repos.Weather.(*WeatherAPIRepository).baseURL)
}

func TestNewRateLimitedClient_Disabled(t *testing.T) {
	client := &http.Client{}
	assert.Same(t, client, NewRateLimitedClient(client, 0, 5))
}

func TestRateLimitedClient_Do(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	// one token, refilled every 10s: the second call has to wait
	client := NewRateLimitedClient(server.Client(), 0.1, 0)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req, _ = http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	_, err = client.Do(req)
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestDescribeWeatherCode(t *testing.T) {
	assert.Equal(t, "Clear Sky", DescribeWeatherCode(0))
	assert.Equal(t, "Thunderstorm with Heavy Hail", DescribeWeatherCode(99))
	assert.Equal(t, "Unknown Weather", DescribeWeatherCode(42))
}
