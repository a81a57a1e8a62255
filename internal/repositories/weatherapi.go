package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-dashboard/internal/apperrors"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const (
	OpenWeatherMapDataBaseURL = "https://api.openweathermap.org/data/2.5"

	// ForecastDays caps the daily forecast built from the 3-hourly feed.
	ForecastDays = 5
)

var (
	ErrWeatherCityNotFound = errors.New("City not found. Please check the spelling and try again.")
	ErrWeatherAPIKey       = errors.New("API key error. Please check the configuration.")
	ErrForecastUnavailable = errors.New("Unable to fetch forecast data.")
)

// StatusError is any other non-200 answer to a current weather request.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Weather service error (Code: %d)", e.Code)
}

// WeatherAPIRepository reads current conditions and the 5 day forecast for a city.
type WeatherAPIRepository struct {
	baseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewWeatherAPIRepository(baseURL, apiKey string, l *logger.Logger, httpClient HTTPClient) *WeatherAPIRepository {
	if baseURL == "" {
		baseURL = OpenWeatherMapDataBaseURL
	}
	return &WeatherAPIRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}
}

func (w *WeatherAPIRepository) Name() string {
	return "openweathermap-weather"
}

type owmCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type currentResponse struct {
	Name     string         `json:"name"`
	Timezone int            `json:"timezone"`
	Weather  []owmCondition `json:"weather"`
	Main     struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility float64 `json:"visibility"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

type forecastResponse struct {
	City struct {
		Timezone int `json:"timezone"`
	} `json:"city"`
	List []struct {
		Dt   int64   `json:"dt"`
		Pop  float64 `json:"pop"`
		Main struct {
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity int     `json:"humidity"`
			Pressure int     `json:"pressure"`
		} `json:"main"`
		Weather []owmCondition `json:"weather"`
	} `json:"list"`
}

func (w *WeatherAPIRepository) Current(ctx context.Context, city string) (models.CityWeather, error) {
	status, body, err := w.get(ctx, "weather", city)
	if err != nil {
		return models.CityWeather{}, err
	}

	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return models.CityWeather{}, ErrWeatherCityNotFound
	case http.StatusUnauthorized:
		return models.CityWeather{}, ErrWeatherAPIKey
	default:
		return models.CityWeather{}, &StatusError{Code: status}
	}

	var response currentResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.CityWeather{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if len(response.Weather) == 0 {
		return models.CityWeather{}, errors.New("response carries no weather condition")
	}

	zone := time.FixedZone("", response.Timezone)
	cond := response.Weather[0]

	return models.CityWeather{
		City:        response.Name,
		Country:     response.Sys.Country,
		Temperature: roundInt(response.Main.Temp),
		FeelsLike:   roundInt(response.Main.FeelsLike),
		Description: titleCase(cond.Description),
		Group:       cond.Main,
		Icon:        cond.Icon,
		Humidity:    response.Main.Humidity,
		Pressure:    response.Main.Pressure,
		WindSpeed:   round1(response.Wind.Speed),
		Visibility:  round1(response.Visibility / 1000),
		Sunrise:     time.Unix(response.Sys.Sunrise, 0).In(zone).Format("15:04"),
		Sunset:      time.Unix(response.Sys.Sunset, 0).In(zone).Format("15:04"),
	}, nil
}

// Forecast keeps the first slot of each local day, up to ForecastDays days.
func (w *WeatherAPIRepository) Forecast(ctx context.Context, city string) ([]models.DailyForecast, error) {
	status, body, err := w.get(ctx, "forecast", city)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, ErrForecastUnavailable
	}

	var response forecastResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	w.l.Info("parsed API response", map[string]any{
		"items": len(response.List),
	})

	if len(response.List) == 0 {
		return nil, ErrForecastUnavailable
	}

	zone := time.FixedZone("", response.City.Timezone)
	days := make([]models.DailyForecast, 0, ForecastDays)
	seen := make(map[string]bool, ForecastDays)

	for _, item := range response.List {
		if len(days) == ForecastDays {
			break
		}

		at := time.Unix(item.Dt, 0).In(zone)
		iso := at.Format(models.DateLayout)
		if seen[iso] {
			continue
		}
		seen[iso] = true

		day := models.DailyForecast{
			Date:     at.Format(models.ReportDateLayout),
			ISODate:  iso,
			TempMax:  roundInt(item.Main.TempMax),
			TempMin:  roundInt(item.Main.TempMin),
			Humidity: item.Main.Humidity,
			Pressure: item.Main.Pressure,

			PrecipitationChance: roundInt(item.Pop * 100),
		}
		if len(item.Weather) > 0 {
			day.Description = titleCase(item.Weather[0].Description)
			day.Group = item.Weather[0].Main
			day.Icon = item.Weather[0].Icon
		}
		days = append(days, day)
	}

	return days, nil
}

func (w *WeatherAPIRepository) get(ctx context.Context, endpoint, city string) (int, []byte, error) {
	if strings.TrimSpace(w.APIKey) == "" {
		return 0, nil, ErrWeatherAPIKey
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", w.APIKey)
	q.Set("units", "metric")
	u := fmt.Sprintf("%s/%s?%s", w.baseURL, endpoint, q.Encode())

	w.l.Info("making openweathermap API request", map[string]any{
		"endpoint": endpoint,
		"city":     city,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, nil, apperrors.Network("openweathermap "+endpoint, err)
	}
	defer resp.Body.Close()

	w.l.Info("received openweathermap API response", map[string]any{
		"endpoint":   endpoint,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, apperrors.Network("openweathermap "+endpoint, fmt.Errorf("failed to read response body: %w", err))
	}

	return resp.StatusCode, body, nil
}

// titleCase upper-cases the first letter of every word. A Caser keeps state,
// so each call gets its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
