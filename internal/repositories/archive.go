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
	"strconv"

	"weather-dashboard/internal/apperrors"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const (
	OpenMeteoArchiveBaseURL = "https://archive-api.open-meteo.com/v1/archive"

	archiveDailyFields = "temperature_2m_max,temperature_2m_min,relative_humidity_2m_mean,surface_pressure_mean,wind_speed_10m_max,weather_code"
)

var (
	ErrArchiveUnavailable = errors.New("Historical weather data not available for this date")
	ErrNoArchiveData      = errors.New("No historical data available for the selected date")
)

type OpenMeteoArchiveRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenMeteoArchiveRepository(baseURL string, l *logger.Logger, httpClient HTTPClient) *OpenMeteoArchiveRepository {
	if baseURL == "" {
		baseURL = OpenMeteoArchiveBaseURL
	}
	return &OpenMeteoArchiveRepository{
		baseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenMeteoArchiveRepository) Name() string {
	return "open-meteo-archive"
}

// OpenMeteoDaily mirrors the "daily" block; the archive reports gaps as null.
type OpenMeteoDaily struct {
	Time             []string   `json:"time"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
	Humidity         []*float64 `json:"relative_humidity_2m_mean"`
	Pressure         []*float64 `json:"surface_pressure_mean"`
	WindSpeed        []*float64 `json:"wind_speed_10m_max"`
	WeatherCode      []*int     `json:"weather_code"`
}

func (o *OpenMeteoArchiveRepository) requestURL(lat, lon float64, date string) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("start_date", date)
	q.Set("end_date", date)
	q.Set("daily", archiveDailyFields)
	q.Set("wind_speed_unit", "ms")
	q.Set("timezone", "auto")
	return o.baseURL + "?" + q.Encode()
}

func (o *OpenMeteoArchiveRepository) FetchDay(ctx context.Context, lat, lon float64, date string) (models.HistoricalResult, error) {
	result := models.HistoricalResult{Date: date}

	o.l.Info("making open-meteo archive request", map[string]any{
		"lat":  lat,
		"lon":  lon,
		"date": date,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.requestURL(lat, lon, date), nil)
	if err != nil {
		return result, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return result, apperrors.Network("open-meteo archive", err)
	}
	defer resp.Body.Close()

	o.l.Info("received open-meteo archive response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, apperrors.Network("open-meteo archive", fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		o.l.Warning("open-meteo archive returned non-200", map[string]any{
			"status": resp.StatusCode,
			"body":   string(body),
		})
		return result, ErrArchiveUnavailable
	}

	var response struct {
		Daily *OpenMeteoDaily `json:"daily"`
	}
	if err = json.Unmarshal(body, &response); err != nil {
		return result, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if response.Daily == nil || len(response.Daily.Temperature2mMax) == 0 {
		return result, ErrNoArchiveData
	}

	return buildHistoricalResult(date, *response.Daily), nil
}

// buildHistoricalResult reads the first (only) day of the block. Missing values read as zero.
func buildHistoricalResult(date string, daily OpenMeteoDaily) models.HistoricalResult {
	tempMax := first(daily.Temperature2mMax)
	tempMin := first(daily.Temperature2mMin)

	code := 0
	if len(daily.WeatherCode) > 0 && daily.WeatherCode[0] != nil {
		code = *daily.WeatherCode[0]
	}

	if len(daily.Time) > 0 && daily.Time[0] != "" {
		date = daily.Time[0]
	}

	return models.HistoricalResult{
		Date:        date,
		Temperature: math.Round((tempMax + tempMin) / 2),
		TempMax:     math.Round(tempMax),
		TempMin:     math.Round(tempMin),
		Humidity:    math.Round(first(daily.Humidity)),
		Pressure:    math.Round(first(daily.Pressure)),
		WindSpeed:   math.Round(first(daily.WindSpeed)*10) / 10,
		Description: DescribeWeatherCode(code),
	}
}

func first(values []*float64) float64 {
	if len(values) == 0 || values[0] == nil {
		return 0
	}
	return *values[0]
}
