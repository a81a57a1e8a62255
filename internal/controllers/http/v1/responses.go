package http

import (
	"weather-dashboard/internal/models"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: lat"`
}

// CurrentResponse is the current weather reading. Success is false when the
// fallback reading is served.
type CurrentResponse struct {
	Success        bool                 `json:"success" example:"true"`
	CurrentWeather models.WeatherSample `json:"current_weather"`
	Error          string               `json:"error,omitempty"`
}

// ForecastResponse is the seven day forecast.
type ForecastResponse struct {
	Success     bool                    `json:"success" example:"true"`
	Forecast    []models.ForecastSample `json:"forecast"`
	GeneratedAt string                  `json:"generated_at" example:"2025-07-25T14:30:00Z"`
	Error       string                  `json:"error,omitempty"`
}

// ReverseGeocodeResponse carries the "Name, CC" label for a coordinate pair.
type ReverseGeocodeResponse struct {
	City string `json:"city" example:"London, GB"`
}

// CityValidationResponse reports whether a partial city name is acceptable.
// Checked is false for inputs too short to judge.
type CityValidationResponse struct {
	Valid   bool `json:"valid" example:"true"`
	Checked bool `json:"checked" example:"true"`
}
