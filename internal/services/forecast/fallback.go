package forecast

import (
	"time"

	"weather-dashboard/internal/models"
)

const (
	MsgCurrentFailed  = "Failed to load current weather data"
	MsgForecastFailed = "Failed to load weather forecast"
)

// FallbackCurrent is the fixed reading shown when the source fails.
func FallbackCurrent(now time.Time) models.WeatherSample {
	return models.WeatherSample{
		Temperature: 22,
		Humidity:    65,
		WindSpeed:   12,
		Probability: 75,
		Icon:        models.DefaultIcon,
		Description: "Partly cloudy",
		Date:        sampleDate(now),
	}
}

var fallbackWeek = []struct {
	day         string
	condition   models.Condition
	temperature int
	probability float64
}{
	{"Today", models.Sunny, 22, 85},
	{"Tomorrow", models.Cloudy, 19, 70},
	{"Friday", models.Rainy, 16, 90},
	{"Saturday", models.Cloudy, 18, 65},
	{"Sunday", models.Sunny, 24, 80},
	{"Monday", models.Rainy, 15, 85},
	{"Tuesday", models.Sunny, 21, 75},
}

// FallbackWeek is the static seven day table shown when the source fails.
func FallbackWeek() []models.ForecastSample {
	days := make([]models.ForecastSample, 0, len(fallbackWeek))
	for _, d := range fallbackWeek {
		info, _ := d.condition.Info()
		days = append(days, models.ForecastSample{
			WeatherSample: models.WeatherSample{
				Condition:   d.condition,
				Temperature: d.temperature,
				Probability: d.probability,
				Icon:        info.Icon,
				Description: info.Forecast,
			},
			Day: d.day,
		})
	}
	return days
}
