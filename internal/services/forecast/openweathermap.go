package forecast

import (
	"context"
	"math"
	"time"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
)

// groupConditions folds OpenWeatherMap condition groups into the four dashboard conditions.
var groupConditions = map[string]models.Condition{
	"Clear":        models.Sunny,
	"Clouds":       models.Cloudy,
	"Mist":         models.Cloudy,
	"Smoke":        models.Cloudy,
	"Haze":         models.Cloudy,
	"Dust":         models.Cloudy,
	"Fog":          models.Cloudy,
	"Sand":         models.Cloudy,
	"Ash":          models.Cloudy,
	"Drizzle":      models.Rainy,
	"Rain":         models.Rainy,
	"Snow":         models.Rainy,
	"Thunderstorm": models.Stormy,
	"Squall":       models.Stormy,
	"Tornado":      models.Stormy,
}

// ConditionForGroup maps an upstream group, defaulting to Cloudy.
func ConditionForGroup(group string) models.Condition {
	if c, ok := groupConditions[group]; ok {
		return c
	}
	return models.Cloudy
}

// OpenWeatherMapSource reports real readings for one configured city.
type OpenWeatherMapSource struct {
	repo repositories.CityWeatherRepository
	city string
	now  func() time.Time
}

func NewOpenWeatherMapSource(repo repositories.CityWeatherRepository, city string, now func() time.Time) *OpenWeatherMapSource {
	if now == nil {
		now = time.Now
	}
	return &OpenWeatherMapSource{repo: repo, city: city, now: now}
}

func (o *OpenWeatherMapSource) Name() string {
	return SourceOpenWeatherMap
}

// Current is an observation, so its probability is always 100.
func (o *OpenWeatherMapSource) Current(ctx context.Context) (models.WeatherSample, error) {
	w, err := o.repo.Current(ctx, o.city)
	if err != nil {
		return models.WeatherSample{}, err
	}

	now := o.now()
	c := ConditionForGroup(w.Group)

	return models.WeatherSample{
		Condition:   c,
		Temperature: w.Temperature,
		Humidity:    w.Humidity,
		WindSpeed:   kmh(w.WindSpeed),
		Probability: 100,
		Icon:        c.Icon(),
		Description: w.Description,
		Date:        sampleDate(now),
		Time:        sampleTime(now),
	}, nil
}

// Week returns the days the upstream covers, at most repositories.ForecastDays.
func (o *OpenWeatherMapSource) Week(ctx context.Context) ([]models.ForecastSample, error) {
	forecast, err := o.repo.Forecast(ctx, o.city)
	if err != nil {
		return nil, err
	}

	days := make([]models.ForecastSample, 0, len(forecast))
	for _, f := range forecast {
		date, err := time.Parse(models.DateLayout, f.ISODate)
		if err != nil {
			return nil, err
		}

		c := ConditionForGroup(f.Group)
		days = append(days, models.ForecastSample{
			WeatherSample: models.WeatherSample{
				Condition:   c,
				Temperature: f.TempMax,
				Humidity:    f.Humidity,
				Probability: conditionChance(c, f.PrecipitationChance),
				Icon:        c.Icon(),
				Description: f.Description,
				Date:        f.ISODate,
			},
			Day: date.Weekday().String(),
		})
	}

	return days, nil
}

// conditionChance turns the chance of precipitation into the chance of c.
func conditionChance(c models.Condition, precipitation int) float64 {
	if c == models.Rainy || c == models.Stormy {
		return float64(precipitation)
	}
	return float64(100 - precipitation)
}

func kmh(ms float64) int {
	return int(math.Round(ms * 3.6))
}
