package forecast

import (
	"context"
	"math"
	"math/rand"
	"time"

	"weather-dashboard/internal/models"
)

type pattern struct {
	temp, humidity, wind [2]int
	descriptions         []string
}

var patterns = map[models.Condition]pattern{
	models.Sunny: {
		temp: [2]int{20, 30}, humidity: [2]int{30, 60}, wind: [2]int{5, 15},
		descriptions: []string{"Clear skies", "Bright and sunny", "Perfect weather"},
	},
	models.Cloudy: {
		temp: [2]int{15, 25}, humidity: [2]int{50, 80}, wind: [2]int{10, 20},
		descriptions: []string{"Overcast", "Partly cloudy", "Gray skies"},
	},
	models.Rainy: {
		temp: [2]int{10, 20}, humidity: [2]int{70, 95}, wind: [2]int{15, 30},
		descriptions: []string{"Light rain", "Showers expected", "Rainy day"},
	},
	models.Stormy: {
		temp: [2]int{12, 18}, humidity: [2]int{80, 100}, wind: [2]int{25, 45},
		descriptions: []string{"Thunderstorms", "Severe weather", "Storm warning"},
	},
}

// Weights maps each condition to its likelihood.
type Weights map[models.Condition]float64

// seasonal holds per-month condition likelihoods, index 0 is January.
var seasonal = [12]Weights{
	{models.Sunny: 0.3, models.Cloudy: 0.4, models.Rainy: 0.2, models.Stormy: 0.1},
	{models.Sunny: 0.35, models.Cloudy: 0.35, models.Rainy: 0.2, models.Stormy: 0.1},
	{models.Sunny: 0.4, models.Cloudy: 0.3, models.Rainy: 0.25, models.Stormy: 0.05},
	{models.Sunny: 0.5, models.Cloudy: 0.25, models.Rainy: 0.2, models.Stormy: 0.05},
	{models.Sunny: 0.6, models.Cloudy: 0.2, models.Rainy: 0.15, models.Stormy: 0.05},
	{models.Sunny: 0.7, models.Cloudy: 0.15, models.Rainy: 0.1, models.Stormy: 0.05},
	{models.Sunny: 0.75, models.Cloudy: 0.1, models.Rainy: 0.1, models.Stormy: 0.05},
	{models.Sunny: 0.7, models.Cloudy: 0.15, models.Rainy: 0.1, models.Stormy: 0.05},
	{models.Sunny: 0.6, models.Cloudy: 0.2, models.Rainy: 0.15, models.Stormy: 0.05},
	{models.Sunny: 0.5, models.Cloudy: 0.25, models.Rainy: 0.2, models.Stormy: 0.05},
	{models.Sunny: 0.4, models.Cloudy: 0.3, models.Rainy: 0.25, models.Stormy: 0.05},
	{models.Sunny: 0.3, models.Cloudy: 0.4, models.Rainy: 0.2, models.Stormy: 0.1},
}

// transitions is the chance of tomorrow's condition given today's.
var transitions = map[models.Condition]Weights{
	models.Sunny:  {models.Sunny: 0.6, models.Cloudy: 0.3, models.Rainy: 0.08, models.Stormy: 0.02},
	models.Cloudy: {models.Sunny: 0.4, models.Cloudy: 0.4, models.Rainy: 0.15, models.Stormy: 0.05},
	models.Rainy:  {models.Sunny: 0.2, models.Cloudy: 0.5, models.Rainy: 0.25, models.Stormy: 0.05},
	models.Stormy: {models.Sunny: 0.1, models.Cloudy: 0.3, models.Rainy: 0.4, models.Stormy: 0.2},
}

const (
	seasonalWeight   = 0.3
	transitionWeight = 0.7
)

// SeasonalSource picks conditions from monthly climatology blended with a
// first-order Markov chain over the previous day.
type SeasonalSource struct {
	rnd *lockedRand
	now func() time.Time
}

func NewSeasonalSource(rnd *rand.Rand, now func() time.Time) *SeasonalSource {
	return &SeasonalSource{rnd: &lockedRand{rnd: rnd}, now: now}
}

func (s *SeasonalSource) Name() string {
	return SourceSeasonal
}

// Likelihoods returns the normalised condition weights for a day in month,
// optionally conditioned on the previous day's condition.
func Likelihoods(month time.Month, previous models.Condition) Weights {
	base := seasonal[month-1]
	combined := make(Weights, len(base))

	if next, ok := transitions[previous]; ok {
		for c, p := range base {
			combined[c] = seasonalWeight*p + transitionWeight*next[c]
		}
	} else {
		for c, p := range base {
			combined[c] = p
		}
	}

	total := 0.0
	for _, p := range combined {
		total += p
	}
	for c := range combined {
		combined[c] /= total
	}
	return combined
}

func (s *SeasonalSource) predict(date time.Time, previous models.Condition) (models.Condition, float64) {
	w := Likelihoods(date.Month(), previous)

	roll := s.rnd.float64()
	acc := 0.0
	chosen := models.Conditions[len(models.Conditions)-1]
	for _, c := range models.Conditions {
		acc += w[c]
		if roll < acc {
			chosen = c
			break
		}
	}

	return chosen, math.Round(w[chosen]*1000) / 10
}

// details draws inclusive ranges for the chosen condition.
func (s *SeasonalSource) details(c models.Condition) models.WeatherSample {
	p := patterns[c]
	return models.WeatherSample{
		Condition:   c,
		Temperature: s.rnd.between(p.temp[0], p.temp[1]+1),
		Humidity:    s.rnd.between(p.humidity[0], p.humidity[1]+1),
		WindSpeed:   s.rnd.between(p.wind[0], p.wind[1]+1),
		Icon:        c.Icon(),
		Description: p.descriptions[s.rnd.between(0, len(p.descriptions))],
	}
}

func (s *SeasonalSource) Current(ctx context.Context) (models.WeatherSample, error) {
	if err := ctx.Err(); err != nil {
		return models.WeatherSample{}, err
	}

	now := s.now()
	c, probability := s.predict(now, "")

	sample := s.details(c)
	sample.Probability = probability
	sample.Date = sampleDate(now)
	sample.Time = sampleTime(now)
	return sample, nil
}

func (s *SeasonalSource) Week(ctx context.Context) ([]models.ForecastSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	today := s.now()
	days := make([]models.ForecastSample, 0, WeekLength)
	var previous models.Condition

	for i := 0; i < WeekLength; i++ {
		date := today.AddDate(0, 0, i)
		c, probability := s.predict(date, previous)

		sample := s.details(c)
		sample.Probability = probability
		sample.Date = sampleDate(date)

		days = append(days, models.ForecastSample{WeatherSample: sample, Day: date.Weekday().String()})
		previous = c
	}

	return days, nil
}
