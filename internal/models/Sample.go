package models

// Condition is the coarse weather state used by generated samples.
type Condition string

const (
	Sunny  Condition = "sunny"
	Cloudy Condition = "cloudy"
	Rainy  Condition = "rainy"
	Stormy Condition = "stormy"
)

// Conditions lists every condition in a stable order.
var Conditions = []Condition{Sunny, Cloudy, Rainy, Stormy}

// ConditionInfo is the fixed presentation attached to a condition.
type ConditionInfo struct {
	Icon string
	// Current is the wording used on the "current weather" card.
	Current string
	// Forecast is the wording used on forecast day cards.
	Forecast string
}

var conditionTable = map[Condition]ConditionInfo{
	Sunny:  {Icon: "☀️", Current: "Clear and bright", Forecast: "Clear skies"},
	Cloudy: {Icon: "☁️", Current: "Overcast skies", Forecast: "Overcast"},
	Rainy:  {Icon: "🌧️", Current: "Light showers", Forecast: "Light rain"},
	Stormy: {Icon: "⛈️", Current: "Thunderstorms likely", Forecast: "Thunderstorms"},
}

// DefaultIcon is shown for conditions outside the table.
const DefaultIcon = "🌤️"

func (c Condition) Info() (ConditionInfo, bool) {
	info, ok := conditionTable[c]
	return info, ok
}

func (c Condition) Icon() string {
	if info, ok := conditionTable[c]; ok {
		return info.Icon
	}
	return DefaultIcon
}

func (c Condition) Valid() bool {
	_, ok := conditionTable[c]
	return ok
}

// WeatherSample is one generated "current weather" reading.
type WeatherSample struct {
	Condition   Condition `json:"condition" example:"sunny"`
	Temperature int       `json:"temperature" example:"22"`
	Humidity    int       `json:"humidity" example:"65"`
	WindSpeed   int       `json:"wind_speed" example:"12"`
	Probability float64   `json:"probability" example:"75"`
	Icon        string    `json:"icon" example:"☀️"`
	Description string    `json:"description" example:"Clear and bright"`
	Date        string    `json:"date" example:"2025-07-25"`
	Time        string    `json:"time,omitempty" example:"14:30"`
}

// ForecastSample is a WeatherSample labelled with its weekday.
type ForecastSample struct {
	WeatherSample
	Day string `json:"day" example:"Friday"`
}
