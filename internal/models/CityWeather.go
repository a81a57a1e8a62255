package models

// ReportDateLayout is how forecast days are labelled in a city report.
const ReportDateLayout = "January 02, 2006"

// CityWeather is the live reading for a named city.
type CityWeather struct {
	City        string  `json:"city" example:"London"`
	Country     string  `json:"country" example:"GB"`
	Temperature int     `json:"temperature" example:"18"`
	FeelsLike   int     `json:"feels_like" example:"17"`
	Description string  `json:"description" example:"Scattered Clouds"`
	// Group is the upstream condition group (Clear, Clouds, Rain...).
	Group       string  `json:"group" example:"Clouds"`
	Icon        string  `json:"icon" example:"03d"`
	Humidity    int     `json:"humidity" example:"72"`
	Pressure    int     `json:"pressure" example:"1015"`
	WindSpeed   float64 `json:"wind_speed" example:"4.1"`
	Visibility  float64 `json:"visibility" example:"10"`
	Sunrise     string  `json:"sunrise" example:"05:12"`
	Sunset      string  `json:"sunset" example:"21:03"`
}

// DailyForecast is the first upstream slot of one forecast day.
type DailyForecast struct {
	Date        string `json:"date" example:"July 26, 2025"`
	ISODate     string `json:"iso_date" example:"2025-07-26"`
	TempMax     int    `json:"temp_max" example:"21"`
	TempMin     int    `json:"temp_min" example:"14"`
	Description string `json:"description" example:"Light Rain"`
	Group       string `json:"group" example:"Rain"`
	Icon        string `json:"icon" example:"10d"`
	Humidity    int    `json:"humidity" example:"80"`
	Pressure    int    `json:"pressure" example:"1012"`

	// PrecipitationChance is in percent.
	PrecipitationChance int `json:"precipitation_chance" example:"35"`
}

// WeatherReport is what the /weather endpoint answers: a report or an error.
type WeatherReport struct {
	Weather  *CityWeather    `json:"weather,omitempty"`
	Forecast []DailyForecast `json:"forecast,omitempty"`
	Error    string          `json:"error,omitempty"`
}

func (r WeatherReport) Failed() bool {
	return r.Error != ""
}
