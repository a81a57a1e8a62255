package models

import (
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates (form fields, JSON, CSV).
const DateLayout = "2006-01-02"

// HistoricalQuery is a validated city+date pair ready for dispatch.
type HistoricalQuery struct {
	City string
	Date time.Time
}

func (q HistoricalQuery) DateString() string {
	return q.Date.Format(DateLayout)
}

// Key normalises the query for in-flight deduplication.
func (q HistoricalQuery) Key() string {
	return strings.ToLower(strings.Join(strings.Fields(q.City), " ")) + "|" + q.DateString()
}

// HistoricalResult is one day of archived observations for a city.
type HistoricalResult struct {
	Date        string  `json:"date,omitempty" example:"2023-01-01"`
	Temperature float64 `json:"temperature" example:"10"`
	TempMax     float64 `json:"temp_max" example:"13"`
	TempMin     float64 `json:"temp_min" example:"7"`
	Humidity    float64 `json:"humidity" example:"80"`
	Pressure    float64 `json:"pressure" example:"1012"`
	WindSpeed   float64 `json:"wind_speed" example:"3"`
	Description string  `json:"description" example:"clear sky"`
}

// HistoricalPayload is what the /historical endpoint answers: either a result or an error.
type HistoricalPayload struct {
	HistoricalResult
	Error string `json:"error,omitempty"`
}

func (p HistoricalPayload) Failed() bool {
	return p.Error != ""
}
