package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, Record{
		City: "London",
		Date: "2023-01-01",
		Result: models.HistoricalResult{
			Temperature: 10, Humidity: 80, Pressure: 1012, WindSpeed: 3, Description: "clear sky",
		},
	})
	require.NoError(t, err)

	want := "City,Date,Temperature (°C),Humidity (%),Pressure (hPa),Wind Speed (m/s),Description\n" +
		`London,2023-01-01,10,80,1012,3,"clear sky"`
	assert.Equal(t, want, buf.String())
}

func TestEncode_DecimalsAndQuotes(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, Record{
		City:   "Paris",
		Date:   "2024-05-01",
		Result: models.HistoricalResult{Temperature: -2, WindSpeed: 4.5, Description: `so-called "fog"`},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `Paris,2024-05-01,-2,0,0,4.5,"so-called ""fog"""`)
}

func TestEncode_WriteError(t *testing.T) {
	err := Encode(failingWriter{}, Record{City: "London"})
	assert.ErrorContains(t, err, "disk full")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "weather_London_2023-01-01.csv", Filename("London", "2023-01-01"))
	assert.Equal(t, "weather_New York_2023-01-01.csv", Filename("New York", "2023-01-01"))
	assert.Equal(t, "weather_a_b_2023-01-01.csv", Filename(`a"b`, "2023-01-01"))
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t,
		`attachment; filename="weather_New York_2023-01-01.csv"; filename*=UTF-8''weather_New%20York_2023-01-01.csv`,
		ContentDisposition(Filename("New York", "2023-01-01")))
}

func TestSharePayload(t *testing.T) {
	p := NewSharePayload("London", "2023-01-01", "http://localhost:8080/?city=London&date=2023-01-01")
	assert.Equal(t, "Weather Data for London", p.Title)
	assert.Equal(t, "Historical weather data for London on 2023-01-01", p.Text)
}

func TestShareLink(t *testing.T) {
	assert.Equal(t, "http://x.test/?city=New+York&date=2023-01-01", ShareLink("http://x.test/", "New York", "2023-01-01"))
}
