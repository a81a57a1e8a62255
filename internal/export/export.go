// Package export turns a historical result into a downloadable CSV file and a
// share payload.
package export

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"weather-dashboard/internal/models"
)

const (
	ContentType = "text/csv; charset=utf-8"

	Header = "City,Date,Temperature (°C),Humidity (%),Pressure (hPa),Wind Speed (m/s),Description"

	MsgDownloaded = "Weather data downloaded successfully!"
	MsgCopied     = "Link copied to clipboard!"
	MsgShareFail  = "Unable to share or copy link"
)

// Record is one exported row.
type Record struct {
	City   string
	Date   string
	Result models.HistoricalResult
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Encode writes the header and a single data row. The description is always
// quoted; embedded quotes are doubled.
func Encode(w io.Writer, r Record) error {
	description := strings.ReplaceAll(r.Result.Description, `"`, `""`)

	_, err := fmt.Fprintf(w, "%s\n%s,%s,%s,%s,%s,%s,\"%s\"",
		Header,
		r.City,
		r.Date,
		number(r.Result.Temperature),
		number(r.Result.Humidity),
		number(r.Result.Pressure),
		number(r.Result.WindSpeed),
		description,
	)
	if err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9 ,._-]`)

// Filename is weather_<city>_<date>.csv with anything unsafe for a
// Content-Disposition header replaced.
func Filename(city, date string) string {
	return unsafeFilename.ReplaceAllString(fmt.Sprintf("weather_%s_%s.csv", city, date), "_")
}

// ContentDisposition is the attachment header for filename, sent both quoted
// and in RFC 5987 form.
func ContentDisposition(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, filename, url.PathEscape(filename))
}

// SharePayload is handed to the browser's share sheet.
type SharePayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

func NewSharePayload(city, date, link string) SharePayload {
	return SharePayload{
		Title: "Weather Data for " + city,
		Text:  fmt.Sprintf("Historical weather data for %s on %s", city, date),
		URL:   link,
	}
}

// ShareLink points back at the page with the form prefilled.
func ShareLink(base, city, date string) string {
	q := url.Values{}
	q.Set("city", city)
	q.Set("date", date)
	return strings.TrimRight(base, "/") + "/?" + q.Encode()
}
