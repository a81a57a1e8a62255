package http

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"weather-dashboard/internal/export"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/requester"
	"weather-dashboard/internal/views"
)

// handleWeather godoc
// @Summary Current weather and five day forecast
// @Description Looks the city up on OpenWeatherMap. Failures are reported in the error field with status 200.
// @Tags Weather
// @Accept x-www-form-urlencoded
// @Produce json
// @Param city formData string true "City name" example(London)
// @Success 200 {object} models.WeatherReport "Weather report or error"
// @Router /weather [post]
func (r *routes) handleWeather(c *fiber.Ctx) error {
	return c.JSON(r.weather.Lookup(c.UserContext(), c.FormValue("city")))
}

// handleHistorical godoc
// @Summary Look up historical weather
// @Description Geocodes the city and returns the archived daily observations for the date.
// @Description Failures are reported in the error field with status 200.
// @Tags Historical
// @Accept x-www-form-urlencoded
// @Produce json
// @Param city formData string true "City name" example(London)
// @Param date formData string true "Past date (YYYY-MM-DD)" example(2023-01-01)
// @Success 200 {object} models.HistoricalPayload "Historical result or error"
// @Router /historical [post]
func (r *routes) handleHistorical(c *fiber.Ctx) error {
	payload := r.historical.Lookup(c.UserContext(), c.FormValue("city"), c.FormValue("date"))
	return c.JSON(payload)
}

// handleHistoricalPanel godoc
// @Summary Historical result panel
// @Description Validates the form, performs the lookup and returns the result panel as HTML.
// @Description Answers 204 when a newer submission from the same page superseded this one.
// @Tags Historical
// @Accept x-www-form-urlencoded
// @Produce html
// @Param city formData string true "City name"
// @Param date formData string true "Past date (YYYY-MM-DD)"
// @Param page_id formData string false "Page instance id"
// @Success 200 {string} string "HTML fragment"
// @Success 204 "Superseded"
// @Router /historical/panel [post]
func (r *routes) handleHistoricalPanel(c *fiber.Ctx) error {
	// only the last committed view is sent
	var view views.HistoricalPanel
	panel := requester.PanelFunc(func(v views.HistoricalPanel) error {
		view = v
		return nil
	})

	// fasthttp reuses these buffers once the handler returns; the page id
	// outlives this request in the requester.
	out := r.requester.Submit(c.UserContext(), panel, requester.Submission{
		PageID: utils.CopyString(c.FormValue("page_id")),
		City:   utils.CopyString(c.FormValue("city")),
		Date:   utils.CopyString(c.FormValue("date")),
		Origin: utils.CopyString(c.BaseURL()),
	})
	if out.Stale {
		return c.SendStatus(fiber.StatusNoContent)
	}

	var buf bytes.Buffer
	if err := views.NewPanelRenderer(&buf).Commit(view); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// handleExport godoc
// @Summary Download a historical result as CSV
// @Tags Historical
// @Accept x-www-form-urlencoded
// @Produce text/csv
// @Param city formData string true "City name"
// @Param date formData string true "Date (YYYY-MM-DD)"
// @Param temperature formData number false "Temperature (°C)"
// @Param humidity formData number false "Humidity (%)"
// @Param pressure formData number false "Pressure (hPa)"
// @Param wind_speed formData number false "Wind speed (m/s)"
// @Param description formData string false "Weather description"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Router /historical/export [post]
func (r *routes) handleExport(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.FormValue("city"))
	date := strings.TrimSpace(c.FormValue("date"))
	if city == "" || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "City and date are required",
		})
	}

	result := models.HistoricalResult{Date: date, Description: c.FormValue("description")}
	for name, dst := range map[string]*float64{
		"temperature": &result.Temperature,
		"humidity":    &result.Humidity,
		"pressure":    &result.Pressure,
		"wind_speed":  &result.WindSpeed,
	} {
		raw := c.FormValue(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Invalid " + name + " format",
			})
		}
		*dst = v
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, export.Record{City: city, Date: date, Result: result}); err != nil {
		return err
	}

	// Attachment would query-escape spaces in the name
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, export.ContentDisposition(export.Filename(city, date)))
	return c.Send(buf.Bytes())
}
