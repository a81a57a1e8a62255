package http

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"weather-dashboard/internal/apperrors"
	"weather-dashboard/internal/export"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/views"
)

const forecastSlotID = "forecastSlot"

func (r *routes) sendHTML(c *fiber.Ctx, buf *bytes.Buffer) error {
	if buf.Len() == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// handleIndex renders the whole page.
func (r *routes) handleIndex(c *fiber.Ctx) error {
	refreshed := r.forecast.Refresh(c.UserContext())
	oldest, newest := r.historical.Validator().DateBounds()

	data := &views.PageData{
		Title: r.title,
		Form: views.FormData{
			PageID:  uuid.NewString(),
			City:    c.Query("city"),
			Date:    c.Query("date"),
			MinDate: oldest,
			MaxDate: newest,
		},
		Panel:    views.EmptyPanel(),
		Current:  views.NewCurrentCard(refreshed.Current),
		Forecast: views.NewForecastStrip(refreshed.Week, views.ForecastContainerID),
		Banners:  refreshed.Banners(),
		GeoMessages: map[int]string{
			apperrors.GeoPermissionDenied:    apperrors.GeolocationMessage(apperrors.GeoPermissionDenied),
			apperrors.GeoPositionUnavailable: apperrors.GeolocationMessage(apperrors.GeoPositionUnavailable),
			apperrors.GeoTimeout:             apperrors.GeolocationMessage(apperrors.GeoTimeout),
		},
		Messages: pageMessages(),
	}

	var buf bytes.Buffer
	if err := views.RenderIndex(&buf, data); err != nil {
		return err
	}
	return r.sendHTML(c, &buf)
}

// pageMessages are the banner texts app.js shows without a server round trip.
func pageMessages() map[string]string {
	return map[string]string{
		"downloaded":     export.MsgDownloaded,
		"copied":         export.MsgCopied,
		"shareFailed":    export.MsgShareFail,
		"geoUnsupported": apperrors.BannerFor(apperrors.Unsupported("Geolocation")).Message,
	}
}

// handleCurrentPartial godoc
// @Summary Current weather card
// @Tags Forecast
// @Produce html
// @Success 200 {string} string "HTML fragment"
// @Router /partials/current [get]
func (r *routes) handleCurrentPartial(c *fiber.Ctx) error {
	cur := r.forecast.Current(c.UserContext())
	card := views.NewCurrentCard(cur)

	var buf bytes.Buffer
	if err := views.RenderCurrent(&buf, &card); err != nil {
		return err
	}
	if cur.Banner != nil {
		if err := views.RenderBanners(&buf, []models.Banner{*cur.Banner}); err != nil {
			return err
		}
	}
	return r.sendHTML(c, &buf)
}

// forecastContainer resolves where an htmx request wants the strip. Requests
// aimed at some other element have no container.
func forecastContainer(c *fiber.Ctx) string {
	if c.Get("HX-Request") != "true" {
		return views.ForecastContainerID
	}
	switch c.Get("HX-Target") {
	case "", forecastSlotID, views.ForecastContainerID:
		return views.ForecastContainerID
	default:
		return ""
	}
}

// handleForecastPartial godoc
// @Summary Seven day forecast strip
// @Description Answers 204 when the htmx target has no forecast container.
// @Tags Forecast
// @Produce html
// @Success 200 {string} string "HTML fragment"
// @Success 204 "No container"
// @Router /partials/forecast [get]
func (r *routes) handleForecastPartial(c *fiber.Ctx) error {
	container := forecastContainer(c)
	if container == "" {
		return c.SendStatus(fiber.StatusNoContent)
	}

	week := r.forecast.Week(c.UserContext())
	strip := views.NewForecastStrip(week, container)

	var buf bytes.Buffer
	if err := views.RenderForecast(&buf, &strip); err != nil {
		return err
	}
	if week.Banner != nil {
		if err := views.RenderBanners(&buf, []models.Banner{*week.Banner}); err != nil {
			return err
		}
	}
	return r.sendHTML(c, &buf)
}

// handleRefresh godoc
// @Summary Refresh current weather and forecast
// @Description Reloads both cards concurrently and returns them as out-of-band swaps,
// @Description together with the delay after which the loading overlay is cleared.
// @Tags Forecast
// @Produce html
// @Success 200 {string} string "HTML fragments"
// @Router /refresh [post]
func (r *routes) handleRefresh(c *fiber.Ctx) error {
	data := views.NewRefreshData(r.forecast.Refresh(c.UserContext()))

	var buf bytes.Buffer
	if err := views.RenderRefresh(&buf, &data); err != nil {
		return err
	}
	return r.sendHTML(c, &buf)
}

// handleCurrentJSON godoc
// @Summary Current weather
// @Tags Forecast
// @Produce json
// @Success 200 {object} CurrentResponse
// @Router /api/current [get]
func (r *routes) handleCurrentJSON(c *fiber.Ctx) error {
	cur := r.forecast.Current(c.UserContext())

	resp := CurrentResponse{Success: !cur.Fallback, CurrentWeather: cur.Sample}
	if cur.Banner != nil {
		resp.Error = cur.Banner.Message
	}
	return c.JSON(resp)
}

// handleForecastJSON godoc
// @Summary Seven day forecast
// @Tags Forecast
// @Produce json
// @Success 200 {object} ForecastResponse
// @Router /api/forecast [get]
func (r *routes) handleForecastJSON(c *fiber.Ctx) error {
	week := r.forecast.Week(c.UserContext())

	resp := ForecastResponse{
		Success:     !week.Fallback,
		Forecast:    week.Days,
		GeneratedAt: week.GeneratedAt.Format(time.RFC3339),
	}
	if week.Banner != nil {
		resp.Error = week.Banner.Message
	}
	return c.JSON(resp)
}
