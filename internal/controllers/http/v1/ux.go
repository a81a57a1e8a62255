package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/apperrors"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/historical"
)

// handleReverseGeocode godoc
// @Summary Reverse geocode browser coordinates
// @Description Turns the browser's geolocation into a "Name, CC" label for the city field.
// @Tags Location
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(51.5074)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-0.1278)
// @Success 200 {object} ReverseGeocodeResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 404 {object} ErrorResponse "No city at these coordinates"
// @Failure 502 {object} ErrorResponse "Geocoding service failed"
// @Router /api/geocode/reverse [get]
func (r *routes) handleReverseGeocode(c *fiber.Ctx) error {
	lat := c.Query("lat")
	lon := c.Query("lon")

	// Check for required parameters
	if lat == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lat",
		})
	}

	if lon == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lon",
		})
	}

	latFloat, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid latitude format",
		})
	}

	lonFloat, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid longitude format",
		})
	}

	city, err := r.historical.ReverseGeocode(c.UserContext(), latFloat, lonFloat)
	switch {
	case err == nil:
		return c.JSON(ReverseGeocodeResponse{City: city})
	case apperrors.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, repositories.ErrLocationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: repositories.ErrLocationNotFound.Error()})
	default:
		r.l.Error(err, map[string]any{
			"lat": latFloat,
			"lon": lonFloat,
		})
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "Failed to resolve location",
		})
	}
}

// handleValidateCity godoc
// @Summary Live city name validation
// @Description Inputs shorter than three characters are not checked.
// @Tags Location
// @Produce json
// @Param q query string false "Partial city name" example(Lon)
// @Success 200 {object} CityValidationResponse
// @Router /api/validate/city [get]
func (r *routes) handleValidateCity(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q", c.Query("city")))

	if len(q) < historical.MinLiveCheckLength {
		return c.JSON(CityValidationResponse{Valid: true})
	}
	return c.JSON(CityValidationResponse{Valid: historical.ValidCity(q), Checked: true})
}
