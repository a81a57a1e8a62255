package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/swagger"

	_ "weather-dashboard/docs"
	"weather-dashboard/internal/requester"
	"weather-dashboard/internal/services/forecast"
	"weather-dashboard/internal/services/historical"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/internal/views"
	"weather-dashboard/pkg/logger"
)

type routes struct {
	title      string
	historical *historical.Service
	requester  *requester.Requester
	forecast   *forecast.Service
	weather    *weather.Service
	l          *logger.Logger
}

type Deps struct {
	Title      string
	Historical *historical.Service
	Requester  *requester.Requester
	Forecast   *forecast.Service
	Weather    *weather.Service
}

func NewRouter(
	app *fiber.App,
	deps Deps,
	l *logger.Logger,
) {
	r := &routes{
		title:      deps.Title,
		historical: deps.Historical,
		requester:  deps.Requester,
		forecast:   deps.Forecast,
		weather:    deps.Weather,
		l:          l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(views.StaticFS()),
		MaxAge: 3600,
	}))

	// Page and HTML fragments
	app.Get("/", r.handleIndex)
	app.Get("/partials/current", r.handleCurrentPartial)
	app.Get("/partials/forecast", r.handleForecastPartial)
	app.Post("/refresh", r.handleRefresh)

	// City search
	app.Post("/weather", r.handleWeather)

	// Historical lookups
	app.Post("/historical", r.handleHistorical)
	app.Post("/historical/panel", r.handleHistoricalPanel)
	app.Post("/historical/export", r.handleExport)

	// JSON API
	api := app.Group("/api")
	api.Get("/current", r.handleCurrentJSON)
	api.Get("/forecast", r.handleForecastJSON)
	api.Get("/geocode/reverse", r.handleReverseGeocode)
	api.Get("/validate/city", r.handleValidateCity)
}
