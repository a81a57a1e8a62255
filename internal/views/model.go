package views

import (
	"fmt"
	"strconv"

	"weather-dashboard/internal/export"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/forecast"
)

// ForecastContainerID is the element the forecast strip renders into.
const ForecastContainerID = "forecastContainer"

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// CurrentCard is the view model of the "current weather" card.
type CurrentCard struct {
	Icon        string
	Temperature string
	Description string
	Timestamp   string
	Humidity    string
	Wind        string
	Probability string
	Fallback    bool
}

func NewCurrentCard(c forecast.Current) CurrentCard {
	s := c.Sample
	ts := s.Date
	if s.Time != "" {
		ts = fmt.Sprintf("%s at %s", s.Date, s.Time)
	}
	return CurrentCard{
		Icon:        s.Icon,
		Temperature: fmt.Sprintf("%d°C", s.Temperature),
		Description: s.Description,
		Timestamp:   ts,
		Humidity:    fmt.Sprintf("%d%%", s.Humidity),
		Wind:        fmt.Sprintf("%d km/h", s.WindSpeed),
		Probability: number(s.Probability) + "%",
		Fallback:    c.Fallback,
	}
}

type ForecastCard struct {
	Day         string
	Icon        string
	Temperature string
	Condition   string
	Probability string
}

// ForecastStrip is the seven day row. An empty ContainerID means the page has
// no place for it and nothing is rendered.
type ForecastStrip struct {
	ContainerID string
	Cards       []ForecastCard
	Fallback    bool
}

func NewForecastStrip(w forecast.Week, containerID string) ForecastStrip {
	cards := make([]ForecastCard, 0, len(w.Days))
	for _, d := range w.Days {
		cards = append(cards, ForecastCard{
			Day:         d.Day,
			Icon:        d.Icon,
			Temperature: fmt.Sprintf("%d°C", d.Temperature),
			Condition:   string(d.Condition),
			Probability: number(d.Probability) + "%",
		})
	}
	return ForecastStrip{ContainerID: containerID, Cards: cards, Fallback: w.Fallback}
}

type PanelState string

const (
	PanelEmpty   PanelState = "empty"
	PanelLoading PanelState = "loading"
	PanelBanner  PanelState = "banner"
	PanelResult  PanelState = "result"
)

// HistoricalPanel is what the historical results area currently shows.
type HistoricalPanel struct {
	State  PanelState
	Banner *models.Banner
	Card   *HistoricalCard
}

// HistoricalCard is a successful lookup, formatted for display, with the
// raw values carried along for the export form.
type HistoricalCard struct {
	City        string
	Date        string
	Temperature string
	Humidity    string
	Pressure    string
	Wind        string
	Description string
	Result      models.HistoricalResult
	Share       export.SharePayload
}

func EmptyPanel() HistoricalPanel {
	return HistoricalPanel{State: PanelEmpty}
}

func LoadingPanel() HistoricalPanel {
	return HistoricalPanel{State: PanelLoading}
}

func BannerPanel(b models.Banner) HistoricalPanel {
	return HistoricalPanel{State: PanelBanner, Banner: &b}
}

func ResultPanel(city, date string, r models.HistoricalResult, share export.SharePayload) HistoricalPanel {
	return HistoricalPanel{
		State: PanelResult,
		Card: &HistoricalCard{
			City:        city,
			Date:        date,
			Temperature: number(r.Temperature) + "°C",
			Humidity:    number(r.Humidity) + "%",
			Pressure:    number(r.Pressure) + " hPa",
			Wind:        number(r.WindSpeed) + " m/s",
			Description: r.Description,
			Result:      r,
			Share:       share,
		},
	}
}

// FormData prefills the historical form and bounds its date picker.
type FormData struct {
	PageID  string
	City    string
	Date    string
	MinDate string
	MaxDate string
}

// PageData is the view model of the whole page.
type PageData struct {
	Title        string
	Form         FormData
	Panel        HistoricalPanel
	Current      CurrentCard
	Forecast     ForecastStrip
	Banners      []models.Banner
	OverlayDelay int64
	GeoMessages  map[int]string
	// Messages holds banner texts the page script shows on its own, by key.
	Messages map[string]string
}

// RefreshData swaps both cards out of band and tells the page when to clear the overlay.
type RefreshData struct {
	Current      CurrentCard
	Forecast     ForecastStrip
	Banners      []models.Banner
	OverlayDelay int64
}

func NewRefreshData(r forecast.Refreshed) RefreshData {
	return RefreshData{
		Current:      NewCurrentCard(r.Current),
		Forecast:     NewForecastStrip(r.Week, ForecastContainerID),
		Banners:      r.Banners(),
		OverlayDelay: r.Overlay.ClearAfterMillis(),
	}
}
