package views

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"weather-dashboard/internal/export"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/forecast"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func mustLoad(t *testing.T) {
	t.Helper()
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates(): %v", err)
	}
}

func TestLoadTemplates_success(t *testing.T) {
	mustLoad(t)
	if pageTmpl == nil {
		t.Fatal("LoadTemplates() left pageTmpl nil")
	}
}

func TestLoadTemplates_failure_missing(t *testing.T) {
	err := loadTemplatesFromFS(fstest.MapFS{}, "templates")
	if err == nil {
		t.Fatal("loadTemplatesFromFS(empty) = nil; want error")
	}
}

func TestLoadTemplates_failure_parse(t *testing.T) {
	badFS := fstest.MapFS{
		"templates/index.html":        {Data: []byte("{{ .")},
		"templates/partials/any.html": {Data: []byte("ok")},
	}
	if err := loadTemplatesFromFS(badFS, "templates"); err == nil {
		t.Fatal("loadTemplatesFromFS(badFS) = nil; want error")
	}
	mustLoad(t)
}

func TestRender_notLoaded(t *testing.T) {
	loadMu.Lock()
	prev := pageTmpl
	pageTmpl = nil
	loadMu.Unlock()
	t.Cleanup(func() {
		loadMu.Lock()
		pageTmpl = prev
		loadMu.Unlock()
	})

	var buf bytes.Buffer
	err := RenderIndex(&buf, &PageData{})
	if err == nil || !strings.Contains(err.Error(), "not loaded") {
		t.Fatalf("RenderIndex() = %v; want not loaded error", err)
	}
}

func sampleCurrent() forecast.Current {
	return forecast.Current{Sample: models.WeatherSample{
		Condition: models.Sunny, Temperature: 27, Humidity: 55, WindSpeed: 9, Probability: 72.5,
		Icon: "☀️", Description: "Clear and bright", Date: "2025-07-25", Time: "14:30",
	}}
}

func TestNewCurrentCard(t *testing.T) {
	card := NewCurrentCard(sampleCurrent())

	if card.Temperature != "27°C" || card.Humidity != "55%" || card.Wind != "9 km/h" {
		t.Errorf("unexpected formatting: %+v", card)
	}
	if card.Probability != "72.5%" {
		t.Errorf("Probability = %q", card.Probability)
	}
	if card.Timestamp != "2025-07-25 at 14:30" {
		t.Errorf("Timestamp = %q", card.Timestamp)
	}

	fb := NewCurrentCard(forecast.Current{Sample: forecast.FallbackCurrent(time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC)), Fallback: true})
	if fb.Timestamp != "2025-07-25" || fb.Wind != "12 km/h" || fb.Probability != "75%" || !fb.Fallback {
		t.Errorf("unexpected fallback card: %+v", fb)
	}
}

func TestRenderForecast(t *testing.T) {
	mustLoad(t)

	strip := NewForecastStrip(forecast.Week{Days: forecast.FallbackWeek()}, ForecastContainerID)
	var buf bytes.Buffer
	if err := RenderForecast(&buf, &strip); err != nil {
		t.Fatalf("RenderForecast() = %v", err)
	}
	out := buf.String()
	if strings.Count(out, `class="forecast-card"`) != 7 {
		t.Errorf("want 7 cards; got %q", out)
	}
	for _, want := range []string{`id="forecastContainer"`, "Today", "Tuesday", "22°C", "85%", "rainy"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderForecast_noContainer(t *testing.T) {
	strip := NewForecastStrip(forecast.Week{Days: forecast.FallbackWeek()}, "")

	// a failing writer proves nothing is written
	if err := RenderForecast(failingWriter{}, &strip); err != nil {
		t.Fatalf("RenderForecast(no container) = %v; want nil", err)
	}
	if err := RenderForecast(failingWriter{}, nil); err != nil {
		t.Fatalf("RenderForecast(nil) = %v; want nil", err)
	}
}

func TestRenderHistoricalPanel_result(t *testing.T) {
	mustLoad(t)

	r := models.HistoricalResult{Temperature: 10, Humidity: 80, Pressure: 1012, WindSpeed: 3, Description: "clear sky"}
	panel := ResultPanel("London", "2023-01-01", r, export.NewSharePayload("London", "2023-01-01", "http://x.test/?city=London"))

	var buf bytes.Buffer
	if err := NewPanelRenderer(&buf).Commit(panel); err != nil {
		t.Fatalf("Commit() = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"10°C", "80%", "1012 hPa", "3 m/s", "clear sky", "/historical/export", "Weather Data for London"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q; got %q", want, out)
		}
	}
}

func TestRenderHistoricalPanel_states(t *testing.T) {
	mustLoad(t)

	tests := []struct {
		name  string
		panel HistoricalPanel
		want  string
	}{
		{"loading", LoadingPanel(), "Fetching historical weather data"},
		{"banner", BannerPanel(models.NewBanner(models.BannerDanger, "City not found in geocoding service")), "alert-danger"},
		{"empty", EmptyPanel(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := RenderHistoricalPanel(&buf, &tt.panel); err != nil {
				t.Fatalf("RenderHistoricalPanel() = %v", err)
			}
			if tt.want == "" {
				if strings.TrimSpace(buf.String()) != "" {
					t.Errorf("want empty output; got %q", buf.String())
				}
				return
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output missing %q; got %q", tt.want, buf.String())
			}
		})
	}
}

func TestRenderHistoricalPanel_escapes(t *testing.T) {
	mustLoad(t)

	panel := BannerPanel(models.NewBanner(models.BannerDanger, "<script>alert(1)</script>"))
	var buf bytes.Buffer
	if err := RenderHistoricalPanel(&buf, &panel); err != nil {
		t.Fatalf("RenderHistoricalPanel() = %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("banner message was not escaped: %q", buf.String())
	}
}

func TestRenderIndex(t *testing.T) {
	mustLoad(t)

	data := &PageData{
		Title:       "Weather Dashboard",
		Form:        FormData{PageID: "abc", MinDate: "2020-07-25", MaxDate: "2025-07-24"},
		Panel:       EmptyPanel(),
		Current:     NewCurrentCard(sampleCurrent()),
		Forecast:    NewForecastStrip(forecast.Week{Days: forecast.FallbackWeek()}, ForecastContainerID),
		Banners:     []models.Banner{models.NewBanner(models.BannerWarning, "heads up")},
		GeoMessages: map[int]string{1: "denied"},
		Messages:    map[string]string{"copied": "Link copied to clipboard!"},
	}

	var buf bytes.Buffer
	if err := RenderIndex(&buf, data); err != nil {
		t.Fatalf("RenderIndex() = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`hx-sync="this:replace"`,
		`name="page_id" value="abc"`,
		`<span data-key="copied">Link copied to clipboard!</span>`,
		`max="2025-07-24"`,
		"Clear and bright",
		`id="forecastContainer"`,
		"heads up",
		`data-ttl="5000"`,
		`id="loadingOverlay"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderRefresh(t *testing.T) {
	mustLoad(t)

	banner := models.NewBanner(models.BannerDanger, forecast.MsgForecastFailed)
	data := NewRefreshData(forecast.Refreshed{
		Current: sampleCurrent(),
		Week:    forecast.Week{Days: forecast.FallbackWeek(), Fallback: true, Banner: &banner},
		Overlay: forecast.Overlay{ClearAfter: time.Second},
	})

	var buf bytes.Buffer
	if err := RenderRefresh(&buf, &data); err != nil {
		t.Fatalf("RenderRefresh() = %v", err)
	}
	out := buf.String()
	for _, want := range []string{`id="currentSlot" hx-swap-oob="true"`, `id="forecastSlot"`, forecast.MsgForecastFailed, `data-clear-after="1000"`, "loading-overlay show"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q; got %q", want, out)
		}
	}
}

func TestRender_writeError(t *testing.T) {
	mustLoad(t)

	card := NewCurrentCard(sampleCurrent())
	if err := RenderCurrent(failingWriter{}, &card); err == nil {
		t.Fatal("RenderCurrent(failingWriter) = nil; want error")
	}
}

func TestStaticFS(t *testing.T) {
	for _, name := range []string{"app.js", "style.css"} {
		if _, err := fs.Stat(StaticFS(), name); err != nil {
			t.Errorf("static asset %s missing: %v", name, err)
		}
	}
}
