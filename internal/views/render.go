package views

import (
	"errors"
	"html/template"
	"io"
	"io/fs"
	"sync"

	"weather-dashboard/internal/models"
)

var (
	pageTmpl *template.Template
	loadMu   sync.RWMutex
)

// loadTemplatesFromFS loads templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	t, err := template.ParseFS(sub, "*.html", "partials/*.html")
	if err != nil {
		return err
	}

	loadMu.Lock()
	pageTmpl = t
	loadMu.Unlock()
	return nil
}

// LoadTemplates loads embedded templates. Call during startup before
// serving requests; if it returns an error, do not start the server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

var errNotLoaded = errors.New("templates not loaded: call views.LoadTemplates during startup")

func execute(w io.Writer, name string, data any) error {
	loadMu.RLock()
	t := pageTmpl
	loadMu.RUnlock()

	if t == nil {
		return errNotLoaded
	}
	return t.ExecuteTemplate(w, name, data)
}

func RenderIndex(w io.Writer, data *PageData) error {
	return execute(w, "index.html", data)
}

// RenderHistoricalPanel executes only the historical results partial.
func RenderHistoricalPanel(w io.Writer, data *HistoricalPanel) error {
	return execute(w, "historical_panel", data)
}

func RenderCurrent(w io.Writer, data *CurrentCard) error {
	return execute(w, "current_card", data)
}

// RenderForecast writes the seven day strip. A strip without a container is
// skipped silently.
func RenderForecast(w io.Writer, data *ForecastStrip) error {
	if data == nil || data.ContainerID == "" {
		return nil
	}
	return execute(w, "forecast_strip", data)
}

func RenderBanners(w io.Writer, banners []models.Banner) error {
	return execute(w, "banners", banners)
}

// RenderRefresh writes both cards as out-of-band swaps plus any banners.
func RenderRefresh(w io.Writer, data *RefreshData) error {
	return execute(w, "refresh", data)
}

// PanelRenderer commits historical panel views as HTML into w.
type PanelRenderer struct {
	w io.Writer
}

func NewPanelRenderer(w io.Writer) *PanelRenderer {
	return &PanelRenderer{w: w}
}

func (p *PanelRenderer) Commit(panel HistoricalPanel) error {
	return RenderHistoricalPanel(p.w, &panel)
}
