// Package requester drives the historical weather form: it validates the
// input, dispatches a single request and commits the resulting view to a panel.
package requester

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"weather-dashboard/internal/apperrors"
	"weather-dashboard/internal/export"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/historical"
	"weather-dashboard/internal/views"
	"weather-dashboard/pkg/logger"
)

// Panel receives every view the requester commits, in order.
type Panel interface {
	Commit(views.HistoricalPanel) error
}

// PanelFunc adapts a function to Panel.
type PanelFunc func(views.HistoricalPanel) error

func (f PanelFunc) Commit(p views.HistoricalPanel) error { return f(p) }

// Submission is one press of the submit button.
type Submission struct {
	// PageID scopes superseding: only submissions from the same page replace each other.
	PageID string
	City   string
	Date   string
	// Origin is the page's base URL for share links, used when no public URL is configured.
	Origin string
}

// Outcome reports what a submission ended up doing.
type Outcome struct {
	ID         string
	Generation uint64
	Query      models.HistoricalQuery
	Payload    models.HistoricalPayload
	Banner     *models.Banner
	Err        error
	// Stale is set when a newer submission for the same page started before
	// this one finished; its result was dropped.
	Stale bool
	// View is the last view committed to the panel.
	View views.HistoricalPanel
}

type pageState struct {
	latest   uint64
	inFlight int
}

type Requester struct {
	validator *historical.Validator
	fetcher   Fetcher
	shareBase string
	l         *logger.Logger

	gen   atomic.Uint64
	mu    sync.Mutex
	pages map[string]*pageState
}

func New(validator *historical.Validator, fetcher Fetcher, shareBase string, l *logger.Logger) *Requester {
	return &Requester{
		validator: validator,
		fetcher:   fetcher,
		shareBase: shareBase,
		l:         l,
		pages:     make(map[string]*pageState),
	}
}

func (r *Requester) begin(pageID string) uint64 {
	g := r.gen.Add(1)

	pageID = strings.Clone(pageID)

	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.pages[pageID]
	if !ok {
		st = &pageState{}
		r.pages[pageID] = st
	}
	st.latest = g
	st.inFlight++
	return g
}

// finish reports whether g is still the newest submission for the page.
func (r *Requester) finish(pageID string, g uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.pages[pageID]
	if !ok {
		// nothing newer could have registered under this page
		return true
	}
	current := st.latest == g
	st.inFlight--
	if st.inFlight == 0 {
		delete(r.pages, pageID)
	}
	return current
}

func (r *Requester) commit(panel Panel, out *Outcome, view views.HistoricalPanel) {
	out.View = view
	if err := panel.Commit(view); err != nil {
		r.l.Error(err, map[string]any{"submission": out.ID, "state": string(view.State)})
	}
}

// Submit validates s, then fetches and commits the result. A validation
// failure commits a warning banner and nothing is dispatched.
func (r *Requester) Submit(ctx context.Context, panel Panel, s Submission) Outcome {
	out := Outcome{ID: uuid.NewString()}

	q, err := r.validator.Validate(s.City, s.Date)
	if err != nil {
		banner := apperrors.BannerFor(err)
		out.Err = err
		out.Banner = &banner
		r.commit(panel, &out, views.BannerPanel(banner))
		return out
	}
	out.Query = q

	pageID := s.PageID
	if pageID == "" {
		pageID = out.ID
	}
	out.Generation = r.begin(pageID)

	r.commit(panel, &out, views.LoadingPanel())

	payload, err := r.fetcher.Fetch(ctx, q)

	if !r.finish(pageID, out.Generation) {
		r.l.Info("dropping superseded historical result", map[string]any{
			"submission": out.ID,
			"generation": out.Generation,
			"page":       pageID,
		})
		out.Stale = true
		out.Payload = payload
		out.Err = err
		return out
	}

	var view views.HistoricalPanel
	switch {
	case err != nil:
		banner := apperrors.BannerFor(err)
		out.Err = err
		out.Banner = &banner
		view = views.BannerPanel(banner)
	case payload.Failed():
		banner := models.NewBanner(models.BannerDanger, payload.Error)
		out.Banner = &banner
		view = views.BannerPanel(banner)
	default:
		city, date := q.City, q.DateString()
		base := r.shareBase
		if base == "" {
			base = s.Origin
		}
		share := export.NewSharePayload(city, date, export.ShareLink(base, city, date))
		view = views.ResultPanel(city, date, payload.HistoricalResult, share)
	}
	out.Payload = payload

	r.commit(panel, &out, view)
	return out
}
