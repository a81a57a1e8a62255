package requester

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-dashboard/internal/apperrors"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/historical"
	"weather-dashboard/internal/timer"
	"weather-dashboard/pkg/logger"
)

// Fetcher dispatches one validated historical query.
type Fetcher interface {
	Fetch(ctx context.Context, q models.HistoricalQuery) (models.HistoricalPayload, error)
}

// HTTPFetcher posts the form to a remote /historical endpoint.
type HTTPFetcher struct {
	endpoint   string
	httpClient repositories.HTTPClient
	timeout    time.Duration
	l          *logger.Logger
}

func NewHTTPFetcher(backendURL string, httpClient repositories.HTTPClient, timeout time.Duration, l *logger.Logger) *HTTPFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPFetcher{
		endpoint:   strings.TrimRight(backendURL, "/") + "/historical",
		httpClient: httpClient,
		timeout:    timeout,
		l:          l,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, q models.HistoricalQuery) (models.HistoricalPayload, error) {
	return timer.Call(ctx, f.timeout, "historical request", func(ctx context.Context) (models.HistoricalPayload, error) {
		return f.post(ctx, q)
	})
}

func (f *HTTPFetcher) post(ctx context.Context, q models.HistoricalQuery) (models.HistoricalPayload, error) {
	var payload models.HistoricalPayload

	form := url.Values{}
	form.Set("city", q.City)
	form.Set("date", q.DateString())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return payload, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	f.l.Debug("posting historical request", map[string]any{"endpoint": f.endpoint, "city": q.City})

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return payload, apperrors.Network("historical request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return payload, apperrors.Network("historical request", fmt.Errorf("failed to read response body: %w", err))
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return payload, fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	return payload, nil
}

// ServiceFetcher answers from the in-process historical service.
type ServiceFetcher struct {
	svc *historical.Service
}

func NewServiceFetcher(svc *historical.Service) *ServiceFetcher {
	return &ServiceFetcher{svc: svc}
}

func (f *ServiceFetcher) Fetch(ctx context.Context, q models.HistoricalQuery) (models.HistoricalPayload, error) {
	return f.svc.LookupQuery(ctx, q), nil
}
