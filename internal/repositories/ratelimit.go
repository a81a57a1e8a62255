package repositories

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitedClient holds outbound requests until the upstream's budget allows them.
type RateLimitedClient struct {
	client  HTTPClient
	limiter *rate.Limiter
}

// NewRateLimitedClient wraps client with a token bucket of rps requests per second.
// A non-positive rps returns client unchanged.
func NewRateLimitedClient(client HTTPClient, rps float64, burst int) HTTPClient {
	if rps <= 0 {
		return client
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (c *RateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	// Wait for rate limiter permission or context cancellation
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return c.client.Do(req)
}
