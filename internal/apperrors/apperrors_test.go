package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"weather-dashboard/internal/models"
)

func TestTimeoutIsNetwork(t *testing.T) {
	err := fmt.Errorf("fetch: %w", Timeout("historical"))

	assert.True(t, errors.Is(err, ErrTimeout))
	assert.True(t, errors.Is(err, ErrNetwork))
	assert.Equal(t, "fetch: historical: request timed out", err.Error())
}

func TestNetworkUnwraps(t *testing.T) {
	err := pkgerrors.Wrap(Network("geocode", context.Canceled), "lookup")

	assert.True(t, errors.Is(err, ErrNetwork))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, ErrTimeout))
	assert.Nil(t, Network("noop", nil))
}

func TestBannerFor(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level models.BannerLevel
		msg   string
	}{
		{"validation", NewValidation("city", "Please enter a valid city name"), models.BannerWarning, "Please enter a valid city name"},
		{"wrapped validation", pkgerrors.Wrap(NewValidation("date", "Please select a date from the past"), "submit"), models.BannerWarning, "Please select a date from the past"},
		{"network", Network("", errors.New("connection refused")), models.BannerDanger, "Error: connection refused"},
		{"timeout", Timeout(""), models.BannerDanger, "Error: request timed out"},
		{"unsupported", fmt.Errorf("share: %w", ErrPlatformUnsupported), models.BannerWarning, "share: platform capability unsupported"},
		{"unsupported capability", Unsupported("Geolocation"), models.BannerWarning, "Geolocation is not supported by this browser."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BannerFor(tt.err)
			assert.Equal(t, tt.level, b.Level)
			assert.Equal(t, tt.msg, b.Message)
			assert.Equal(t, models.BannerTTL, b.TTL)
		})
	}
}

func TestUnsupported(t *testing.T) {
	err := Unsupported("Web Share")
	assert.ErrorIs(t, err, ErrPlatformUnsupported)
	assert.NotErrorIs(t, err, ErrNetwork)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewValidation("city", "x")))
	assert.False(t, IsValidation(errors.New("x")))
}

func TestGeolocationMessage(t *testing.T) {
	assert.Equal(t, "Unable to retrieve your location. Location access denied by user.", GeolocationMessage(GeoPermissionDenied))
	assert.Equal(t, "Unable to retrieve your location. Location information is unavailable.", GeolocationMessage(GeoPositionUnavailable))
	assert.Equal(t, "Unable to retrieve your location. Location request timed out.", GeolocationMessage(GeoTimeout))
	assert.Equal(t, "Unable to retrieve your location. ", GeolocationMessage(99))
}
