// Package apperrors holds the error taxonomy shared by every component and the
// mapping from an error to the banner the page shows for it.
package apperrors

import (
	"errors"
	"fmt"

	"weather-dashboard/internal/models"
)

var (
	// ErrNetwork marks any failed outbound call. Timeouts match it too.
	ErrNetwork = errors.New("network error")
	// ErrTimeout marks an outbound call aborted by its deadline.
	ErrTimeout = errors.New("request timed out")
	// ErrPlatformUnsupported marks a missing client capability (geolocation, share).
	ErrPlatformUnsupported = errors.New("platform capability unsupported")
)

// ValidationError rejects user input before anything is dispatched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NetworkError wraps a failed outbound call.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

func Network(op string, err error) error {
	if err == nil {
		return nil
	}
	return &NetworkError{Op: op, Err: err}
}

// TimeoutError is a NetworkError whose cause is an expired deadline.
type TimeoutError struct {
	Op string
}

func (e *TimeoutError) Error() string {
	if e.Op == "" {
		return ErrTimeout.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, ErrTimeout)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout || target == ErrNetwork
}

func Timeout(op string) error {
	return &TimeoutError{Op: op}
}

// PlatformError reports a browser capability the page cannot use.
type PlatformError struct {
	Capability string
}

func (e *PlatformError) Error() string {
	return e.Capability + " is not supported by this browser."
}

func (e *PlatformError) Is(target error) bool { return target == ErrPlatformUnsupported }

func Unsupported(capability string) error {
	return &PlatformError{Capability: capability}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// BannerFor converts a component failure into the banner shown to the user.
func BannerFor(err error) models.Banner {
	var v *ValidationError
	switch {
	case err == nil:
		return models.NewBanner(models.BannerInfo, "")
	case errors.As(err, &v):
		return models.NewBanner(models.BannerWarning, v.Message)
	case errors.Is(err, ErrPlatformUnsupported):
		return models.NewBanner(models.BannerWarning, err.Error())
	default:
		return models.NewBanner(models.BannerDanger, "Error: "+err.Error())
	}
}

// Geolocation position error codes as reported by the browser.
const (
	GeoPermissionDenied    = 1
	GeoPositionUnavailable = 2
	GeoTimeout             = 3
)

// GeolocationMessage is the banner text for a geolocation failure code.
func GeolocationMessage(code int) string {
	msg := "Unable to retrieve your location. "
	switch code {
	case GeoPermissionDenied:
		msg += "Location access denied by user."
	case GeoPositionUnavailable:
		msg += "Location information is unavailable."
	case GeoTimeout:
		msg += "Location request timed out."
	}
	return msg
}
