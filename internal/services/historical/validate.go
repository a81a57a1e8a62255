package historical

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"weather-dashboard/internal/apperrors"
	"weather-dashboard/internal/models"
)

const (
	DefaultMaxAgeYears = 5

	// MinLiveCheckLength is how many characters the city field needs before live validation kicks in.
	MinLiveCheckLength = 3

	MsgMissingFields = "Please enter both city name and date"
	MsgInvalidCity   = "Please enter a valid city name"
	MsgFutureDate    = "Please select a date from the past"
)

var cityPattern = regexp.MustCompile(`^[a-zA-Z\s,.-]+$`)

// ValidCity reports whether s looks like a city name: letters, whitespace, commas, dots and hyphens.
func ValidCity(s string) bool {
	return cityPattern.MatchString(s)
}

// Validator checks a raw city+date pair before anything is dispatched.
type Validator struct {
	MaxAgeYears int
	Now         func() time.Time
}

func NewValidator(maxAgeYears int) *Validator {
	if maxAgeYears <= 0 {
		maxAgeYears = DefaultMaxAgeYears
	}
	return &Validator{MaxAgeYears: maxAgeYears, Now: time.Now}
}

// Today is the current local calendar day at midnight.
func (v *Validator) Today() time.Time {
	now := v.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// DateBounds returns the oldest and newest selectable dates, in DateLayout.
func (v *Validator) DateBounds() (oldest, newest string) {
	today := v.Today()
	return today.AddDate(-v.MaxAgeYears, 0, 0).Format(models.DateLayout),
		today.AddDate(0, 0, -1).Format(models.DateLayout)
}

func (v *Validator) MaxAgeMessage() string {
	return fmt.Sprintf("Please select a date within the last %d years", v.MaxAgeYears)
}

// Validate returns the first failing rule as a *apperrors.ValidationError.
func (v *Validator) Validate(city, date string) (models.HistoricalQuery, error) {
	city = strings.TrimSpace(city)
	date = strings.TrimSpace(date)

	if city == "" || date == "" {
		return models.HistoricalQuery{}, apperrors.NewValidation("city", MsgMissingFields)
	}

	if !ValidCity(city) {
		return models.HistoricalQuery{}, apperrors.NewValidation("city", MsgInvalidCity)
	}

	today := v.Today()
	day, err := time.ParseInLocation(models.DateLayout, date, today.Location())
	if err != nil || !day.Before(today) {
		return models.HistoricalQuery{}, apperrors.NewValidation("date", MsgFutureDate)
	}

	if day.Before(today.AddDate(-v.MaxAgeYears, 0, 0)) {
		return models.HistoricalQuery{}, apperrors.NewValidation("date", v.MaxAgeMessage())
	}

	return models.HistoricalQuery{City: city, Date: day}, nil
}
