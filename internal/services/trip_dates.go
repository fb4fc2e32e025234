package services

import (
	"fmt"
	"strings"
	"time"

	"ait/pkg/utils"
)

const (
	msgInvalidDateFormat = "Invalid date format."
	msgEndBeforeStart    = "End date must be after start date."

	// DefaultMaxTripDays bounds the itinerary, the fallback and the PDF a single request can ask for.
	DefaultMaxTripDays = 30
)

// DateRange is a validated, inclusive trip window.
type DateRange struct {
	Start     time.Time
	End       time.Time
	TotalDays int
}

// Day returns the calendar date of the n-th trip day, counting from 0.
func (r DateRange) Day(n int) time.Time {
	return r.Start.AddDate(0, 0, n)
}

// ValidateDateRange parses two YYYY-MM-DD strings and rejects malformed or inverted ranges.
// Every failure is a *utils.ValidationError.
func ValidateDateRange(start, end string) (DateRange, error) {
	s, err := utils.ParseDate(strings.TrimSpace(start))
	if err != nil {
		return DateRange{}, utils.NewValidationError("start_date", msgInvalidDateFormat)
	}
	e, err := utils.ParseDate(strings.TrimSpace(end))
	if err != nil {
		return DateRange{}, utils.NewValidationError("end_date", msgInvalidDateFormat)
	}
	if e.Before(s) {
		return DateRange{}, utils.NewValidationError("end_date", msgEndBeforeStart)
	}

	return DateRange{
		Start:     s,
		End:       e,
		TotalDays: utils.DaysInclusive(s, e),
	}, nil
}

// ValidateTripLength rejects ranges longer than maxDays. A non-positive maxDays disables the check.
func ValidateTripLength(r DateRange, maxDays int) error {
	if maxDays > 0 && r.TotalDays > maxDays {
		return utils.NewValidationError("end_date", fmt.Sprintf("Trips can be at most %d days long.", maxDays))
	}
	return nil
}
