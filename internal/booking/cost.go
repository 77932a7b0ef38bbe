package booking

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date wire format used across the API and the
// assistant schema.
const DateLayout = "2006-01-02"

var (
	// ErrBadDate means a date string is not a valid YYYY-MM-DD calendar date.
	ErrBadDate = errors.New("dates must use YYYY-MM-DD")

	// ErrInvalidRange means the end date precedes the start date.
	ErrInvalidRange = errors.New("end date must not be before start date")

	// ErrNoActiveBooking means a modification was attempted with nothing to modify.
	ErrNoActiveBooking = errors.New("no active booking")
)

// ParseDate parses a YYYY-MM-DD calendar date. Rental dates carry no
// time-of-day component. Anything else wraps ErrBadDate so handlers can
// surface it as user input, not a server fault.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, ErrBadDate)
	}
	return t, nil
}

// RentalDays returns the day count for a rental, inclusive of both endpoints:
// a same-day rental is one day. Returns ErrInvalidRange when end < start.
func RentalDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// ComputeCost derives the day count and total cost for a date range at the
// given day rate. Pure; callers must recompute whenever dates or the car's
// rate change rather than caching the result.
func ComputeCost(start, end time.Time, pricePerDay float64) (days int, total float64, err error) {
	days, err = RentalDays(start, end)
	if err != nil {
		return 0, 0, err
	}
	return days, float64(days) * pricePerDay, nil
}

// ComputeCostStrings is ComputeCost over wire-format dates.
func ComputeCostStrings(startDate, endDate string, pricePerDay float64) (int, float64, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, 0, err
	}
	return ComputeCost(start, end, pricePerDay)
}
