package booking

import (
	"sync"

	"github.com/google/uuid"

	"prestige-backend/internal/models"
)

// Store holds the zero-or-one active booking. The storefront is a
// single-booking demo: a new confirmation replaces any prior booking
// unconditionally and no history is kept. The mutex makes the store safe if
// multiple chat sessions ever race it.
type Store struct {
	mu      sync.Mutex
	current *models.Booking
}

func NewStore() *Store {
	return &Store{}
}

// Confirm validates the range, prices the rental off the car's day rate and
// replaces the current booking wholesale. The car is snapshotted into the
// booking; later fleet changes do not affect it.
func (s *Store) Confirm(car models.Car, startDate, endDate string) (models.Booking, error) {
	days, total, err := ComputeCostStrings(startDate, endDate, car.PricePerDay)
	if err != nil {
		return models.Booking{}, err
	}

	b := models.Booking{
		ID:        "booking-" + uuid.NewString(),
		Car:       car,
		StartDate: startDate,
		EndDate:   endDate,
		Days:      days,
		TotalCost: total,
	}

	s.mu.Lock()
	s.current = &b
	s.mu.Unlock()

	return b, nil
}

// ModifyEndDate moves the end date of the active booking, recomputing the
// cost from the original start date and the originally booked car's rate.
// Returns ErrNoActiveBooking when the store is empty and ErrInvalidRange when
// the new end precedes the start; in both cases state is left untouched.
func (s *Store) ModifyEndDate(newEndDate string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.Booking{}, ErrNoActiveBooking
	}

	days, total, err := ComputeCostStrings(s.current.StartDate, newEndDate, s.current.Car.PricePerDay)
	if err != nil {
		return models.Booking{}, err
	}

	updated := *s.current
	updated.EndDate = newEndDate
	updated.Days = days
	updated.TotalCost = total
	s.current = &updated

	return updated, nil
}

// Current returns a copy of the active booking, or false if there is none.
func (s *Store) Current() (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.Booking{}, false
	}
	return *s.current, true
}

// Clear drops the active booking. Used by the UI cancel path.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}
