package services

import (
	"context"
	"errors"
	"fmt"

	"prestige-backend/internal/booking"
	"prestige-backend/internal/catalog"
	"prestige-backend/internal/models"
)

// RentalService is the explicit-confirmation booking path: the storefront's
// booking form posts here after the user confirms dates.
type RentalService struct {
	fleet    *catalog.FleetStore
	bookings *booking.Store
	signals  SignalPublisher
}

func NewRentalService(fleet *catalog.FleetStore, bookings *booking.Store, signals SignalPublisher) *RentalService {
	return &RentalService{fleet: fleet, bookings: bookings, signals: signals}
}

// Quote prices a date range for a car without committing anything.
func (s *RentalService) Quote(req models.QuoteRequest) (models.QuoteResponse, error) {
	car, err := s.fleet.Get(req.CarID)
	if err != nil {
		return models.QuoteResponse{}, &NotFoundError{Message: "Car not found"}
	}

	days, total, err := booking.ComputeCostStrings(req.StartDate, req.EndDate, car.PricePerDay)
	if err != nil {
		return models.QuoteResponse{}, err
	}

	return models.QuoteResponse{CarID: car.ID, Days: days, TotalCost: total}, nil
}

// Confirm books a car over an inclusive date range, replacing any existing
// booking. Cars under maintenance cannot be booked.
func (s *RentalService) Confirm(ctx context.Context, req models.ConfirmBookingRequest) (models.Booking, error) {
	car, err := s.fleet.Get(req.CarID)
	if err != nil {
		return models.Booking{}, &NotFoundError{Message: "Car not found"}
	}
	if car.Status != models.StatusAvailable {
		return models.Booking{}, &ConflictError{Message: "This car is currently unavailable due to maintenance"}
	}

	b, err := s.bookings.Confirm(car, req.StartDate, req.EndDate)
	if err != nil {
		return models.Booking{}, err
	}

	s.signals.Publish(ctx, models.UISignal{Type: models.SignalBookingUpdated, Payload: b})
	s.signals.Publish(ctx, models.UISignal{
		Type: models.SignalAlert,
		Payload: models.AlertPayload{
			Text: fmt.Sprintf("Booking confirmed for %s from %s to %s!", car.Name, req.StartDate, req.EndDate),
		},
	})

	return b, nil
}

// ModifyEndDate extends or shortens the active booking, recomputing the cost
// with the original start date and the originally booked car's rate.
func (s *RentalService) ModifyEndDate(ctx context.Context, newEndDate string) (models.Booking, error) {
	b, err := s.bookings.ModifyEndDate(newEndDate)
	if err != nil {
		if errors.Is(err, booking.ErrNoActiveBooking) {
			return models.Booking{}, &NotFoundError{Message: "No active booking"}
		}
		return models.Booking{}, err
	}

	s.signals.Publish(ctx, models.UISignal{Type: models.SignalBookingUpdated, Payload: b})
	return b, nil
}

// Current returns the active booking.
func (s *RentalService) Current() (models.Booking, error) {
	b, ok := s.bookings.Current()
	if !ok {
		return models.Booking{}, &NotFoundError{Message: "No active booking"}
	}
	return b, nil
}

// Cancel drops the active booking. Idempotent.
func (s *RentalService) Cancel(ctx context.Context) {
	s.bookings.Clear()
	s.signals.Publish(ctx, models.UISignal{Type: models.SignalBookingUpdated, Payload: nil})
}
