package services

import (
	"context"
	"log"
	"sync"
	"time"

	"prestige-backend/internal/booking"
	"prestige-backend/internal/catalog"
	"prestige-backend/internal/models"
)

// highlightDuration is how long a recommended car stays highlighted in the
// storefront before the clear signal fires.
const highlightDuration = 4 * time.Second

// SignalPublisher delivers UI signals to the presentation layer.
type SignalPublisher interface {
	Publish(ctx context.Context, sig models.UISignal)
}

// DispatchResult is what a dispatched action handed back to the caller:
// the updated booking for modify_booking, the resolved car for
// initiate_booking. Both nil for advisory actions.
type DispatchResult struct {
	Booking   *models.Booking
	CarToBook *models.Car
}

// Dispatcher interprets a validated assistant reply and performs exactly one
// of the five actions: mutating the booking store, signalling the
// presentation layer, or nothing. Failures inside a dispatch are no-ops; the
// reply text has already been shown to the user and no secondary error is
// surfaced.
type Dispatcher struct {
	fleet    *catalog.FleetStore
	bookings *booking.Store
	signals  SignalPublisher

	highlightTTL time.Duration

	mu           sync.Mutex
	highlightGen uint64
}

func NewDispatcher(fleet *catalog.FleetStore, bookings *booking.Store, signals SignalPublisher) *Dispatcher {
	return &Dispatcher{
		fleet:        fleet,
		bookings:     bookings,
		signals:      signals,
		highlightTTL: highlightDuration,
	}
}

func (d *Dispatcher) Apply(ctx context.Context, reply models.AssistantReply) DispatchResult {
	var result DispatchResult

	switch models.NormalizeAction(reply.Action) {
	case models.ActionRecommendCar:
		if reply.CarID == nil {
			return result
		}
		// Re-validate against the current fleet; the id may be stale.
		if _, err := d.fleet.Get(*reply.CarID); err != nil {
			return result
		}
		d.highlight(ctx, *reply.CarID)

	case models.ActionInitiateBooking:
		if reply.CarID == nil {
			return result
		}
		car, err := d.fleet.Get(*reply.CarID)
		if err != nil || car.Status != models.StatusAvailable {
			return result
		}
		// Opening the form is as far as this goes. Confirmation stays with
		// the user; the dispatcher never calls Confirm itself.
		d.signals.Publish(ctx, models.UISignal{
			Type:    models.SignalOpenBookingForm,
			Payload: models.OpenBookingFormPayload{Car: car},
		})
		result.CarToBook = &car

	case models.ActionModifyBooking:
		if reply.BookingDetails == nil || reply.BookingDetails.EndDate == "" {
			return result
		}
		b, err := d.bookings.ModifyEndDate(reply.BookingDetails.EndDate)
		if err != nil {
			log.Printf("dispatcher: modify_booking ignored: %v", err)
			return result
		}
		d.signals.Publish(ctx, models.UISignal{
			Type:    models.SignalBookingUpdated,
			Payload: b,
		})
		result.Booking = &b

	case models.ActionLocateCar, models.ActionAnswerQuestion:
		// Text alone conveys the answer; no state changes.
	}

	return result
}

// highlight publishes a transient highlight and schedules its clear. A fresh
// highlight supersedes any pending clear: last write wins, tracked by a
// generation counter rather than explicit timer cancellation.
func (d *Dispatcher) highlight(ctx context.Context, carID int) {
	d.mu.Lock()
	d.highlightGen++
	gen := d.highlightGen
	d.mu.Unlock()

	d.signals.Publish(ctx, models.UISignal{
		Type: models.SignalHighlightCar,
		Payload: models.HighlightPayload{
			CarID:      carID,
			DurationMs: int(d.highlightTTL / time.Millisecond),
		},
	})

	time.AfterFunc(d.highlightTTL, func() {
		d.mu.Lock()
		superseded := gen != d.highlightGen
		d.mu.Unlock()
		if superseded {
			return
		}
		d.signals.Publish(context.Background(), models.UISignal{
			Type:    models.SignalClearHighlight,
			Payload: models.ClearHighlightPayload{CarID: carID},
		})
	})
}
