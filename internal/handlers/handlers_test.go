package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"prestige-backend/internal/booking"
	"prestige-backend/internal/catalog"
	"prestige-backend/internal/models"
	"prestige-backend/internal/services"
)

type nopSignals struct{}

func (nopSignals) Publish(ctx context.Context, sig models.UISignal) {}

func testRouter() (http.Handler, *catalog.FleetStore, *booking.Store) {
	fleet := catalog.NewFleetStore(catalog.SeedFleet())
	bookings := booking.NewStore()
	rental := services.NewRentalService(fleet, bookings, nopSignals{})

	carsHandler := NewCarsHandler(fleet)
	bookingHandler := NewBookingHandler(rental)
	adminHandler := NewAdminHandler(fleet, bookings, nopSignals{})

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/cars", carsHandler.List)
		r.Get("/cars/{id}", carsHandler.Get)
		r.Get("/booking", bookingHandler.Current)
		r.Post("/booking", bookingHandler.Confirm)
		r.Delete("/booking", bookingHandler.Cancel)
		r.Post("/booking/quote", bookingHandler.Quote)
		r.Put("/booking/end-date", bookingHandler.ModifyEndDate)
		r.Get("/admin/stats", adminHandler.Stats)
		r.Get("/admin/fleet-map", adminHandler.FleetMap)
		r.Put("/admin/cars/{id}/status", adminHandler.SetCarStatus)
	})
	return r, fleet, bookings
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp.Error.Code
}

// ─── Catalog ───

func TestListCars(t *testing.T) {
	r, _, _ := testRouter()

	rr := doJSON(t, r, http.MethodGet, "/api/v1/cars", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Cars []models.Car `json:"cars"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Cars) == 0 {
		t.Error("expected a non-empty fleet")
	}
}

func TestGetCar_Unknown(t *testing.T) {
	r, _, _ := testRouter()

	rr := doJSON(t, r, http.MethodGet, "/api/v1/cars/999", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if code := errorCode(t, rr); code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %s", code)
	}
}

// ─── Booking ───

func TestConfirmBooking(t *testing.T) {
	r, fleet, _ := testRouter()
	car, _ := fleet.Get(1)

	rr := doJSON(t, r, http.MethodPost, "/api/v1/booking", models.ConfirmBookingRequest{
		CarID: 1, StartDate: "2024-01-01", EndDate: "2024-01-03",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var b models.Booking
	if err := json.NewDecoder(rr.Body).Decode(&b); err != nil {
		t.Fatalf("failed to decode booking: %v", err)
	}
	if b.Days != 3 || b.TotalCost != 3*car.PricePerDay {
		t.Errorf("expected 3 days at %v, got %d at %v", 3*car.PricePerDay, b.Days, b.TotalCost)
	}
}

func TestConfirmBooking_InvalidRange(t *testing.T) {
	r, _, bookings := testRouter()

	rr := doJSON(t, r, http.MethodPost, "/api/v1/booking", models.ConfirmBookingRequest{
		CarID: 1, StartDate: "2024-01-05", EndDate: "2024-01-04",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if code := errorCode(t, rr); code != "INVALID_RANGE" {
		t.Errorf("expected INVALID_RANGE, got %s", code)
	}
	if _, ok := bookings.Current(); ok {
		t.Error("rejected confirm must not store a booking")
	}
}

func TestConfirmBooking_MalformedDate(t *testing.T) {
	r, _, bookings := testRouter()

	rr := doJSON(t, r, http.MethodPost, "/api/v1/booking", models.ConfirmBookingRequest{
		CarID: 1, StartDate: "01/05/2024", EndDate: "01/07/2024",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
	if code := errorCode(t, rr); code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %s", code)
	}
	if _, ok := bookings.Current(); ok {
		t.Error("rejected confirm must not store a booking")
	}
}

func TestConfirmBooking_MaintenanceCar(t *testing.T) {
	r, fleet, _ := testRouter()
	fleet.SetStatus(1, models.StatusMaintenance)

	rr := doJSON(t, r, http.MethodPost, "/api/v1/booking", models.ConfirmBookingRequest{
		CarID: 1, StartDate: "2024-01-01", EndDate: "2024-01-02",
	})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
}

func TestCurrentBooking_NoneActive(t *testing.T) {
	r, _, _ := testRouter()

	rr := doJSON(t, r, http.MethodGet, "/api/v1/booking", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestModifyEndDate_FullFlow(t *testing.T) {
	r, fleet, _ := testRouter()
	car, _ := fleet.Get(2)

	doJSON(t, r, http.MethodPost, "/api/v1/booking", models.ConfirmBookingRequest{
		CarID: 2, StartDate: "2024-03-01", EndDate: "2024-03-03",
	})

	rr := doJSON(t, r, http.MethodPut, "/api/v1/booking/end-date", models.ModifyBookingRequest{
		EndDate: "2024-03-05",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var b models.Booking
	json.NewDecoder(rr.Body).Decode(&b)
	if b.StartDate != "2024-03-01" || b.Days != 5 || b.TotalCost != 5*car.PricePerDay {
		t.Errorf("modification must keep the original start and rate: %+v", b)
	}
}

func TestModifyEndDate_NoActiveBooking(t *testing.T) {
	r, _, _ := testRouter()

	rr := doJSON(t, r, http.MethodPut, "/api/v1/booking/end-date", models.ModifyBookingRequest{
		EndDate: "2024-03-05",
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestModifyEndDate_MalformedDate(t *testing.T) {
	r, _, bookings := testRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/booking", models.ConfirmBookingRequest{
		CarID: 1, StartDate: "2024-01-01", EndDate: "2024-01-03",
	})

	rr := doJSON(t, r, http.MethodPut, "/api/v1/booking/end-date", models.ModifyBookingRequest{
		EndDate: "next friday",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
	if code := errorCode(t, rr); code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %s", code)
	}

	got, _ := bookings.Current()
	if got.EndDate != "2024-01-03" {
		t.Error("rejected modify must not touch the stored booking")
	}
}

func TestQuote_MalformedDate(t *testing.T) {
	r, _, _ := testRouter()

	rr := doJSON(t, r, http.MethodPost, "/api/v1/booking/quote", models.QuoteRequest{
		CarID: 1, StartDate: "2024-01-01", EndDate: "soon",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
	if code := errorCode(t, rr); code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %s", code)
	}
}

func TestQuote_DoesNotCommit(t *testing.T) {
	r, _, bookings := testRouter()

	rr := doJSON(t, r, http.MethodPost, "/api/v1/booking/quote", models.QuoteRequest{
		CarID: 1, StartDate: "2024-01-01", EndDate: "2024-01-01",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var q models.QuoteResponse
	json.NewDecoder(rr.Body).Decode(&q)
	if q.Days != 1 {
		t.Errorf("same-day quote must be one day, got %d", q.Days)
	}
	if _, ok := bookings.Current(); ok {
		t.Error("a quote must not create a booking")
	}
}

func TestCancelBooking(t *testing.T) {
	r, _, bookings := testRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/booking", models.ConfirmBookingRequest{
		CarID: 1, StartDate: "2024-01-01", EndDate: "2024-01-02",
	})
	rr := doJSON(t, r, http.MethodDelete, "/api/v1/booking", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if _, ok := bookings.Current(); ok {
		t.Error("expected the booking to be cleared")
	}
}

// ─── Admin ───

func TestAdminSetCarStatus(t *testing.T) {
	r, fleet, _ := testRouter()

	rr := doJSON(t, r, http.MethodPut, "/api/v1/admin/cars/1/status", map[string]string{
		"status": string(models.StatusMaintenance),
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	car, _ := fleet.Get(1)
	if car.Status != models.StatusMaintenance {
		t.Error("status change was not applied")
	}
}

func TestAdminSetCarStatus_UnknownID(t *testing.T) {
	r, _, _ := testRouter()

	rr := doJSON(t, r, http.MethodPut, "/api/v1/admin/cars/999/status", map[string]string{
		"status": string(models.StatusAvailable),
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestAdminSetCarStatus_InvalidStatus(t *testing.T) {
	r, fleet, _ := testRouter()

	rr := doJSON(t, r, http.MethodPut, "/api/v1/admin/cars/1/status", map[string]string{
		"status": "Exploded",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	car, _ := fleet.Get(1)
	if car.Status != models.StatusAvailable {
		t.Error("rejected status must not be applied")
	}
}

func TestAdminStats(t *testing.T) {
	r, fleet, _ := testRouter()
	fleet.SetStatus(1, models.StatusMaintenance)

	rr := doJSON(t, r, http.MethodGet, "/api/v1/admin/stats", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var stats models.FleetStats
	json.NewDecoder(rr.Body).Decode(&stats)
	if stats.TotalCars != stats.Available+stats.InMaintenance {
		t.Errorf("totals do not add up: %+v", stats)
	}
	if stats.InMaintenance < 1 {
		t.Errorf("expected at least one car in maintenance, got %d", stats.InMaintenance)
	}
	if stats.HasActiveBooking {
		t.Error("no booking was made")
	}
}

func TestAdminFleetMap(t *testing.T) {
	r, fleet, _ := testRouter()

	rr := doJSON(t, r, http.MethodGet, "/api/v1/admin/fleet-map", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Width  int               `json:"width"`
		Height int               `json:"height"`
		Points []models.MapPoint `json:"points"`
	}
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Width != catalog.MapWidth || resp.Height != catalog.MapHeight {
		t.Errorf("unexpected canvas %dx%d", resp.Width, resp.Height)
	}
	if len(resp.Points) != len(fleet.Cars()) {
		t.Errorf("expected %d points, got %d", len(fleet.Cars()), len(resp.Points))
	}
}

// ─── Chat validation ───

func TestChatSendMessage_EmptyMessage(t *testing.T) {
	h := NewChatHandler(nil) // validation rejects before the service is touched

	rr := doJSON(t, http.HandlerFunc(h.SendMessage), http.MethodPost, "/api/v1/chat/message", models.ChatRequest{Message: "   "})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if code := errorCode(t, rr); code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %s", code)
	}
}
