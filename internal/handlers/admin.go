package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"prestige-backend/internal/booking"
	"prestige-backend/internal/catalog"
	"prestige-backend/internal/models"
	"prestige-backend/internal/services"
)

// AdminHandler backs the fleet-status dashboard. This demo has no accounts,
// so the admin surface is deliberately open.
type AdminHandler struct {
	fleet    *catalog.FleetStore
	bookings *booking.Store
	signals  services.SignalPublisher
}

func NewAdminHandler(fleet *catalog.FleetStore, bookings *booking.Store, signals services.SignalPublisher) *AdminHandler {
	return &AdminHandler{fleet: fleet, bookings: bookings, signals: signals}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	total, available, maintenance := h.fleet.Stats()
	_, hasBooking := h.bookings.Current()

	writeJSON(w, http.StatusOK, models.FleetStats{
		TotalCars:        total,
		Available:        available,
		InMaintenance:    maintenance,
		HasActiveBooking: hasBooking,
	})
}

func (h *AdminHandler) FleetMap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"width":  catalog.MapWidth,
		"height": catalog.MapHeight,
		"points": h.fleet.MapPoints(),
	})
}

func (h *AdminHandler) SetCarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid car ID", r))
		return
	}

	var req struct {
		Status models.CarStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if !models.ValidCarStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Status must be 'Available' or 'Maintenance Required'", r))
		return
	}

	car, err := h.fleet.SetStatus(id, req.Status)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.signals.Publish(r.Context(), models.UISignal{
		Type:    models.SignalFleetStatusChanged,
		Payload: car,
	})

	writeJSON(w, http.StatusOK, car)
}
