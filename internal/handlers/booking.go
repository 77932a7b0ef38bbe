package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"prestige-backend/internal/models"
	"prestige-backend/internal/services"
)

type BookingHandler struct {
	rental *services.RentalService
}

func NewBookingHandler(rental *services.RentalService) *BookingHandler {
	return &BookingHandler{rental: rental}
}

func (h *BookingHandler) Current(w http.ResponseWriter, r *http.Request) {
	b, err := h.rental.Current()
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if fields := validateRange(req.StartDate, req.EndDate); fields != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	quote, err := h.rental.Quote(req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if fields := validateRange(req.StartDate, req.EndDate); fields != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	b, err := h.rental.Confirm(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *BookingHandler) ModifyEndDate(w http.ResponseWriter, r *http.Request) {
	var req models.ModifyBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.EndDate) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "end_date is required", r))
		return
	}

	b, err := h.rental.ModifyEndDate(r.Context(), req.EndDate)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.rental.Cancel(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking cancelled"})
}

func validateRange(startDate, endDate string) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(startDate) == "" {
		fields["start_date"] = "required"
	}
	if strings.TrimSpace(endDate) == "" {
		fields["end_date"] = "required"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
