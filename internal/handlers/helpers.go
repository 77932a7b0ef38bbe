package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"prestige-backend/internal/booking"
	"prestige-backend/internal/catalog"
	"prestige-backend/internal/models"
	"prestige-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// handleServiceError maps typed service errors and domain sentinels onto the
// API's status codes. User-correctable date errors surface as blocking 400s;
// everything unexpected collapses to a 500.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, booking.ErrBadDate):
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Dates must be in YYYY-MM-DD format", r))
		return
	case errors.Is(err, booking.ErrInvalidRange):
		writeJSON(w, http.StatusBadRequest, errorResp("INVALID_RANGE", "End date must not be before start date", r))
		return
	case errors.Is(err, booking.ErrNoActiveBooking):
		writeJSON(w, http.StatusNotFound, errorResp("NO_ACTIVE_BOOKING", "No active booking", r))
		return
	case errors.Is(err, catalog.ErrCarNotFound):
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Car not found", r))
		return
	}

	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", e.Fields, r))
	case *services.NotFoundError:
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", e.Message, r))
	case *services.ConflictError:
		writeJSON(w, http.StatusConflict, errorResp("CONFLICT", e.Message, r))
	case *services.RateLimitError:
		writeJSON(w, http.StatusTooManyRequests, errorResp("RATE_LIMITED", e.Message, r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
