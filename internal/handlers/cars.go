package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"prestige-backend/internal/catalog"
)

type CarsHandler struct {
	fleet *catalog.FleetStore
}

func NewCarsHandler(fleet *catalog.FleetStore) *CarsHandler {
	return &CarsHandler{fleet: fleet}
}

func (h *CarsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"cars": h.fleet.Cars()})
}

func (h *CarsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid car ID", r))
		return
	}

	car, err := h.fleet.Get(id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, car)
}
