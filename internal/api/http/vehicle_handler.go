package http

import (
	"net/http"
	"strconv"
	"time"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
}

func NewVehicleHandler(vehicleSvc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.vehicleSvc.CreateVehicle(r.Context(), &vehicle); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicleSvc.ListVehicles(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	var vehicle domain.Vehicle
	if err := decodeJSON(r, &vehicle); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	vehicle.ID = id
	if err := h.vehicleSvc.UpdateVehicle(r.Context(), &vehicle); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	if err := h.vehicleSvc.DeleteVehicle(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// Available lists vehicles free for the half-open interval
// [start, end), both passed as RFC 3339 query parameters.
func (h *VehicleHandler) Available(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid start parameter")
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid end parameter")
		return
	}
	if !start.Before(end) {
		respondError(w, http.StatusBadRequest, "start must be before end")
		return
	}

	vehicles, err := h.vehicleSvc.AvailableVehicles(r.Context(), start, end)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

type quoteResponse struct {
	Computable bool           `json:"computable"`
	Quote      *booking.Quote `json:"quote,omitempty"`
}

// Quote prices a duration selection for one vehicle. A selection the
// price list cannot serve yields computable=false, not an error.
func (h *VehicleHandler) Quote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	vehicleID, err := strconv.ParseInt(q.Get("vehicle_id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle_id parameter")
		return
	}
	start, err := time.Parse(time.RFC3339, q.Get("start"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid start parameter")
		return
	}
	days := 0
	if raw := q.Get("days"); raw != "" {
		if days, err = strconv.Atoi(raw); err != nil {
			respondError(w, http.StatusBadRequest, "invalid days parameter")
			return
		}
	}

	quote, ok, err := h.vehicleSvc.Quote(r.Context(), vehicleID, start, booking.Selector(q.Get("selector")), days)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	resp := quoteResponse{Computable: ok}
	if ok {
		resp.Quote = &quote
	}
	respondJSON(w, http.StatusOK, resp)
}
