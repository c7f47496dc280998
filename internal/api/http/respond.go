package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/service"

	"github.com/gorilla/mux"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps service and wizard errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, booking.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrWrongState),
		errors.Is(err, booking.ErrSubmitted),
		errors.Is(err, service.ErrRequestAlreadyDecided):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, booking.ErrNoStartDate),
		errors.Is(err, booking.ErrInvalidDuration),
		errors.Is(err, booking.ErrVehicleUnavailable),
		errors.Is(err, service.ErrInvalidStatus):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// pathID extracts the numeric {id} route variable.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
