package http

import (
	"net/http"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/service"
	"fleetrent-backend/internal/storage"

	"github.com/gorilla/mux"
)

// WizardHandler exposes the rental creation wizard. Every endpoint is
// keyed by the session id issued at start; responses carry the wizard
// snapshot so the UI always renders the authoritative state.
type WizardHandler struct {
	rentalSvc service.RentalService
	files     storage.Store
}

func NewWizardHandler(rentalSvc service.RentalService, files storage.Store) *WizardHandler {
	return &WizardHandler{rentalSvc: rentalSvc, files: files}
}

type wizardStartResponse struct {
	SessionID string           `json:"session_id"`
	Snapshot  booking.Snapshot `json:"snapshot"`
}

func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, snap, err := h.rentalSvc.StartWizard(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, wizardStartResponse{SessionID: id, Snapshot: snap})
}

func (h *WizardHandler) State(w http.ResponseWriter, r *http.Request) {
	snap, err := h.rentalSvc.WizardState(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (h *WizardHandler) Dates(w http.ResponseWriter, r *http.Request) {
	var d booking.DateSelection
	if err := decodeJSON(r, &d); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	snap, err := h.rentalSvc.WizardDates(r.Context(), mux.Vars(r)["id"], d)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (h *WizardHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.rentalSvc.WizardVehicles(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

type chooseVehicleRequest struct {
	VehicleID int64 `json:"vehicle_id"`
}

func (h *WizardHandler) ChooseVehicle(w http.ResponseWriter, r *http.Request) {
	var req chooseVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	snap, err := h.rentalSvc.WizardChooseVehicle(r.Context(), mux.Vars(r)["id"], req.VehicleID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

type chooseCustomerRequest struct {
	CustomerID int64 `json:"customer_id"`
}

func (h *WizardHandler) ChooseCustomer(w http.ResponseWriter, r *http.Request) {
	var req chooseCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	snap, err := h.rentalSvc.WizardChooseCustomer(r.Context(), mux.Vars(r)["id"], req.CustomerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (h *WizardHandler) Signature(w http.ResponseWriter, r *http.Request) {
	party, key, ok := saveSignatureUpload(w, r, h.files)
	if !ok {
		return
	}
	snap, err := h.rentalSvc.WizardSignature(r.Context(), mux.Vars(r)["id"], party, key)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (h *WizardHandler) Draft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.rentalSvc.WizardDraft(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, draft)
}

func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.WizardSubmit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	snap, err := h.rentalSvc.WizardBack(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}
