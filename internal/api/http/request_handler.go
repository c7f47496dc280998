package http

import (
	"net/http"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/service"
	"fleetrent-backend/internal/storage"
)

type RequestHandler struct {
	requestSvc service.RequestService
	files      storage.Store
}

func NewRequestHandler(requestSvc service.RequestService, files storage.Store) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc, files: files}
}

// SubmitPublic is the unauthenticated intake endpoint behind the public
// web form. It accepts a multipart form with the contact fields, a
// consent checkbox, and an optional driver's license scan.
func (h *RequestHandler) SubmitPublic(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := &domain.RentalRequest{
		FirstName:            r.FormValue("first_name"),
		LastName:             r.FormValue("last_name"),
		Email:                r.FormValue("email"),
		Phone:                r.FormValue("phone"),
		IDCardNumber:         r.FormValue("id_card_number"),
		DriversLicenseNumber: r.FormValue("drivers_license_number"),
	}
	if r.FormValue("consent") == "true" {
		req.ConsentOn = time.Now().UTC()
	}

	if file, header, err := r.FormFile("drivers_license_image"); err == nil {
		defer file.Close()
		key, err := h.files.Save(r.Context(), "licenses", header.Filename, file)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		req.DriversLicenseImage = &key
	}

	if err := h.requestSvc.SubmitRequest(r.Context(), req); err != nil {
		if req.DriversLicenseImage != nil {
			if derr := h.files.Delete(r.Context(), *req.DriversLicenseImage); derr != nil {
				logger.Error("Failed to delete license image of rejected intake", "key", *req.DriversLicenseImage, "error", derr)
			}
		}
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, req)
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestSvc.ListRequests(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	req, err := h.requestSvc.GetRequest(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	customer, err := h.requestSvc.ApproveRequest(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	if err := h.requestSvc.RejectRequest(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	if err := h.requestSvc.DeleteRequest(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
