package http

import (
	"net/http"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/service"
	"fleetrent-backend/internal/storage"
)

type RentalHandler struct {
	rentalSvc service.RentalService
	files     storage.Store
}

func NewRentalHandler(rentalSvc service.RentalService, files storage.Store) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, files: files}
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListRentals(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}
	rental, err := h.rentalSvc.GetRental(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}
	if err := h.rentalSvc.DeleteRental(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type statusRequest struct {
	Status domain.RentalStatus `json:"status"`
}

func (h *RentalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rental, err := h.rentalSvc.UpdateRentalStatus(r.Context(), id, req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

// AttachSignature accepts a multipart form with a "party" field and an
// "image" file, stores the image, and records the key on the rental.
func (h *RentalHandler) AttachSignature(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	party, key, ok := saveSignatureUpload(w, r, h.files)
	if !ok {
		return
	}

	rental, err := h.rentalSvc.AttachRentalSignature(r.Context(), id, party, key)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

// saveSignatureUpload validates and stores a signature image from a
// multipart form. It writes the error response itself when ok is false.
func saveSignatureUpload(w http.ResponseWriter, r *http.Request, files storage.Store) (domain.SignatureParty, string, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return "", "", false
	}

	party := domain.SignatureParty(r.FormValue("party"))
	if party != domain.SignatureCustomer && party != domain.SignatureCompany {
		respondError(w, http.StatusBadRequest, "party must be customer or company")
		return "", "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing image file")
		return "", "", false
	}
	defer file.Close()

	key, err := files.Save(r.Context(), "signatures", header.Filename, file)
	if err != nil {
		respondServiceError(w, err)
		return "", "", false
	}
	return party, key, true
}
