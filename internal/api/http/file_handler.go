package http

import (
	"io"
	"net/http"
	"path/filepath"

	"fleetrent-backend/internal/storage"

	"github.com/gorilla/mux"
)

// maxUploadBytes bounds multipart parsing for all upload endpoints.
const maxUploadBytes = 10 << 20 // 10 MB

// FileHandler serves stored document images (signatures, license scans)
// back to the admin UI.
type FileHandler struct {
	files storage.Store
}

func NewFileHandler(files storage.Store) *FileHandler {
	return &FileHandler{files: files}
}

func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		respondError(w, http.StatusBadRequest, "missing file key")
		return
	}

	file, err := h.files.Open(r.Context(), key)
	if err != nil {
		respondError(w, http.StatusNotFound, "file not found")
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".webp":
		contentType = "image/webp"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	io.Copy(w, file)
}
