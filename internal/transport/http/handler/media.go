package handler

import (
	"encoding/json"
	"net/http"

	"github.com/YuvaneshV12/chrono-gift/internal/application/media"
)

// MediaHandler accepts base64 media uploads for gift payloads.
type MediaHandler struct {
	svc media.Service
}

func NewMediaHandler(svc media.Service) *MediaHandler { return &MediaHandler{svc: svc} }

type uploadRequest struct {
	Filename string `json:"filename"`
	Data     string `json:"data"` // base64
}

func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Filename == "" || req.Data == "" {
		writeError(w, http.StatusBadRequest, "filename and data required")
		return
	}
	url, err := h.svc.UploadBase64(r.Context(), req.Filename, req.Data)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		URL string `json:"url"`
	}{URL: url})
}
