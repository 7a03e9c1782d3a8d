package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/YuvaneshV12/chrono-gift/internal/application/message"
	"github.com/YuvaneshV12/chrono-gift/internal/domain"
)

// MessageHandler handles well-wish messages attached to gifts.
type MessageHandler struct {
	svc message.Service
}

func NewMessageHandler(svc message.Service) *MessageHandler { return &MessageHandler{svc: svc} }

func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Message string              `json:"message"`
		Data    *domain.GiftMessage `json:"data"`
	}{Message: "Message saved", Data: m})
}

func (h *MessageHandler) ListByGift(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.svc.ListByGift(r.Context(), chi.URLParam(r, "giftId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}
