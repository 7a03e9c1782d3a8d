package handler

import (
	"net/http"

	"github.com/YuvaneshV12/chrono-gift/internal/application/audit"
)

// TransactionHandler exposes the audit trail for traceability.
type TransactionHandler struct {
	svc audit.Recorder
}

func NewTransactionHandler(svc audit.Recorder) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	if giftID := r.URL.Query().Get("gift_id"); giftID != "" {
		txs, err := h.svc.ListByGift(r.Context(), giftID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, txs)
		return
	}
	txs, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}
