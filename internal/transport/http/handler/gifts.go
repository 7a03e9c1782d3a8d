package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	giftapp "github.com/YuvaneshV12/chrono-gift/internal/application/gift"
	"github.com/YuvaneshV12/chrono-gift/internal/application/identity"
	"github.com/YuvaneshV12/chrono-gift/internal/domain"
	"github.com/YuvaneshV12/chrono-gift/internal/pkg/validate"
	"github.com/YuvaneshV12/chrono-gift/internal/transport/http/middleware"
)

// GiftHandler handles gift creation, opening and lookup.
type GiftHandler struct {
	svc      giftapp.Service
	identity identity.Service
}

func NewGiftHandler(svc giftapp.Service, identitySvc identity.Service) *GiftHandler {
	return &GiftHandler{svc: svc, identity: identitySvc}
}

func (h *GiftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateGiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	g, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, GiftEnvelope{Message: "Gift created successfully", Gift: g})
}

// Open authenticates the claimant with the supplied Google token, then runs
// the unlock checks. Each denial maps to its own status and message.
func (h *GiftHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req domain.OpenGiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	claimant, err := h.identity.Resolve(r.Context(), req.AccessToken)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	view, err := h.svc.Open(r.Context(), req.GiftID, claimant, req.Passcode)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, GiftEnvelope{Message: "Gift opened successfully!", Gift: view})
}

func (h *GiftHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ListMine returns the gifts the authenticated user has sent.
func (h *GiftHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	gifts, err := h.svc.ListBySender(r.Context(), claims.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	views := make([]*domain.PublicView, len(gifts))
	for i := range gifts {
		views[i] = gifts[i].Public()
	}
	writeJSON(w, http.StatusOK, views)
}
