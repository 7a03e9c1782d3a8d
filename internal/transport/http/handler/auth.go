package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/YuvaneshV12/chrono-gift/internal/application/identity"
)

// AuthHandler exchanges Google credentials for a local identity.
type AuthHandler struct {
	svc    identity.Service
	signer TokenSigner // nil when no key pair is configured
}

// TokenSigner issues app session tokens for the authenticated endpoints.
type TokenSigner interface {
	Sign(userID, email string) (string, error)
}

func NewAuthHandler(svc identity.Service, signer TokenSigner) *AuthHandler {
	return &AuthHandler{svc: svc, signer: signer}
}

type googleAuthRequest struct {
	AccessToken string `json:"access_token"`
}

func (h *AuthHandler) Google(w http.ResponseWriter, r *http.Request) {
	var req googleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AccessToken == "" {
		writeError(w, http.StatusBadRequest, "access token required")
		return
	}
	u, err := h.svc.Resolve(r.Context(), req.AccessToken)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var token string
	if h.signer != nil {
		token, err = h.signer.Sign(u.UserID, u.Email)
		if err != nil {
			// Auth still succeeds; the response just carries no token.
			slog.Warn("failed to sign session token", "user_id", u.UserID, "err", err)
		}
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{
		Message: "Authentication successful",
		User:    u,
		Token:   token,
	})
}
