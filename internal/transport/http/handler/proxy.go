package handler

import (
	"io"
	"net/http"
	"time"
)

// ProxyHandler forwards the frontend's offer request to the upstream
// provider, sidestepping its CORS policy. Pure passthrough.
type ProxyHandler struct {
	upstreamURL string
	client      *http.Client
}

func NewProxyHandler(upstreamURL string) *ProxyHandler {
	return &ProxyHandler{
		upstreamURL: upstreamURL,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (h *ProxyHandler) Offer(w http.ResponseWriter, r *http.Request) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, h.upstreamURL, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch offer")
		return
	}
	resp, err := h.client.Do(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch offer")
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}
