package http

import (
	"net/http"

	"github.com/mohamed-achich/api-gateway/pkg/httpx"
	"github.com/mohamed-achich/api-gateway/pkg/slogx"
)

func (h *handlers) livez(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) readyz(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Warn("readiness check failed", "error", err)
			httpx.WriteError(w, r, http.StatusServiceUnavailable, "not ready")
			return
		}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
