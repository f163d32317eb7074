package health

import (
	"context"
	"net/http"
	"time"

	"green-wheels/internal/shared/util"
)

// PingFunc checks a backing store. A nil PingFunc means the store has no
// connectivity to verify, as with the file backend.
type PingFunc func(ctx context.Context) error

type Handler struct {
	ping PingFunc
}

func NewHandler(ping PingFunc) *Handler {
	return &Handler{ping: ping}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthHandler)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			util.ResponseInJson(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}
	}

	util.ResponseInJson(w, http.StatusOK, map[string]string{"status": "ok"})
}
