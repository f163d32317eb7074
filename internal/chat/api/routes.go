package api

import (
	"net/http"

	"green-wheels/internal/auth/jwt"
)

func (h *Handler) RegisterRoutes(mux *http.ServeMux, authenticate func(http.Handler) http.Handler, tokens *jwt.TokenManager) {
	mux.Handle("GET /chat", authenticate(http.HandlerFunc(h.ListHandler)))
	mux.Handle("POST /chat", authenticate(http.HandlerFunc(h.WriteHandler)))
	mux.HandleFunc("GET /ws/chat/{userId}", h.ServeWS(tokens))
}
