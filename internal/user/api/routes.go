package api

import "net/http"

func (h *Handler) RegisterRoutes(mux *http.ServeMux, authenticate func(http.Handler) http.Handler) {
	mux.Handle("GET /users", authenticate(http.HandlerFunc(h.ListHandler)))
	mux.Handle("GET /users/{userId}", authenticate(http.HandlerFunc(h.GetHandler)))
}
