package api

import "net/http"

func (h *Handler) RegisterRoutes(mux *http.ServeMux, authenticate func(http.Handler) http.Handler) {
	mux.Handle("GET /reservations", authenticate(http.HandlerFunc(h.ListHandler)))
	mux.Handle("POST /reservation", authenticate(http.HandlerFunc(h.CreateHandler)))
	mux.Handle("POST /reservation/accept", authenticate(http.HandlerFunc(h.AcceptHandler)))
	mux.Handle("DELETE /reservation/{id}", authenticate(http.HandlerFunc(h.RefuseHandler)))
}
