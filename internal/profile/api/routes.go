package api

import "net/http"

func (h *Handler) RegisterRoutes(mux *http.ServeMux, authenticate func(http.Handler) http.Handler) {
	mux.Handle("GET /profile/{userId}", authenticate(http.HandlerFunc(h.GetHandler)))
	mux.Handle("POST /profile", authenticate(http.HandlerFunc(h.CreateHandler)))
	mux.Handle("PUT /profile", authenticate(http.HandlerFunc(h.UpdateHandler)))
	mux.Handle("DELETE /profile/{profileId}", authenticate(http.HandlerFunc(h.DeleteHandler)))
}
