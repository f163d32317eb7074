package api

import "net/http"

func (h *Handler) RegisterRoutes(mux *http.ServeMux, authenticate func(http.Handler) http.Handler) {
	mux.Handle("PUT /evaluation", authenticate(http.HandlerFunc(h.SubmitHandler)))
}
