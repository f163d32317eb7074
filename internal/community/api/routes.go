package api

import "net/http"

// Communities are public: they are listed on the registration page before
// the user has a token.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /communities", h.ListHandler)
}
