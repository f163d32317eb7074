package api

import "net/http"

func (h *Handler) RegisterRoutes(mux *http.ServeMux, authenticate func(http.Handler) http.Handler) {
	mux.Handle("GET /rides", authenticate(http.HandlerFunc(h.AvailableRidesHandler)))
	mux.Handle("GET /offered-rides", authenticate(http.HandlerFunc(h.OfferedRidesHandler)))
	mux.Handle("POST /ride", authenticate(http.HandlerFunc(h.CreateRideHandler)))
	mux.Handle("DELETE /ride/{rideId}", authenticate(http.HandlerFunc(h.DeleteRideHandler)))
	mux.Handle("POST /ride/{rideId}/start", authenticate(http.HandlerFunc(h.StartRideHandler)))
	mux.Handle("POST /ride/{rideId}/conclude", authenticate(http.HandlerFunc(h.ConcludeRideHandler)))
}
