package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	authapi "green-wheels/internal/auth/api"
	"green-wheels/internal/event"
	"green-wheels/internal/reservation/app"
	rideapp "green-wheels/internal/ride/app"
	"green-wheels/internal/shared/util"
	userapp "green-wheels/internal/user/app"
)

type Handler struct {
	service *app.ReservationService
	rides   *rideapp.RideService
	users   *userapp.UserService
	logger  *util.Logger
}

func NewHandler(service *app.ReservationService, rides *rideapp.RideService, users *userapp.UserService, logger *util.Logger) *Handler {
	return &Handler{service: service, rides: rides, users: users, logger: logger}
}

// ListHandler returns the reservations made by other users on the caller's
// offered rides.
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	reservations := h.service.ListForOwnedRides(h.rides.OfferedRideIDs(userID))
	util.ResponseInJson(w, http.StatusOK, reservations)
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	var body struct {
		RideID int `json:"rideId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if _, err := h.rides.RideByID(body.RideID); err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	id, err := h.service.Create(body.RideID, userID)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusCreated, map[string]int{"reservationId": id})
	h.logger.HTTP(http.StatusCreated, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) AcceptHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	var body struct {
		ReservationID int `json:"reservationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	reservation, err := h.service.ReservationByID(body.ReservationID)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	ride, err := h.rides.RideByID(reservation.RideID)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	notification := event.ReservationAccepted{
		RiderID:        reservation.UserID,
		StartLocation:  ride.StartLocation,
		EndLocation:    ride.EndLocation,
		Date:           ride.Date,
		Time:           ride.Time,
		DriverUsername: h.users.UsernameOf(ride.DriverID),
		StartLng:       ride.StartLng,
		StartLat:       ride.StartLat,
	}

	if err := h.service.Accept(reservation, h.rides.OfferedRideIDs(userID), notification); err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, map[string]bool{"success": true})
	h.logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) RefuseHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	reservationID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		util.WriteJSONError(w, "invalid reservation id", http.StatusBadRequest)
		return
	}

	reservation, err := h.service.ReservationByID(reservationID)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	if err := h.service.Refuse(reservation, h.rides.OfferedRideIDs(userID)); err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, map[string]bool{"success": true})
	h.logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}
