package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	authapi "green-wheels/internal/auth/api"
	profileapp "green-wheels/internal/profile/app"
	"green-wheels/internal/ride/app"
	"green-wheels/internal/ride/domain"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/shared/validation"
	userapp "green-wheels/internal/user/app"
)

type Handler struct {
	service  *app.RideService
	users    *userapp.UserService
	profiles *profileapp.ProfileService
	logger   *util.Logger
}

func NewHandler(service *app.RideService, users *userapp.UserService, profiles *profileapp.ProfileService, logger *util.Logger) *Handler {
	return &Handler{service: service, users: users, profiles: profiles, logger: logger}
}

// AvailableRidesHandler lists rides the caller could reserve, scoped to
// their community.
func (h *Handler) AvailableRidesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	var communityID *int
	if user, err := h.users.UserByID(userID); err == nil {
		communityID = user.Community
	}

	util.ResponseInJson(w, http.StatusOK, h.service.AvailableRides(userID, communityID))
}

func (h *Handler) OfferedRidesHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	util.ResponseInJson(w, http.StatusOK, h.service.OfferedRides(userID))
}

func (h *Handler) CreateRideHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	var body struct {
		Ride domain.Ride `json:"ride"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateStringNotEmpty(body.Ride.StartLocation, "startLocation"); err != nil {
		util.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateStringNotEmpty(body.Ride.EndLocation, "endLocation"); err != nil {
		util.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateCoordinates(body.Ride.StartLat, body.Ride.StartLng); err != nil {
		util.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateCoordinates(body.Ride.EndLat, body.Ride.EndLng); err != nil {
		util.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.profiles.HasProfile(userID) {
		util.ErrResponseInJson(w, domain.ErrProfileRequired)
		return
	}

	// The driver and community always come from the authenticated caller.
	body.Ride.DriverID = userID
	if user, err := h.users.UserByID(userID); err == nil {
		body.Ride.CommunityID = user.Community
	}

	id, err := h.service.CreateRide(body.Ride)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusCreated, map[string]int{"rideId": id})
	h.logger.HTTP(http.StatusCreated, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) DeleteRideHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	rideID, err := strconv.Atoi(r.PathValue("rideId"))
	if err != nil {
		util.WriteJSONError(w, "invalid ride id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(rideID, userID); err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, map[string]bool{"success": true})
	h.logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) StartRideHandler(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Start)
}

func (h *Handler) ConcludeRideHandler(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Conclude)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(rideID, userID int) error) {
	start := time.Now()

	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	rideID, err := strconv.Atoi(r.PathValue("rideId"))
	if err != nil {
		util.WriteJSONError(w, "invalid ride id", http.StatusBadRequest)
		return
	}

	if err := op(rideID, userID); err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, map[string]bool{"success": true})
	h.logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}
