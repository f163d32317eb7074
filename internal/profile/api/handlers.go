package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	authapi "green-wheels/internal/auth/api"
	"green-wheels/internal/profile/app"
	"green-wheels/internal/profile/domain"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/shared/validation"
)

type Handler struct {
	service *app.ProfileService
	logger  *util.Logger
}

func NewHandler(service *app.ProfileService, logger *util.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.PathValue("userId"))
	if err != nil {
		util.WriteJSONError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	profile, err := h.service.ProfileOf(userID)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, profile)
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	var body struct {
		Profile domain.Profile `json:"profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateStringNotEmpty(body.Profile.Name, "name"); err != nil {
		util.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateStringNotEmpty(body.Profile.Surname, "surname"); err != nil {
		util.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// One profile per user.
	if h.service.HasProfile(userID) {
		util.WriteJSONError(w, "profile already exists", http.StatusConflict)
		return
	}

	body.Profile.UserID = userID

	id, err := h.service.Add(body.Profile)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusCreated, map[string]int{"profileId": id})
	h.logger.HTTP(http.StatusCreated, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	var body struct {
		Profile domain.Profile `json:"profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	existing, err := h.service.ProfileOf(userID)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	body.Profile.ID = existing.ID
	body.Profile.UserID = userID

	if err := h.service.Update(body.Profile); err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	profileID, err := strconv.Atoi(r.PathValue("profileId"))
	if err != nil {
		util.WriteJSONError(w, "invalid profile id", http.StatusBadRequest)
		return
	}

	profile, err := h.service.ProfileOf(userID)
	if err != nil || profile.ID != profileID {
		util.WriteJSONError(w, "forbidden: not your profile", http.StatusForbidden)
		return
	}

	if err := h.service.Delete(profileID); err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, map[string]bool{"success": true})
	h.logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}
