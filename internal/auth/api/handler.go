package api

import (
	"encoding/json"
	"net/http"
	"time"

	"green-wheels/internal/auth/app"
	"green-wheels/internal/shared/util"
	userdomain "green-wheels/internal/user/domain"
)

type Handler struct {
	service *app.AuthService
	logger  *util.Logger
}

func NewHandler(service *app.AuthService, logger *util.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body struct {
		User userdomain.User `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if body.User.Username == "" || body.User.Password == "" {
		util.WriteJSONError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	id, err := h.service.Register(body.User)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusCreated, map[string]int{"userId": id})
	h.logger.HTTP(http.StatusCreated, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(body.Username, body.Password)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, map[string]string{"token": token})
	h.logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}

func (h *Handler) ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	claims, err := h.service.Validate(body.Token)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, claims)
}
