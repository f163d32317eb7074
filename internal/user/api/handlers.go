package api

import (
	"net/http"
	"strconv"

	"green-wheels/internal/shared/util"
	"green-wheels/internal/user/app"
	"green-wheels/internal/user/domain"
)

type Handler struct {
	service *app.UserService
	logger  *util.Logger
}

func NewHandler(service *app.UserService, logger *util.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// sanitize strips the password hash before a user row goes on the wire.
func sanitize(user domain.User) domain.User {
	user.Password = ""
	return user
}

func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	users := h.service.AllUsers()
	views := make([]domain.User, 0, len(users))
	for _, u := range users {
		views = append(views, sanitize(u))
	}
	util.ResponseInJson(w, http.StatusOK, views)
}

func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.PathValue("userId"))
	if err != nil {
		util.WriteJSONError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.service.UserByID(userID)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, sanitize(user))
}
