package api

import (
	"net/http"

	"green-wheels/internal/community/app"
	"green-wheels/internal/shared/util"
)

type Handler struct {
	service *app.CommunityService
}

func NewHandler(service *app.CommunityService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	util.ResponseInJson(w, http.StatusOK, h.service.AllCommunities())
}
