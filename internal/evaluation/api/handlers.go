package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	chatapp "green-wheels/internal/chat/app"
	"green-wheels/internal/evaluation/app"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/shared/validation"
)

type Handler struct {
	service *app.EvaluationService
	chat    *chatapp.ChatService
	logger  *util.Logger
}

func NewHandler(service *app.EvaluationService, chat *chatapp.ChatService, logger *util.Logger) *Handler {
	return &Handler{service: service, chat: chat, logger: logger}
}

// SubmitHandler consumes a rating token. The prompt message cleanup is
// best-effort: the evaluation stays consumed even if it fails.
func (h *Handler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body struct {
		Token  string  `json:"token"`
		Rating float64 `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateRating(body.Rating); err != nil {
		util.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Submit(body.Token, body.Rating); err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	if err := h.chat.DeletePromptByToken(body.Token); err != nil {
		h.logger.Error("SubmitHandler", fmt.Errorf("failed to delete rating prompt: %w", err))
	}

	util.ResponseInJson(w, http.StatusOK, map[string]bool{"success": true})
	h.logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}
