package api

import (
	"encoding/json"
	"net/http"
	"time"

	authapi "green-wheels/internal/auth/api"
	"green-wheels/internal/chat/app"
	"green-wheels/internal/chat/domain"
	"green-wheels/internal/shared/util"
	userapp "green-wheels/internal/user/app"
)

type Handler struct {
	service *app.ChatService
	users   *userapp.UserService
	hub     *Hub
	logger  *util.Logger
}

func NewHandler(service *app.ChatService, users *userapp.UserService, hub *Hub, logger *util.Logger) *Handler {
	return &Handler{service: service, users: users, hub: hub, logger: logger}
}

// participant is how message endpoints appear on the wire: id plus resolved
// username.
type participant struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type messageView struct {
	ID       int         `json:"id"`
	From     participant `json:"from"`
	To       participant `json:"to"`
	Body     string      `json:"message"`
	DateTime string      `json:"dateTime"`
	Token    string      `json:"token,omitempty"`
}

func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	messages := h.service.MessagesFor(userID)
	views := make([]messageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, messageView{
			ID:       m.ID,
			From:     participant{ID: m.From, Username: h.users.UsernameOf(m.From)},
			To:       participant{ID: m.To, Username: h.users.UsernameOf(m.To)},
			Body:     m.Body,
			DateTime: m.DateTime,
			Token:    m.Token,
		})
	}

	util.ResponseInJson(w, http.StatusOK, views)
}

func (h *Handler) WriteHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, ok := authapi.UserID(r.Context())
	if !ok {
		util.WriteJSONError(w, "unauthorized: missing user id", http.StatusUnauthorized)
		return
	}

	var body struct {
		Message domain.Message `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		util.WriteJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	// The sender is always the authenticated caller; user messages never
	// carry an evaluation token.
	body.Message.From = userID
	body.Message.Token = ""

	id, err := h.service.Write(body.Message)
	if err != nil {
		util.ErrResponseInJson(w, err)
		return
	}

	util.ResponseInJson(w, http.StatusOK, map[string]int{"messageId": id})
	h.logger.HTTP(http.StatusOK, time.Since(start), r.RemoteAddr, r.Method, r.URL.Path)
}
