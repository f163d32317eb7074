package api

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"green-wheels/internal/auth/jwt"
	"green-wheels/internal/chat/domain"
	"green-wheels/internal/shared/util"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks the open chat connections per user and implements the chat
// service's Notifier.
type Hub struct {
	logger *util.Logger

	mu    sync.RWMutex
	conns map[int]*websocket.Conn
}

func NewHub(logger *util.Logger) *Hub {
	return &Hub{logger: logger, conns: make(map[int]*websocket.Conn)}
}

// Notify pushes a stored message to its recipient. A disconnected recipient
// is not an error; they will read the message from the table later.
func (h *Hub) Notify(userID int, message domain.Message) {
	h.mu.RLock()
	conn, ok := h.conns[userID]
	h.mu.RUnlock()

	if !ok {
		return
	}

	if err := conn.WriteJSON(message); err != nil {
		h.logger.Error("ChatHub.Notify", fmt.Errorf("push to user %d failed: %w", userID, err))
		h.unregister(userID)
	}
}

func (h *Hub) register(userID int, conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[userID] = conn
	h.mu.Unlock()
}

func (h *Hub) unregister(userID int) {
	h.mu.Lock()
	delete(h.conns, userID)
	h.mu.Unlock()
}

// ServeWS upgrades GET /ws/chat/{userId}?token=... and keeps the connection
// alive with pings until the peer goes away.
func (h *Handler) ServeWS(tokens *jwt.TokenManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(r.PathValue("userId"))
		if err != nil {
			util.WriteJSONError(w, "invalid user id", http.StatusBadRequest)
			return
		}

		claims, err := tokens.Parse(r.URL.Query().Get("token"))
		if err != nil || claims.UserID != userID {
			util.WriteJSONError(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Error("ChatHub.ServeWS", fmt.Errorf("upgrade failed: %w", err))
			return
		}
		defer conn.Close()
		defer h.hub.unregister(userID)

		h.hub.register(userID, conn)
		h.logger.Info("ChatHub.ServeWS", fmt.Sprintf("user %d connected", userID))

		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		})

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				h.logger.Info("ChatHub.ServeWS", fmt.Sprintf("user %d disconnected", userID))
				return
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}
