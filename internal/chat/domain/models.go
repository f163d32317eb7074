package domain

import "green-wheels/internal/storage"

// SystemSenderID is the reserved sender of service-generated notifications.
// Row ids are non-negative, so it can never collide with a real user.
const SystemSenderID = -1

type Message struct {
	storage.Record
	From     int    `json:"from"`
	To       int    `json:"to"`
	Body     string `json:"message"`
	DateTime string `json:"dateTime"`
	// Token links a rating-request prompt to its pending evaluation.
	Token string `json:"token,omitempty"`
}

// Notifier pushes a freshly stored message to its recipient when they are
// connected. A nil Notifier disables live push.
type Notifier interface {
	Notify(userID int, message Message)
}
