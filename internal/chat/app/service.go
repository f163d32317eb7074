package app

import (
	"fmt"
	"time"

	"green-wheels/internal/chat/domain"
	"green-wheels/internal/event"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
)

// ChatService stores user messages and produces the service-generated ones:
// reservation acceptance notices and post-ride rating prompts.
type ChatService struct {
	messages *storage.Table[domain.Message, *domain.Message]
	bus      *event.Bus
	notifier domain.Notifier
	logger   *util.Logger
}

func NewChatService(
	messages *storage.Table[domain.Message, *domain.Message],
	bus *event.Bus,
	notifier domain.Notifier,
	logger *util.Logger,
) *ChatService {
	s := &ChatService{messages: messages, bus: bus, notifier: notifier, logger: logger}
	event.Subscribe(bus, s.onReservationAccepted)
	event.Subscribe(bus, s.onRideConcluded)
	return s
}

// MessagesFor returns every message sent or received by the user.
func (s *ChatService) MessagesFor(userID int) []domain.Message {
	var conversation []domain.Message
	for _, m := range s.messages.FindAll() {
		if m.From == userID || m.To == userID {
			conversation = append(conversation, m)
		}
	}
	return conversation
}

// Write stores a message and pushes it to the recipient if connected.
func (s *ChatService) Write(message domain.Message) (int, error) {
	if message.DateTime == "" {
		message.DateTime = time.Now().Format(time.RFC3339)
	}

	id, err := s.messages.Insert(message)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrWriteMessage, err)
	}

	if s.notifier != nil {
		message.ID = id
		s.notifier.Notify(message.To, message)
	}
	return id, nil
}

// DeletePromptByToken removes the rating prompt carrying token. Deleting an
// unknown token is a no-op; prompt removal is cosmetic, not required for
// evaluation correctness.
func (s *ChatService) DeletePromptByToken(token string) error {
	for _, m := range s.messages.FindAll() {
		if m.Token == token && m.Token != "" {
			return s.messages.Delete(m.ID)
		}
	}
	return nil
}

func (s *ChatService) onReservationAccepted(ev event.ReservationAccepted) error {
	body := fmt.Sprintf(
		"Your reservation for the ride from %s to %s on %s at %s has been accepted!"+
			"\nContact %s for further details!"+
			"\n\nStart Coords: (%g,%g)",
		ev.StartLocation, ev.EndLocation, ev.Date, ev.Time,
		ev.DriverUsername, ev.StartLng, ev.StartLat,
	)

	_, err := s.Write(domain.Message{
		From: domain.SystemSenderID,
		To:   ev.RiderID,
		Body: body,
	})
	return err
}

func (s *ChatService) onRideConcluded(ev event.RideConcluded) error {
	body := fmt.Sprintf(
		"How was your ride from %s to %s with %s? Rate your driver!",
		ev.StartLocation, ev.EndLocation, ev.DriverUsername,
	)

	for _, passenger := range ev.Passengers {
		_, err := s.Write(domain.Message{
			From:  domain.SystemSenderID,
			To:    passenger,
			Body:  body,
			Token: ev.Token,
		})
		if err != nil {
			return fmt.Errorf("failed to prompt passenger %d: %w", passenger, err)
		}
	}
	return nil
}
