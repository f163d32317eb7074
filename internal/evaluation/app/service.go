package app

import (
	"fmt"

	"green-wheels/internal/evaluation/domain"
	"green-wheels/internal/event"
	"green-wheels/internal/shared/apperrors"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
)

// EvaluationService tracks one pending, single-use evaluation per concluded
// ride and turns submissions into DriverEvaluated events.
type EvaluationService struct {
	evaluations *storage.Table[domain.Evaluation, *domain.Evaluation]
	bus         *event.Bus
	logger      *util.Logger
}

func NewEvaluationService(
	evaluations *storage.Table[domain.Evaluation, *domain.Evaluation],
	bus *event.Bus,
	logger *util.Logger,
) *EvaluationService {
	s := &EvaluationService{evaluations: evaluations, bus: bus, logger: logger}
	event.Subscribe(bus, s.onRideConcluded)
	return s
}

func (s *EvaluationService) onRideConcluded(ev event.RideConcluded) error {
	_, err := s.evaluations.Insert(domain.Evaluation{
		DriverID: ev.DriverID,
		Token:    ev.Token,
		Done:     false,
	})
	if err != nil {
		return fmt.Errorf("failed to create evaluation for driver %d: %w", ev.DriverID, err)
	}
	return nil
}

// Submit consumes the pending evaluation matching token. Lookups filter on
// done == false, so a second submission of the same token fails NotFound.
func (s *EvaluationService) Submit(token string, rating float64) error {
	instance := "EvaluationService.Submit"

	var pending *domain.Evaluation
	for _, e := range s.evaluations.FindAll() {
		if e.Token == token && !e.Done {
			pending = &e
			break
		}
	}
	if pending == nil {
		return domain.ErrEvaluationNotFound
	}

	pending.Done = true
	if err := s.evaluations.Update(pending.ID, *pending); err != nil {
		s.logger.Error(instance, err)
		return fmt.Errorf("failed to consume evaluation %d: %w", pending.ID, apperrors.ErrInternal)
	}

	s.bus.Publish(event.DriverEvaluated{DriverID: pending.DriverID, Rating: rating})

	s.logger.OK(instance, fmt.Sprintf("evaluation %d submitted [driver_id=%d, rating=%.1f]", pending.ID, pending.DriverID, rating))
	return nil
}
