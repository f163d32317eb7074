package app

import (
	"fmt"

	"green-wheels/internal/event"
	"green-wheels/internal/shared/apperrors"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
	"green-wheels/internal/user/domain"
)

// UserService owns the user rows and the driver rating projection.
type UserService struct {
	users  *storage.Table[domain.User, *domain.User]
	logger *util.Logger
}

func NewUserService(
	users *storage.Table[domain.User, *domain.User],
	bus *event.Bus,
	logger *util.Logger,
) *UserService {
	s := &UserService{users: users, logger: logger}
	event.Subscribe(bus, s.onDriverEvaluated)
	return s
}

func (s *UserService) AllUsers() []domain.User {
	return s.users.FindAll()
}

func (s *UserService) UserByID(userID int) (domain.User, error) {
	user, ok := s.users.FindByID(userID)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UsersByIDs(userIDs []int) []domain.User {
	return s.users.FindByIDs(userIDs)
}

func (s *UserService) InsertUser(user domain.User) (int, error) {
	id, err := s.users.Insert(user)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", apperrors.ErrInternal)
	}
	return id, nil
}

func (s *UserService) DeleteUser(userID int) error {
	return s.users.Delete(userID)
}

// UsernameOf resolves a user id to its display name, empty when unknown.
func (s *UserService) UsernameOf(userID int) string {
	user, ok := s.users.FindByID(userID)
	if !ok {
		return ""
	}
	return user.Username
}

// onDriverEvaluated folds a new rating into the driver's running mean:
// averageRate is always the exact arithmetic mean of every rating so far.
func (s *UserService) onDriverEvaluated(ev event.DriverEvaluated) error {
	user, ok := s.users.FindByID(ev.DriverID)
	if !ok {
		return fmt.Errorf("rated driver %d does not exist", ev.DriverID)
	}

	n := user.NumberOfEvaluations + 1
	user.AverageRate = (user.AverageRate*float64(n-1) + ev.Rating) / float64(n)
	user.NumberOfEvaluations = n

	if err := s.users.Update(user.ID, user); err != nil {
		return fmt.Errorf("failed to update rating of driver %d: %w", ev.DriverID, err)
	}

	s.logger.OK("UserService.onDriverEvaluated",
		fmt.Sprintf("driver %d rated [average=%.3f, evaluations=%d]", ev.DriverID, user.AverageRate, n))
	return nil
}
