package app

import (
	"fmt"

	"green-wheels/internal/event"
	"green-wheels/internal/profile/domain"
	"green-wheels/internal/shared/apperrors"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
)

type ProfileService struct {
	profiles *storage.Table[domain.Profile, *domain.Profile]
	bus      *event.Bus
	logger   *util.Logger
}

func NewProfileService(
	profiles *storage.Table[domain.Profile, *domain.Profile],
	bus *event.Bus,
	logger *util.Logger,
) *ProfileService {
	return &ProfileService{profiles: profiles, bus: bus, logger: logger}
}

func (s *ProfileService) ProfileOf(userID int) (domain.Profile, error) {
	for _, p := range s.profiles.FindAll() {
		if p.UserID == userID {
			return p, nil
		}
	}
	return domain.Profile{}, domain.ErrProfileNotFound
}

// HasProfile reports whether the user completed their profile, a
// precondition for offering rides.
func (s *ProfileService) HasProfile(userID int) bool {
	_, err := s.ProfileOf(userID)
	return err == nil
}

func (s *ProfileService) Add(profile domain.Profile) (int, error) {
	id, err := s.profiles.Insert(profile)
	if err != nil {
		return 0, fmt.Errorf("failed to add profile: %w", apperrors.ErrInternal)
	}
	return id, nil
}

func (s *ProfileService) Update(profile domain.Profile) error {
	if _, ok := s.profiles.FindByID(profile.ID); !ok {
		return domain.ErrProfileNotFound
	}
	return s.profiles.Update(profile.ID, profile)
}

// Delete removes a profile and publishes ProfileEliminated, which cascades
// into the user's rides and their reservations.
func (s *ProfileService) Delete(profileID int) error {
	instance := "ProfileService.Delete"

	profile, ok := s.profiles.FindByID(profileID)
	if !ok {
		return domain.ErrProfileNotFound
	}

	if err := s.profiles.Delete(profileID); err != nil {
		s.logger.Error(instance, err)
		return fmt.Errorf("failed to delete profile %d: %w", profileID, apperrors.ErrInternal)
	}

	s.bus.Publish(event.ProfileEliminated{UserID: profile.UserID})

	s.logger.OK(instance, fmt.Sprintf("profile %d deleted [user_id=%d]", profileID, profile.UserID))
	return nil
}
