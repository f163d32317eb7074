package app

import (
	"fmt"

	"github.com/google/uuid"

	"green-wheels/internal/event"
	"green-wheels/internal/ride/domain"
	"green-wheels/internal/shared/apperrors"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
)

type RideService struct {
	rides      *storage.Table[domain.Ride, *domain.Ride]
	bus        *event.Bus
	passengers domain.PassengerLister
	users      domain.UserDirectory
	logger     *util.Logger
}

func NewRideService(
	rides *storage.Table[domain.Ride, *domain.Ride],
	bus *event.Bus,
	passengers domain.PassengerLister,
	users domain.UserDirectory,
	logger *util.Logger,
) *RideService {
	return &RideService{rides: rides, bus: bus, passengers: passengers, users: users, logger: logger}
}

// OfferedRides lists the rides driven by the given user.
func (s *RideService) OfferedRides(userID int) []domain.Ride {
	var offered []domain.Ride
	for _, ride := range s.rides.FindAll() {
		if ride.DriverID == userID {
			offered = append(offered, ride)
		}
	}
	return offered
}

// OfferedRideIDs is the authorization scope for reservation operations.
func (s *RideService) OfferedRideIDs(userID int) []int {
	var ids []int
	for _, ride := range s.OfferedRides(userID) {
		ids = append(ids, ride.ID)
	}
	return ids
}

// AvailableRides lists rides the user could reserve: rides driven by someone
// else that are either open or shared within the user's community.
func (s *RideService) AvailableRides(userID int, communityID *int) []domain.Ride {
	var available []domain.Ride
	for _, ride := range s.rides.FindAll() {
		if ride.DriverID == userID {
			continue
		}
		if ride.CommunityID == nil || (communityID != nil && *ride.CommunityID == *communityID) {
			available = append(available, ride)
		}
	}
	return available
}

// CreateRide inserts a new ride in the Ready state and returns its id.
func (s *RideService) CreateRide(ride domain.Ride) (int, error) {
	instance := "RideService.CreateRide"

	ride.State = domain.StateReady
	id, err := s.rides.Insert(ride)
	if err != nil {
		s.logger.Error(instance, err)
		return 0, fmt.Errorf("failed to create ride: %w", apperrors.ErrInternal)
	}

	s.logger.OK(instance, fmt.Sprintf("ride created [ride_id=%d, driver_id=%d]", id, ride.DriverID))
	return id, nil
}

func (s *RideService) RideByID(rideID int) (domain.Ride, error) {
	ride, ok := s.rides.FindByID(rideID)
	if !ok {
		return domain.Ride{}, domain.ErrRideNotFound
	}
	return ride, nil
}

// Start moves a ride to Started. When the caller is not the ride's driver the
// call succeeds without touching the ride; only the owning driver's calls
// mutate state.
func (s *RideService) Start(rideID, userID int) error {
	instance := "RideService.Start"

	ride, ok := s.rides.FindByID(rideID)
	if !ok {
		return domain.ErrRideNotFound
	}
	if ride.DriverID != userID {
		s.logger.Warn(instance, fmt.Sprintf("ignoring start of ride %d: user %d is not the driver", rideID, userID))
		return nil
	}

	ride.State = domain.StateStarted
	if err := s.rides.Update(rideID, ride); err != nil {
		s.logger.Error(instance, err)
		return fmt.Errorf("failed to start ride %d: %w", rideID, apperrors.ErrInternal)
	}

	s.logger.OK(instance, fmt.Sprintf("ride %d started by driver %d", rideID, userID))
	return nil
}

// Conclude moves a ride to Concluded, mints the evaluation token and
// publishes RideConcluded for the rating and notification subscribers.
// Like Start, a non-driver call is a silent no-op.
func (s *RideService) Conclude(rideID, userID int) error {
	instance := "RideService.Conclude"

	ride, ok := s.rides.FindByID(rideID)
	if !ok {
		return domain.ErrRideNotFound
	}
	if ride.DriverID != userID {
		s.logger.Warn(instance, fmt.Sprintf("ignoring conclude of ride %d: user %d is not the driver", rideID, userID))
		return nil
	}

	ride.State = domain.StateConcluded
	if err := s.rides.Update(rideID, ride); err != nil {
		s.logger.Error(instance, err)
		return fmt.Errorf("failed to conclude ride %d: %w", rideID, apperrors.ErrInternal)
	}

	token := uuid.NewString()
	s.bus.Publish(event.RideConcluded{
		DriverID:       ride.DriverID,
		DriverUsername: s.users.UsernameOf(ride.DriverID),
		StartLocation:  ride.StartLocation,
		EndLocation:    ride.EndLocation,
		Passengers:     s.passengers.AcceptedRiderIDs(rideID),
		Token:          token,
	})

	s.logger.OK(instance, fmt.Sprintf("ride %d concluded by driver %d", rideID, userID))
	return nil
}

// Delete removes a ride owned by the caller and publishes RideEliminated so
// dependent rows get cleaned up.
func (s *RideService) Delete(rideID, userID int) error {
	instance := "RideService.Delete"

	ride, ok := s.rides.FindByID(rideID)
	if !ok {
		return domain.ErrRideNotFound
	}
	if ride.DriverID != userID {
		s.logger.Warn(instance, fmt.Sprintf("user %d tried to delete ride %d owned by %d", userID, rideID, ride.DriverID))
		return domain.ErrNotRideOwner
	}

	if err := s.rides.Delete(rideID); err != nil {
		s.logger.Error(instance, err)
		return fmt.Errorf("failed to delete ride %d: %w", rideID, apperrors.ErrInternal)
	}

	s.bus.Publish(event.RideEliminated{RideID: rideID})

	s.logger.OK(instance, fmt.Sprintf("ride %d deleted by driver %d", rideID, userID))
	return nil
}
