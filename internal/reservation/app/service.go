package app

import (
	"fmt"

	"green-wheels/internal/event"
	"green-wheels/internal/reservation/domain"
	"green-wheels/internal/shared/apperrors"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
)

type ReservationService struct {
	reservations *storage.Table[domain.Reservation, *domain.Reservation]
	bus          *event.Bus
	logger       *util.Logger
}

func NewReservationService(
	reservations *storage.Table[domain.Reservation, *domain.Reservation],
	bus *event.Bus,
	logger *util.Logger,
) *ReservationService {
	return &ReservationService{reservations: reservations, bus: bus, logger: logger}
}

// ListForOwnedRides returns the incoming reservation requests on the given
// rides, the driver's inbox.
func (s *ReservationService) ListForOwnedRides(offeredRideIDs []int) []domain.Reservation {
	offered := make(map[int]bool, len(offeredRideIDs))
	for _, id := range offeredRideIDs {
		offered[id] = true
	}

	var inbox []domain.Reservation
	for _, r := range s.reservations.FindAll() {
		if offered[r.RideID] {
			inbox = append(inbox, r)
		}
	}
	return inbox
}

// Create inserts a pending reservation. A user holds at most one active
// reservation per ride.
func (s *ReservationService) Create(rideID, userID int) (int, error) {
	instance := "ReservationService.Create"

	for _, r := range s.reservations.FindAll() {
		if r.RideID == rideID && r.UserID == userID {
			return 0, domain.ErrAlreadyReserved
		}
	}

	id, err := s.reservations.Insert(domain.Reservation{RideID: rideID, UserID: userID, Accepted: false})
	if err != nil {
		s.logger.Error(instance, err)
		return 0, fmt.Errorf("failed to create reservation: %w", apperrors.ErrInternal)
	}

	s.logger.OK(instance, fmt.Sprintf("reservation %d created [ride_id=%d, user_id=%d]", id, rideID, userID))
	return id, nil
}

func (s *ReservationService) ReservationByID(reservationID int) (domain.Reservation, error) {
	reservation, ok := s.reservations.FindByID(reservationID)
	if !ok {
		return domain.Reservation{}, domain.ErrReservationNotFound
	}
	return reservation, nil
}

// Accept marks a reservation accepted exactly once and publishes the
// acceptance notification. Only the driver of the reserved ride, identified
// by the offered ride ids, may accept.
func (s *ReservationService) Accept(reservation domain.Reservation, offeredRideIDs []int, notification event.ReservationAccepted) error {
	instance := "ReservationService.Accept"

	if !contains(offeredRideIDs, reservation.RideID) {
		return domain.ErrNoRightOnRide
	}
	if reservation.Accepted {
		return domain.ErrAlreadyAccepted
	}

	reservation.Accepted = true
	if err := s.reservations.Update(reservation.ID, reservation); err != nil {
		s.logger.Error(instance, err)
		return fmt.Errorf("failed to accept reservation %d: %w", reservation.ID, apperrors.ErrInternal)
	}

	s.bus.Publish(notification)

	s.logger.OK(instance, fmt.Sprintf("reservation %d accepted [rider_id=%d]", reservation.ID, reservation.UserID))
	return nil
}

// Refuse deletes a reservation on one of the caller's rides and publishes
// ReservationEliminated.
func (s *ReservationService) Refuse(reservation domain.Reservation, offeredRideIDs []int) error {
	instance := "ReservationService.Refuse"

	if !contains(offeredRideIDs, reservation.RideID) {
		return domain.ErrNoRightOnRide
	}

	if err := s.reservations.Delete(reservation.ID); err != nil {
		s.logger.Error(instance, err)
		return fmt.Errorf("failed to delete reservation %d: %w", reservation.ID, apperrors.ErrInternal)
	}

	s.bus.Publish(event.ReservationEliminated{ReservationID: reservation.ID})

	s.logger.OK(instance, fmt.Sprintf("reservation %d refused", reservation.ID))
	return nil
}

// AcceptedRiderIDs lists the riders with an accepted reservation on a ride.
// It backs the passenger fan-out of RideConcluded.
func (s *ReservationService) AcceptedRiderIDs(rideID int) []int {
	var riders []int
	for _, r := range s.reservations.FindAll() {
		if r.RideID == rideID && r.Accepted {
			riders = append(riders, r.UserID)
		}
	}
	return riders
}

func contains(ids []int, id int) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
