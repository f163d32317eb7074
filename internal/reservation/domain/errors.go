package domain

import (
	"fmt"

	"green-wheels/internal/shared/apperrors"
)

var (
	ErrReservationNotFound = fmt.Errorf("reservation not found: %w", apperrors.ErrNotFound)
	ErrAlreadyReserved     = fmt.Errorf("user already holds a reservation for this ride: %w", apperrors.ErrConflict)
	ErrAlreadyAccepted     = fmt.Errorf("reservation is already accepted: %w", apperrors.ErrConflict)
	ErrNoRightOnRide       = fmt.Errorf("authenticated user has no right on this reservation: %w", apperrors.ErrUnauthorized)
)
