package domain

import (
	"fmt"

	"green-wheels/internal/shared/apperrors"
)

var (
	ErrRideNotFound    = fmt.Errorf("ride not found: %w", apperrors.ErrNotFound)
	ErrNotRideOwner    = fmt.Errorf("user is not the ride owner: %w", apperrors.ErrUnauthorized)
	ErrProfileRequired = fmt.Errorf("ride creation needs a user profile: %w", apperrors.ErrConflict)
)
