package domain

import (
	"fmt"

	"green-wheels/internal/shared/apperrors"
)

var ErrProfileNotFound = fmt.Errorf("profile not found: %w", apperrors.ErrNotFound)
