package domain

import (
	"fmt"

	"green-wheels/internal/shared/apperrors"
)

var ErrUserNotFound = fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
