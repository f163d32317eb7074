package domain

import (
	"fmt"

	"green-wheels/internal/shared/apperrors"
)

// ErrEvaluationNotFound also covers replays of an already consumed token:
// submission lookups filter on done == false.
var ErrEvaluationNotFound = fmt.Errorf("evaluation not found: %w", apperrors.ErrNotFound)
