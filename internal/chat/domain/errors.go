package domain

import (
	"fmt"

	"green-wheels/internal/shared/apperrors"
)

var (
	ErrReadMessages = fmt.Errorf("impossible to read messages: %w", apperrors.ErrInternal)
	ErrWriteMessage = fmt.Errorf("impossible to write message: %w", apperrors.ErrInternal)
)
