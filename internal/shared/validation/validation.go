package validation

import (
	"errors"
	"fmt"
)

// ValidateCoordinates validates latitude and longitude values.
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateRating validates a driver rating submission.
func ValidateRating(rating float64) error {
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

// ValidateStringNotEmpty validates that a string is not empty.
func ValidateStringNotEmpty(value, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateID validates a row id coming from a request path or body.
func ValidateID(id int, fieldName string) error {
	if id < 0 {
		return fmt.Errorf("%s must be non-negative", fieldName)
	}
	return nil
}
