package domain

import "green-wheels/internal/storage"

// User carries the account plus the driver rating projection. AverageRate is
// the arithmetic mean of every rating folded in so far and
// NumberOfEvaluations only ever grows.
type User struct {
	storage.Record
	Username            string  `json:"username"`
	Email               string  `json:"email"`
	Password            string  `json:"password"`
	Community           *int    `json:"community,omitempty"`
	AverageRate         float64 `json:"averageRate"`
	NumberOfEvaluations int     `json:"numberOfEvaluations"`
}
