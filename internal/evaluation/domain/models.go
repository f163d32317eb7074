package domain

import "green-wheels/internal/storage"

// Evaluation is the pending rating request minted when a ride concludes.
// Token is single-use: Done flips false -> true exactly once.
type Evaluation struct {
	storage.Record
	DriverID int    `json:"driverId"`
	Token    string `json:"token"`
	Done     bool   `json:"done"`
}
