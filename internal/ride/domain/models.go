package domain

import "green-wheels/internal/storage"

// State is the ride lifecycle position. It only ever advances
// Ready -> Started -> Concluded.
type State string

const (
	StateReady     State = "Ready"
	StateStarted   State = "Started"
	StateConcluded State = "Concluded"
)

type Ride struct {
	storage.Record
	DriverID      int     `json:"driverId"`
	CommunityID   *int    `json:"communityId,omitempty"`
	StartLocation string  `json:"startLocation"`
	EndLocation   string  `json:"endLocation"`
	StartLat      float64 `json:"startLat"`
	StartLng      float64 `json:"startLng"`
	EndLat        float64 `json:"endLat"`
	EndLng        float64 `json:"endLng"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	State         State   `json:"state"`
}
