package domain

import "green-wheels/internal/storage"

type Reservation struct {
	storage.Record
	RideID   int  `json:"rideId"`
	UserID   int  `json:"userId"`
	Accepted bool `json:"accepted"`
}
