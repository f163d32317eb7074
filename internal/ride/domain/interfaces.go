package domain

// PassengerLister reports the riders holding an accepted reservation on a
// ride. Implemented by the reservation service; the ride service only ever
// reads through it.
type PassengerLister interface {
	AcceptedRiderIDs(rideID int) []int
}

// UserDirectory resolves display names for event payloads.
type UserDirectory interface {
	UsernameOf(userID int) string
}
