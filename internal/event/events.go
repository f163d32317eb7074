package event

// Kind identifies a domain event type on the bus.
type Kind string

const (
	KindProfileEliminated     Kind = "ProfileEliminated"
	KindRideEliminated        Kind = "RideEliminated"
	KindReservationAccepted   Kind = "ReservationAccepted"
	KindReservationEliminated Kind = "ReservationEliminated"
	KindRideConcluded         Kind = "RideConcluded"
	KindDriverEvaluated       Kind = "DriverEvaluated"
)

// Payload is implemented by exactly one struct per event kind, so a handler's
// signature pins down the event it receives at compile time.
type Payload interface {
	Kind() Kind
}

// ProfileEliminated fires after a user profile row has been removed.
type ProfileEliminated struct {
	UserID int
}

func (ProfileEliminated) Kind() Kind { return KindProfileEliminated }

// RideEliminated fires after a ride row has been removed.
type RideEliminated struct {
	RideID int
}

func (RideEliminated) Kind() Kind { return KindRideEliminated }

// ReservationAccepted carries everything needed to notify the rider.
type ReservationAccepted struct {
	RiderID        int
	StartLocation  string
	EndLocation    string
	Date           string
	Time           string
	DriverUsername string
	StartLng       float64
	StartLat       float64
}

func (ReservationAccepted) Kind() Kind { return KindReservationAccepted }

// ReservationEliminated fires after a reservation row has been removed by its
// driver (cascade deletions do not republish it).
type ReservationEliminated struct {
	ReservationID int
}

func (ReservationEliminated) Kind() Kind { return KindReservationEliminated }

// RideConcluded fires when a driver concludes a ride. Token correlates the
// pending evaluation with the rating prompts sent to the passengers.
type RideConcluded struct {
	DriverID       int
	DriverUsername string
	StartLocation  string
	EndLocation    string
	Passengers     []int
	Token          string
}

func (RideConcluded) Kind() Kind { return KindRideConcluded }

// DriverEvaluated fires when a rider submits a rating for a concluded ride.
type DriverEvaluated struct {
	DriverID int
	Rating   float64
}

func (DriverEvaluated) Kind() Kind { return KindDriverEvaluated }
