package cascade

import (
	"path/filepath"
	"testing"

	"green-wheels/internal/event"
	reservation "green-wheels/internal/reservation/domain"
	ride "green-wheels/internal/ride/domain"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
)

type fixture struct {
	rides        *storage.Table[ride.Ride, *ride.Ride]
	reservations *storage.Table[reservation.Reservation, *reservation.Reservation]
	bus          *event.Bus
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db, err := storage.NewDatabase(storage.NewFilePersistence(filepath.Join(t.TempDir(), "db.json")))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	rides, err := storage.NewTable[ride.Ride](db, storage.RidesTable)
	if err != nil {
		t.Fatalf("rides table: %v", err)
	}
	reservations, err := storage.NewTable[reservation.Reservation](db, storage.ReservationsTable)
	if err != nil {
		t.Fatalf("reservations table: %v", err)
	}

	log := util.New()
	bus := event.NewBus(log)
	New(rides, reservations, bus, log)

	return fixture{rides: rides, reservations: reservations, bus: bus}
}

func TestRideEliminationRemovesItsReservations(t *testing.T) {
	f := newFixture(t)

	f.reservations.Insert(reservation.Reservation{RideID: 1, UserID: 10})
	f.reservations.Insert(reservation.Reservation{RideID: 1, UserID: 11})
	f.reservations.Insert(reservation.Reservation{RideID: 2, UserID: 10})

	f.bus.Publish(event.RideEliminated{RideID: 1})

	left := f.reservations.FindAll()
	if len(left) != 1 || left[0].RideID != 2 {
		t.Fatalf("remaining reservations = %+v, want only the ride 2 one", left)
	}
}

func TestProfileEliminationCascadesThroughRides(t *testing.T) {
	f := newFixture(t)

	rideA, _ := f.rides.Insert(ride.Ride{DriverID: 1})
	rideB, _ := f.rides.Insert(ride.Ride{DriverID: 1})
	kept, _ := f.rides.Insert(ride.Ride{DriverID: 2})

	f.reservations.Insert(reservation.Reservation{RideID: rideA, UserID: 10})
	f.reservations.Insert(reservation.Reservation{RideID: rideB, UserID: 11})
	f.reservations.Insert(reservation.Reservation{RideID: kept, UserID: 12})

	f.bus.Publish(event.ProfileEliminated{UserID: 1})

	rides := f.rides.FindAll()
	if len(rides) != 1 || rides[0].ID != kept {
		t.Fatalf("remaining rides = %+v, want only ride %d", rides, kept)
	}

	reservations := f.reservations.FindAll()
	if len(reservations) != 1 || reservations[0].RideID != kept {
		t.Fatalf("remaining reservations = %+v, want only the one on ride %d", reservations, kept)
	}
}

func TestCascadeDoesNotRepublishReservationEliminated(t *testing.T) {
	f := newFixture(t)

	f.reservations.Insert(reservation.Reservation{RideID: 1, UserID: 10})

	var fired int
	event.Subscribe(f.bus, func(event.ReservationEliminated) error { fired++; return nil })

	f.bus.Publish(event.RideEliminated{RideID: 1})

	if fired != 0 {
		t.Fatalf("ReservationEliminated fired %d times during cascade, want 0", fired)
	}
}

func TestProfileEliminationForUserWithoutRidesIsHarmless(t *testing.T) {
	f := newFixture(t)

	f.rides.Insert(ride.Ride{DriverID: 2})
	f.bus.Publish(event.ProfileEliminated{UserID: 1})

	if len(f.rides.FindAll()) != 1 {
		t.Fatal("unrelated ride was deleted")
	}
}
