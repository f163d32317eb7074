package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"green-wheels/internal/cascade"
	chatapp "green-wheels/internal/chat/app"
	chatdomain "green-wheels/internal/chat/domain"
	evaluationapp "green-wheels/internal/evaluation/app"
	evaluationdomain "green-wheels/internal/evaluation/domain"
	"green-wheels/internal/event"
	reservationapp "green-wheels/internal/reservation/app"
	reservationdomain "green-wheels/internal/reservation/domain"
	rideapp "green-wheels/internal/ride/app"
	ridedomain "green-wheels/internal/ride/domain"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
	userapp "green-wheels/internal/user/app"
	userdomain "green-wheels/internal/user/domain"
)

type world struct {
	bus          *event.Bus
	users        *userapp.UserService
	rides        *rideapp.RideService
	reservations *reservationapp.ReservationService
	evaluations  *evaluationapp.EvaluationService
	chat         *chatapp.ChatService
}

// newWorld wires every service onto one bus, the way main does.
func newWorld(t *testing.T) *world {
	t.Helper()

	db, err := storage.NewDatabase(storage.NewFilePersistence(filepath.Join(t.TempDir(), "db.json")))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}

	users, err := storage.NewTable[userdomain.User](db, storage.UsersTable)
	if err != nil {
		t.Fatal(err)
	}
	rides, err := storage.NewTable[ridedomain.Ride](db, storage.RidesTable)
	if err != nil {
		t.Fatal(err)
	}
	reservations, err := storage.NewTable[reservationdomain.Reservation](db, storage.ReservationsTable)
	if err != nil {
		t.Fatal(err)
	}
	messages, err := storage.NewTable[chatdomain.Message](db, storage.MessagesTable)
	if err != nil {
		t.Fatal(err)
	}
	evaluations, err := storage.NewTable[evaluationdomain.Evaluation](db, storage.EvaluationsTable)
	if err != nil {
		t.Fatal(err)
	}

	log := util.New()
	bus := event.NewBus(log)

	userService := userapp.NewUserService(users, bus, log)
	reservationService := reservationapp.NewReservationService(reservations, bus, log)
	rideService := rideapp.NewRideService(rides, bus, reservationService, userService, log)
	evaluationService := evaluationapp.NewEvaluationService(evaluations, bus, log)
	chatService := chatapp.NewChatService(messages, bus, nil, log)
	cascade.New(rides, reservations, bus, log)

	return &world{
		bus:          bus,
		users:        userService,
		rides:        rideService,
		reservations: reservationService,
		evaluations:  evaluationService,
		chat:         chatService,
	}
}

// The full ride lifecycle: offer, reserve, accept, conclude, rate.
func TestRideLifecycle(t *testing.T) {
	w := newWorld(t)

	alice, _ := w.users.InsertUser(userdomain.User{Username: "alice"})
	bob, _ := w.users.InsertUser(userdomain.User{Username: "bob"})
	carol, _ := w.users.InsertUser(userdomain.User{Username: "carol"})

	rideID, err := w.rides.CreateRide(ridedomain.Ride{
		DriverID:      alice,
		StartLocation: "Milan",
		EndLocation:   "Turin",
		Date:          "2026-09-01",
		Time:          "08:30",
	})
	if err != nil {
		t.Fatalf("CreateRide: %v", err)
	}

	// Bob and Carol both reserve; Alice accepts only Bob.
	bobRes, err := w.reservations.Create(rideID, bob)
	if err != nil {
		t.Fatalf("Create reservation: %v", err)
	}
	if _, err := w.reservations.Create(rideID, carol); err != nil {
		t.Fatalf("Create reservation: %v", err)
	}

	reservation, _ := w.reservations.ReservationByID(bobRes)
	ride, _ := w.rides.RideByID(rideID)
	notification := event.ReservationAccepted{
		RiderID:        reservation.UserID,
		StartLocation:  ride.StartLocation,
		EndLocation:    ride.EndLocation,
		Date:           ride.Date,
		Time:           ride.Time,
		DriverUsername: w.users.UsernameOf(ride.DriverID),
	}
	if err := w.reservations.Accept(reservation, w.rides.OfferedRideIDs(alice), notification); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	// Bob got the acceptance notice from the system sender.
	bobInbox := w.chat.MessagesFor(bob)
	if len(bobInbox) != 1 || bobInbox[0].From != chatdomain.SystemSenderID {
		t.Fatalf("bob inbox after accept = %+v", bobInbox)
	}
	if !strings.Contains(bobInbox[0].Body, "accepted") {
		t.Fatalf("acceptance notice body = %q", bobInbox[0].Body)
	}

	if err := w.rides.Start(rideID, alice); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.rides.Conclude(rideID, alice); err != nil {
		t.Fatalf("Conclude: %v", err)
	}

	// Only the accepted passenger is prompted to rate.
	bobInbox = w.chat.MessagesFor(bob)
	if len(bobInbox) != 2 {
		t.Fatalf("bob inbox after conclude = %d messages, want 2", len(bobInbox))
	}
	prompt := bobInbox[1]
	if prompt.Token == "" {
		t.Fatal("rating prompt has no token")
	}
	if carolInbox := w.chat.MessagesFor(carol); len(carolInbox) != 0 {
		t.Fatalf("carol inbox = %+v, want empty (never accepted)", carolInbox)
	}

	// Bob rates the ride through the prompt's token.
	if err := w.evaluations.Submit(prompt.Token, 4); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	driver, _ := w.users.UserByID(alice)
	if driver.AverageRate != 4 || driver.NumberOfEvaluations != 1 {
		t.Fatalf("driver after rating = %+v", driver)
	}

	// The token is spent.
	if err := w.evaluations.Submit(prompt.Token, 5); !errors.Is(err, evaluationdomain.ErrEvaluationNotFound) {
		t.Fatalf("second Submit = %v, want ErrEvaluationNotFound", err)
	}
}

// Deleting a profile takes the user's rides and their reservations with it.
func TestProfileDeletionCascade(t *testing.T) {
	w := newWorld(t)

	alice, _ := w.users.InsertUser(userdomain.User{Username: "alice"})
	bob, _ := w.users.InsertUser(userdomain.User{Username: "bob"})

	rideID, _ := w.rides.CreateRide(ridedomain.Ride{DriverID: alice})
	w.reservations.Create(rideID, bob)

	// ProfileService.Delete publishes exactly this after removing the row.
	w.bus.Publish(event.ProfileEliminated{UserID: alice})

	if got := w.rides.OfferedRides(alice); len(got) != 0 {
		t.Fatalf("rides after profile elimination = %+v, want none", got)
	}
	if inbox := w.reservations.ListForOwnedRides([]int{rideID}); len(inbox) != 0 {
		t.Fatalf("reservations after profile elimination = %+v, want none", inbox)
	}
}
