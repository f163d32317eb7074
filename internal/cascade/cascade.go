// Package cascade removes dependent rows when an entity is eliminated.
//
// The elimination edges form a fixed, finite DAG:
//
//	profile -> ride -> reservation
//
// Each handler removes exactly one level of dependents and republishes only
// the next level's elimination event, so dispatch cannot loop. Deletions are
// best-effort: a failure is logged and the remaining deletions proceed.
package cascade

import (
	"fmt"

	"green-wheels/internal/event"
	reservation "green-wheels/internal/reservation/domain"
	ride "green-wheels/internal/ride/domain"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
)

type Consistency struct {
	rides        *storage.Table[ride.Ride, *ride.Ride]
	reservations *storage.Table[reservation.Reservation, *reservation.Reservation]
	bus          *event.Bus
	logger       *util.Logger
}

func New(
	rides *storage.Table[ride.Ride, *ride.Ride],
	reservations *storage.Table[reservation.Reservation, *reservation.Reservation],
	bus *event.Bus,
	logger *util.Logger,
) *Consistency {
	c := &Consistency{rides: rides, reservations: reservations, bus: bus, logger: logger}
	event.Subscribe(bus, c.onProfileEliminated)
	event.Subscribe(bus, c.onRideEliminated)
	return c
}

// onProfileEliminated removes every ride driven by the eliminated user and
// publishes RideEliminated per ride, which in turn triggers the reservation
// cleanup below.
func (c *Consistency) onProfileEliminated(ev event.ProfileEliminated) error {
	instance := "Cascade.ProfileEliminated"

	for _, r := range c.rides.FindAll() {
		if r.DriverID != ev.UserID {
			continue
		}
		if err := c.rides.Delete(r.ID); err != nil {
			c.logger.Error(instance, fmt.Errorf("failed to delete ride %d: %w", r.ID, err))
			continue
		}
		c.bus.Publish(event.RideEliminated{RideID: r.ID})
	}
	return nil
}

// onRideEliminated removes every reservation on the eliminated ride.
// Reservations have no dependents, so nothing is republished.
func (c *Consistency) onRideEliminated(ev event.RideEliminated) error {
	instance := "Cascade.RideEliminated"

	for _, r := range c.reservations.FindAll() {
		if r.RideID != ev.RideID {
			continue
		}
		if err := c.reservations.Delete(r.ID); err != nil {
			c.logger.Error(instance, fmt.Errorf("failed to delete reservation %d: %w", r.ID, err))
		}
	}
	return nil
}
