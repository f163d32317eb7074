package event

import (
	"errors"
	"reflect"
	"testing"

	"green-wheels/internal/shared/util"
)

func newTestBus() *Bus {
	return NewBus(util.New())
}

func TestPublishRunsHandlersInRegistrationOrder(t *testing.T) {
	bus := newTestBus()

	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		Subscribe(bus, func(RideEliminated) error {
			order = append(order, i)
			return nil
		})
	}

	bus.Publish(RideEliminated{RideID: 7})

	if want := []int{1, 2, 3}; !reflect.DeepEqual(order, want) {
		t.Fatalf("handler order = %v, want %v", order, want)
	}
}

func TestPublishDeliversOnlyToMatchingKind(t *testing.T) {
	bus := newTestBus()

	var rides, profiles int
	Subscribe(bus, func(RideEliminated) error { rides++; return nil })
	Subscribe(bus, func(ProfileEliminated) error { profiles++; return nil })

	bus.Publish(RideEliminated{RideID: 1})
	bus.Publish(RideEliminated{RideID: 2})

	if rides != 2 {
		t.Errorf("ride handler ran %d times, want 2", rides)
	}
	if profiles != 0 {
		t.Errorf("profile handler ran %d times, want 0", profiles)
	}
}

func TestNestedPublishResolvesDepthFirst(t *testing.T) {
	bus := newTestBus()

	var trace []string
	Subscribe(bus, func(ProfileEliminated) error {
		trace = append(trace, "profile:start")
		bus.Publish(RideEliminated{RideID: 1})
		trace = append(trace, "profile:end")
		return nil
	})
	Subscribe(bus, func(RideEliminated) error {
		trace = append(trace, "ride")
		return nil
	})

	bus.Publish(ProfileEliminated{UserID: 1})

	want := []string{"profile:start", "ride", "profile:end"}
	if !reflect.DeepEqual(trace, want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
}

func TestHandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := newTestBus()

	var reached bool
	Subscribe(bus, func(RideEliminated) error { return errors.New("boom") })
	Subscribe(bus, func(RideEliminated) error { reached = true; return nil })

	bus.Publish(RideEliminated{RideID: 1})

	if !reached {
		t.Fatal("handler after a failing one did not run")
	}
}

func TestHandlerPanicDoesNotStopDelivery(t *testing.T) {
	bus := newTestBus()

	var reached bool
	Subscribe(bus, func(RideEliminated) error { panic("boom") })
	Subscribe(bus, func(RideEliminated) error { reached = true; return nil })

	bus.Publish(RideEliminated{RideID: 1})

	if !reached {
		t.Fatal("handler after a panicking one did not run")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := newTestBus()

	var calls int
	sub := Subscribe(bus, func(RideEliminated) error { calls++; return nil })

	bus.Publish(RideEliminated{RideID: 1})
	bus.Unsubscribe(sub)
	bus.Publish(RideEliminated{RideID: 2})

	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func TestUnsubscribeUnknownIsNoOp(t *testing.T) {
	bus := newTestBus()

	sub := Subscribe(bus, func(RideEliminated) error { return nil })
	bus.Unsubscribe(sub)
	bus.Unsubscribe(sub)
	bus.Unsubscribe(Subscription{kind: KindRideConcluded, id: 99})
}

func TestHandlerMayUnsubscribeDuringDispatch(t *testing.T) {
	bus := newTestBus()

	var calls int
	var sub Subscription
	sub = Subscribe(bus, func(RideEliminated) error {
		calls++
		bus.Unsubscribe(sub)
		return nil
	})

	bus.Publish(RideEliminated{RideID: 1})
	bus.Publish(RideEliminated{RideID: 2})

	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}
