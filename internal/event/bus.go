package event

import (
	"fmt"
	"sync"

	"green-wheels/internal/shared/util"
)

// Bus is an in-process publish/subscribe dispatcher for domain events.
//
// Delivery is synchronous: Publish invokes every handler registered for the
// payload's kind, in registration order, before returning. A handler may
// itself publish; the nested dispatch runs to completion before control
// returns to the outer handler, so cascades resolve depth-first on the
// caller's goroutine. Handler failures (returned errors and panics) are
// logged and never surfaced to the publisher, and never stop delivery to the
// remaining handlers of the same event.
type Bus struct {
	logger *util.Logger

	mu     sync.Mutex
	nextID int
	subs   map[Kind][]subscriber
}

type subscriber struct {
	id int
	fn func(Payload) error
}

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	kind Kind
	id   int
}

func NewBus(logger *util.Logger) *Bus {
	return &Bus{
		logger: logger,
		subs:   make(map[Kind][]subscriber),
	}
}

// Subscribe registers fn for the event kind determined by T. Handlers
// registered for the same kind run in registration order.
func Subscribe[T Payload](b *Bus, fn func(T) error) Subscription {
	var zero T
	kind := zero.Kind()

	return b.subscribe(kind, func(p Payload) error {
		payload, ok := p.(T)
		if !ok {
			return fmt.Errorf("event %s: unexpected payload type %T", kind, p)
		}
		return fn(payload)
	})
}

func (b *Bus) subscribe(kind Kind, fn func(Payload) error) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[kind] = append(b.subs[kind], subscriber{id: b.nextID, fn: fn})
	return Subscription{kind: kind, id: b.nextID}
}

// Unsubscribe removes a previously registered handler. Removing an unknown
// subscription is a no-op.
func (b *Bus) Unsubscribe(s Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[s.kind]
	for i, sub := range subs {
		if sub.id == s.id {
			b.subs[s.kind] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers p to every handler subscribed to its kind. The subscriber
// list is snapshotted before dispatch, so handlers are free to subscribe,
// unsubscribe, or publish without deadlocking the bus.
func (b *Bus) Publish(p Payload) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs[p.Kind()]))
	copy(subs, b.subs[p.Kind()])
	b.mu.Unlock()

	for _, sub := range subs {
		b.dispatch(p, sub)
	}
}

func (b *Bus) dispatch(p Payload, sub subscriber) {
	instance := fmt.Sprintf("EventBus.%s", p.Kind())

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error(instance, fmt.Errorf("handler panic: %v", r))
		}
	}()

	if err := sub.fn(p); err != nil {
		b.logger.Error(instance, fmt.Errorf("handler failed: %w", err))
	}
}
