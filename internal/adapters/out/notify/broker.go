// Package notify provides an in-process event broker fanning committed order
// status changes out to live tracking subscribers. Delivery is best effort:
// the broker never blocks a publisher, so a subscriber that stops draining
// its channel misses events instead of stalling command handling. Clients
// recover by re-reading the order's persisted status history.
package notify

import (
	"sync"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/ports"
)

// subscriberBufferSize bounds the per-subscriber channel. An order passes
// through at most eight statuses, so a small buffer absorbs a full lifecycle.
const subscriberBufferSize = 16

// Broker implements both OrderEventPublisher and OrderEventSubscriber over
// in-process channels, keyed by order. Safe for concurrent use.
type Broker struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan ports.OrderEvent
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[int]chan ports.OrderEvent),
	}
}

// Publish delivers the event to every subscriber of its order without
// blocking. Subscribers with a full buffer are skipped.
func (b *Broker) Publish(event ports.OrderEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs[event.OrderID.String()] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe returns a channel of events for the order and a cancel function.
// The channel is closed after cancellation; calling cancel more than once is
// safe.
func (b *Broker) Subscribe(orderID kernel.UUID) (<-chan ports.OrderEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := orderID.String()
	id := b.nextID
	b.nextID++

	ch := make(chan ports.OrderEvent, subscriberBufferSize)
	if b.subs[key] == nil {
		b.subs[key] = make(map[int]chan ports.OrderEvent)
	}
	b.subs[key][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			delete(b.subs[key], id)
			if len(b.subs[key]) == 0 {
				delete(b.subs, key)
			}
			close(ch)
		})
	}

	return ch, cancel
}
