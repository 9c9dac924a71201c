package ports

import (
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
)

// OrderEvent describes one status change of an order, published after the
// change has been committed.
type OrderEvent struct {
	OrderID    kernel.UUID
	Status     order.Status
	OccurredAt time.Time
}

// OrderEventPublisher fans a committed status change out to subscribers.
// Publishing must never block the caller; slow subscribers miss events
// rather than stalling command handling.
type OrderEventPublisher interface {
	Publish(event OrderEvent)
}

// OrderEventSubscriber delivers status changes of one order as they happen.
// Used by the live tracking stream.
type OrderEventSubscriber interface {
	// Subscribe returns a channel of events for the order and a cancel
	// function releasing the subscription. The channel is closed after
	// cancellation.
	Subscribe(orderID kernel.UUID) (<-chan OrderEvent, func())
}
