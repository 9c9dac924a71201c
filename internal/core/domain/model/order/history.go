package order

import (
	"fmt"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
)

// StatusChange is one append-only entry of an order's status history.
// An entry is recorded every time the order's status changes; entries are
// never mutated or deleted. The ordered entries for an order always form a
// valid walk through the state machine starting at Pending.
type StatusChange struct {
	orderID    kernel.UUID
	status     Status
	occurredAt time.Time
	note       string
}

// NewStatusChange creates a history entry for the given order and status.
func NewStatusChange(orderID kernel.UUID, status Status, occurredAt time.Time, note string) (StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := status.Validate(); err != nil {
		return StatusChange{}, err
	}
	if occurredAt.IsZero() {
		return StatusChange{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return StatusChange{
		orderID:    orderID,
		status:     status,
		occurredAt: occurredAt,
		note:       note,
	}, nil
}

// OrderID returns the order the entry belongs to.
func (c StatusChange) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status the order entered.
func (c StatusChange) Status() Status {
	return c.status
}

// OccurredAt returns when the status change happened.
func (c StatusChange) OccurredAt() time.Time {
	return c.occurredAt
}

// Note returns the optional free-text annotation, empty when absent.
func (c StatusChange) Note() string {
	return c.note
}

// String returns a human-readable representation for logs.
func (c StatusChange) String() string {
	return fmt.Sprintf("StatusChange(%s -> %s at %s)", c.orderID, c.status, c.occurredAt.Format(time.RFC3339))
}
