package commands

import (
	"errors"
	"time"

	"foodmarket/internal/pkg/guard"
)

var (
	ErrRejectStaleOrdersCommandIsNotConstructed = errors.New(
		"RejectStaleOrdersCommand must be created via NewRejectStaleOrdersCommand constructor",
	)
	ErrMaxPendingAgeIsInvalid = errors.New("max pending age must be greater than 0")
)

// RejectStaleOrdersCommand represents a request to auto-reject pending
// orders the restaurant never reacted to. Issued periodically by the
// background sweep rather than by a user.
type RejectStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxPendingAge time.Duration

	guard guard.ConstructorGuard
}

// NewRejectStaleOrdersCommand creates a sweep command. Orders pending longer
// than maxPendingAge are rejected on the restaurant's behalf.
func NewRejectStaleOrdersCommand(maxPendingAge time.Duration) (RejectStaleOrdersCommand, error) {
	cmd := RejectStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaxPendingAge(maxPendingAge); err != nil {
		return RejectStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRejectStaleOrdersCommandIsNotConstructed)
}

// MaxPendingAge returns how long an order may stay pending before the sweep
// rejects it.
func (c RejectStaleOrdersCommand) MaxPendingAge() time.Duration {
	return c.maxPendingAge
}

func (c *RejectStaleOrdersCommand) setMaxPendingAge(maxPendingAge time.Duration) error {
	if maxPendingAge <= 0 {
		return ErrMaxPendingAgeIsInvalid
	}
	c.maxPendingAge = maxPendingAge
	return nil
}
