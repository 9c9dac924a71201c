package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status on behalf of an authenticated actor. Whether the
// transition is legal and whether the actor may trigger it is decided by the
// order aggregate, not the command.
//
// Example:
//
//	restaurant, _ := actor.NewActor(restaurantID, actor.Restaurant)
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.Confirmed, restaurant)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, publisher)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrForbidden) {
//	    // actor may not perform this transition
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status change command.
func NewChangeOrderStatusCommand(orderID kernel.UUID, target order.Status, by actor.Actor) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setBy(by),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// By returns the actor requesting the transition.
func (c ChangeOrderStatusCommand) By() actor.Actor {
	return c.by
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *ChangeOrderStatusCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	c.by = by
	return nil
}
