package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a delivery partner's request to take
// exclusive ownership of a ready order.
//
// Example:
//
//	cmd, err := NewClaimOrderCommand(orderID, partnerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewClaimOrderCommandHandler(uowFactory, publisher)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrClaimConflict) {
//	    // another partner was faster; refresh the available list
//	}
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a claim command.
func NewClaimOrderCommand(orderID kernel.UUID, partnerID kernel.UUID) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerID(partnerID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order to claim.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the claiming delivery partner's identity.
func (c ClaimOrderCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}
