package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to remove one cart line,
// identified by the (dish, variant label) pair. Removing an absent line is
// not an error.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	dishID       kernel.UUID
	variantLabel string

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
func NewRemoveCartItemCommand(customerID kernel.UUID, dishID kernel.UUID, variantLabel string) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDishID(dishID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	cmd.variantLabel = variantLabel

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identity.
func (c RemoveCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DishID returns the dish of the line to remove.
func (c RemoveCartItemCommand) DishID() kernel.UUID {
	return c.dishID
}

// VariantLabel returns the variant label of the line to remove.
func (c RemoveCartItemCommand) VariantLabel() string {
	return c.variantLabel
}

func (c *RemoveCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *RemoveCartItemCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}
