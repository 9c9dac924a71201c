package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var ErrUpdateCartQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartQuantityCommand must be created via NewUpdateCartQuantityCommand constructor",
)

// UpdateCartQuantityCommand represents a request to set the quantity of an
// existing cart line. A quantity of zero or less removes the line.
type UpdateCartQuantityCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	dishID       kernel.UUID
	variantLabel string
	quantity     int

	guard guard.ConstructorGuard
}

// NewUpdateCartQuantityCommand creates a command to change a line quantity.
// Unlike AddCartItemCommand, any quantity is accepted: non-positive values
// are the removal request.
func NewUpdateCartQuantityCommand(
	customerID kernel.UUID,
	dishID kernel.UUID,
	variantLabel string,
	quantity int,
) (UpdateCartQuantityCommand, error) {
	cmd := UpdateCartQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDishID(dishID),
	); err != nil {
		return UpdateCartQuantityCommand{}, err
	}

	cmd.variantLabel = variantLabel
	cmd.quantity = quantity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartQuantityCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identity.
func (c UpdateCartQuantityCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DishID returns the dish of the line to update.
func (c UpdateCartQuantityCommand) DishID() kernel.UUID {
	return c.dishID
}

// VariantLabel returns the variant label of the line to update.
func (c UpdateCartQuantityCommand) VariantLabel() string {
	return c.variantLabel
}

// Quantity returns the requested quantity; zero or less means removal.
func (c UpdateCartQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartQuantityCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *UpdateCartQuantityCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}
