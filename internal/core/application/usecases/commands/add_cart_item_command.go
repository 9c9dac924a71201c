package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to add a dish to a customer's cart.
// The replace flag carries the customer's confirmation to clear the cart when
// the dish belongs to a different restaurant than the current cart contents.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(customerID, dishID, "large", 2, false)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAddCartItemCommandHandler(uowFactory, dishRepo)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, cart.ErrRestaurantMismatch) {
//	    // ask the customer to confirm and retry with replace set
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	dishID       kernel.UUID
	variantLabel string
	quantity     int
	replace      bool

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a dish to the cart.
// Validates that identities are valid and quantity is positive.
func NewAddCartItemCommand(
	customerID kernel.UUID,
	dishID kernel.UUID,
	variantLabel string,
	quantity int,
	replace bool,
) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDishID(dishID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	cmd.variantLabel = variantLabel
	cmd.replace = replace

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identity.
func (c AddCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DishID returns the dish to add.
func (c AddCartItemCommand) DishID() kernel.UUID {
	return c.dishID
}

// VariantLabel returns the chosen variant label, empty for the default.
func (c AddCartItemCommand) VariantLabel() string {
	return c.variantLabel
}

// Quantity returns the number of units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

// Replace reports whether the customer confirmed clearing the cart on a
// restaurant switch.
func (c AddCartItemCommand) Replace() bool {
	return c.replace
}

func (c *AddCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *AddCartItemCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
