package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrCartIsEmpty               = errors.New("cart is empty")
)

// CheckoutCommand represents a request to turn a customer's cart into an
// order. The order identifier is supplied by the caller so retried checkout
// requests stay idempotent at the persistence layer.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutCommand(orderID, customerID, "1 Main Street")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command.
// Validates that identities are valid and the address is not empty.
func NewCheckoutCommand(orderID kernel.UUID, customerID kernel.UUID, deliveryAddress string) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created with.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identity.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryAddress returns the free-text delivery destination.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.deliveryAddress = deliveryAddress
	return nil
}
