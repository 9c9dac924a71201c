package order

import (
	"errors"
	"fmt"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when attempting to use an
// improperly initialized LineItem. Line items must be created via the
// NewLineItem constructor.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"line item must be created via NewLineItem constructor")

// LineItem is one priced dish entry on an order. Line items are fixed at
// checkout: quantity, unit price and variant never change once the order
// exists. The unit price already includes any variant price modifier.
//
// LineItem is an immutable value object; the zero value is invalid and
// fails validation.
type LineItem struct { //nolint:recvcheck //using for validation
	dishID       kernel.UUID
	quantity     int
	unitPrice    float64
	variantLabel string
	guard        guard.ConstructorGuard
}

// NewLineItem creates a line item with the given dish, quantity and
// effective unit price. Quantity must be positive and unit price must not be
// negative. variantLabel is empty for the dish's default variant.
func NewLineItem(dishID kernel.UUID, quantity int, unitPrice float64, variantLabel string) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setDishID(dishID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	item.variantLabel = variantLabel
	return item, nil
}

// Validate checks if the LineItem was properly constructed via NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// DishID returns the ordered dish's identity.
func (i LineItem) DishID() kernel.UUID {
	return i.dishID
}

// Quantity returns how many units of the dish were ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the effective per-unit price, variant modifier included.
func (i LineItem) UnitPrice() float64 {
	return i.unitPrice
}

// VariantLabel returns the chosen variant's label, or the empty string for
// the default variant.
func (i LineItem) VariantLabel() string {
	return i.variantLabel
}

// Subtotal returns unit price times quantity.
func (i LineItem) Subtotal() float64 {
	return i.unitPrice * float64(i.quantity)
}

func (i *LineItem) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	i.dishID = dishID
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%f is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
