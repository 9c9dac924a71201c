package cart

import (
	"errors"
	"fmt"
	"time"

	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory methods.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

// ErrRestaurantMismatch is the unwrap target for RestaurantMismatchError.
var ErrRestaurantMismatch = errors.New("cart holds items from another restaurant")

// RestaurantMismatchError reports an attempt to add a dish from a different
// restaurant than the one the cart's items belong to. The cart is left
// unchanged; callers should confirm the switch with the customer and retry
// with replace set, which clears the cart before adding.
type RestaurantMismatchError struct {
	CartRestaurantID kernel.UUID
	DishRestaurantID kernel.UUID
}

// NewRestaurantMismatchError creates a RestaurantMismatchError.
func NewRestaurantMismatchError(cartRestaurantID, dishRestaurantID kernel.UUID) *RestaurantMismatchError {
	return &RestaurantMismatchError{
		CartRestaurantID: cartRestaurantID,
		DishRestaurantID: dishRestaurantID,
	}
}

// Error implements the error interface.
func (e *RestaurantMismatchError) Error() string {
	return fmt.Sprintf("%s: cart belongs to %s, dish belongs to %s",
		ErrRestaurantMismatch, e.CartRestaurantID, e.DishRestaurantID)
}

// Unwrap returns the sentinel ErrRestaurantMismatch for errors.Is classification.
func (e *RestaurantMismatchError) Unwrap() error {
	return ErrRestaurantMismatch
}

// Item is one merged line of a cart, identified by the (dish, variant label)
// pair. The unit price was snapshotted from the catalog when the line was
// first added.
type Item struct {
	dishID       kernel.UUID
	dishName     string
	variantLabel string
	quantity     int
	unitPrice    float64
}

// RestoreItem reconstructs a cart line from persistence.
func RestoreItem(dishID kernel.UUID, dishName string, variantLabel string, quantity int, unitPrice float64) (Item, error) {
	if err := dishID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%f is negative", unitPrice))
	}

	return Item{
		dishID:       dishID,
		dishName:     dishName,
		variantLabel: variantLabel,
		quantity:     quantity,
		unitPrice:    unitPrice,
	}, nil
}

// DishID returns the dish the line refers to.
func (i Item) DishID() kernel.UUID {
	return i.dishID
}

// DishName returns the dish display name captured at add time.
func (i Item) DishName() string {
	return i.dishName
}

// VariantLabel returns the chosen variant's label, empty for the default.
func (i Item) VariantLabel() string {
	return i.variantLabel
}

// Quantity returns the merged quantity of the line.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the snapshotted per-unit price, variant modifier included.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns unit price times quantity.
func (i Item) Subtotal() float64 {
	return i.unitPrice * float64(i.quantity)
}

// Cart aggregates a customer's pending selection before checkout. A cart is
// identified by its customer: each customer has at most one cart. The cart
// enforces the single-restaurant rule and merges lines by the
// (dish, variant label) identity.
type Cart struct {
	customerID   kernel.UUID
	restaurantID *kernel.UUID
	items        []Item
	updatedAt    time.Time

	isConstructed bool
}

// NewCart creates an empty cart for the customer.
func NewCart(customerID kernel.UUID, now time.Time) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	return &Cart{
		customerID:    customerID,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence. A non-empty cart must
// carry its restaurant identity; an empty cart must not.
func RestoreCart(customerID kernel.UUID, restaurantID *kernel.UUID, items []Item, updatedAt time.Time) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	if len(items) > 0 && restaurantID == nil {
		return nil, errs.NewValueIsRequiredError("restaurantID")
	}
	if len(items) == 0 && restaurantID != nil {
		return nil, errs.NewValueIsInvalidError("restaurantID must be empty for an empty cart")
	}

	c := &Cart{
		customerID:    customerID,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return nil, err
		}
		id := *restaurantID
		c.restaurantID = &id
	}

	c.items = make([]Item, len(items))
	copy(c.items, items)

	return c, nil
}

// Validate ensures the Cart instance was properly constructed through one of
// its factory methods.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// CustomerID returns the owning customer's identity.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the cart's items belong to, or nil for
// an empty cart.
func (c *Cart) RestaurantID() *kernel.UUID {
	return c.restaurantID
}

// Items returns a copy of the cart's merged lines.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.quantity
	}
	return count
}

// Total returns the sum of subtotals over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// UpdatedAt returns the timestamp of the last cart mutation.
func (c *Cart) UpdatedAt() time.Time {
	return c.updatedAt
}

// AddItem adds quantity units of the dish's variant to the cart.
//
// If a line with the same (dish, variant label) identity already exists its
// quantity is increased; otherwise a new line is appended with the variant's
// effective price snapshotted from the dish.
//
// The single-restaurant rule applies: when the cart already holds items from
// another restaurant, AddItem fails with *RestaurantMismatchError and leaves
// the cart unchanged, unless replace is set, in which case the cart is
// cleared first and switches to the dish's restaurant. The replace flag is
// the caller's proof of customer confirmation.
func (c *Cart) AddItem(dish catalog.Dish, variantLabel string, quantity int, replace bool, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := dish.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	unitPrice, err := dish.EffectivePrice(variantLabel)
	if err != nil {
		return err
	}

	if c.restaurantID != nil && !c.restaurantID.IsEqual(dish.RestaurantID()) {
		if !replace {
			return NewRestaurantMismatchError(*c.restaurantID, dish.RestaurantID())
		}
		c.clear()
	}

	if c.restaurantID == nil {
		restaurantID := dish.RestaurantID()
		c.restaurantID = &restaurantID
	}

	for i := range c.items {
		if c.items[i].dishID.IsEqual(dish.ID()) && c.items[i].variantLabel == variantLabel {
			c.items[i].quantity += quantity
			c.updatedAt = now
			return nil
		}
	}

	c.items = append(c.items, Item{
		dishID:       dish.ID(),
		dishName:     dish.Name(),
		variantLabel: variantLabel,
		quantity:     quantity,
		unitPrice:    unitPrice,
	})
	c.updatedAt = now

	return nil
}

// RemoveItem deletes the line with the given (dish, variant label) identity.
// Removing an absent line is a no-op. When the last line is removed the cart
// becomes empty and drops its restaurant binding.
func (c *Cart) RemoveItem(dishID kernel.UUID, variantLabel string, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for i := range c.items {
		if c.items[i].dishID.IsEqual(dishID) && c.items[i].variantLabel == variantLabel {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.updatedAt = now
			break
		}
	}

	if len(c.items) == 0 {
		c.restaurantID = nil
	}

	return nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero
// or less removes the line. Returns an object-not-found error when no line
// matches the (dish, variant label) identity.
func (c *Cart) UpdateQuantity(dishID kernel.UUID, variantLabel string, quantity int, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if quantity <= 0 {
		return c.RemoveItem(dishID, variantLabel, now)
	}

	for i := range c.items {
		if c.items[i].dishID.IsEqual(dishID) && c.items[i].variantLabel == variantLabel {
			c.items[i].quantity = quantity
			c.updatedAt = now
			return nil
		}
	}

	return errs.NewObjectNotFoundError("cart item", dishID)
}

// Clear removes all lines and drops the restaurant binding.
func (c *Cart) Clear(now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.clear()
	c.updatedAt = now
	return nil
}

func (c *Cart) clear() {
	c.items = nil
	c.restaurantID = nil
}
