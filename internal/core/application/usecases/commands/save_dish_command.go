package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrSaveDishCommandIsNotConstructed = errors.New(
		"SaveDishCommand must be created via NewSaveDishCommand constructor",
	)
	ErrDishNameIsRequired  = errors.New("dish name must not be empty")
	ErrBasePriceIsNegative = errors.New("base price must not be negative")
	ErrDishNotOwned        = errors.New("dish belongs to another restaurant")
)

// SaveDishVariant is one selectable option of the dish being saved.
type SaveDishVariant struct {
	Label         string
	PriceModifier float64
}

// SaveDishCommand represents a restaurant creating or updating one of its
// menu entries. Saving replaces the dish wholesale: name, base price and the
// full variant list.
//
// Example:
//
//	cmd, err := NewSaveDishCommand(dishID, restaurantID, "Burger", 9.00,
//	    []SaveDishVariant{{Label: "large", PriceModifier: 3.50}})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSaveDishCommandHandler(dishRepo)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDishNotOwned) {
//	    // the dish id is taken by another restaurant's menu
//	}
type SaveDishCommand struct { //nolint:recvcheck //using for validation
	dishID       kernel.UUID
	restaurantID kernel.UUID
	name         string
	basePrice    float64
	variants     []SaveDishVariant

	guard guard.ConstructorGuard
}

// NewSaveDishCommand creates a command to create or update a menu entry.
// Validates that identities are valid, the name is present and the base
// price is not negative.
func NewSaveDishCommand(
	dishID kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	basePrice float64,
	variants []SaveDishVariant,
) (SaveDishCommand, error) {
	cmd := SaveDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDishID(dishID),
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setBasePrice(basePrice),
	); err != nil {
		return SaveDishCommand{}, err
	}

	cmd.variants = make([]SaveDishVariant, len(variants))
	copy(cmd.variants, variants)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveDishCommand) Validate() error {
	return c.guard.Validate(ErrSaveDishCommandIsNotConstructed)
}

// DishID returns the identity of the dish to create or update.
func (c SaveDishCommand) DishID() kernel.UUID {
	return c.dishID
}

// RestaurantID returns the restaurant managing the dish.
func (c SaveDishCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the dish's display name.
func (c SaveDishCommand) Name() string {
	return c.name
}

// BasePrice returns the price of the default variant.
func (c SaveDishCommand) BasePrice() float64 {
	return c.basePrice
}

// Variants returns a copy of the variant list to store.
func (c SaveDishCommand) Variants() []SaveDishVariant {
	variants := make([]SaveDishVariant, len(c.variants))
	copy(variants, c.variants)
	return variants
}

func (c *SaveDishCommand) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return err
	}
	c.dishID = dishID
	return nil
}

func (c *SaveDishCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *SaveDishCommand) setName(name string) error {
	if name == "" {
		return ErrDishNameIsRequired
	}
	c.name = name
	return nil
}

func (c *SaveDishCommand) setBasePrice(basePrice float64) error {
	if basePrice < 0 {
		return ErrBasePriceIsNegative
	}
	c.basePrice = basePrice
	return nil
}
