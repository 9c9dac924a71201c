package commands

import (
	"context"
	"errors"

	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/ports"
	"foodmarket/internal/pkg/errs"
)

// SaveDishCommandHandler processes menu entry creation and updates.
type SaveDishCommandHandler struct {
	dishRepo ports.DishRepository
}

// NewSaveDishCommandHandler creates a handler for saving menu entries.
func NewSaveDishCommandHandler(dishRepo ports.DishRepository) SaveDishCommandHandler {
	return SaveDishCommandHandler{dishRepo: dishRepo}
}

// Handle creates or updates the menu entry. A dish keeps its restaurant for
// life: saving an id that belongs to another restaurant's menu fails with
// ErrDishNotOwned and leaves the catalog unchanged.
func (h *SaveDishCommandHandler) Handle(ctx context.Context, cmd SaveDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	existing, err := h.dishRepo.Get(ctx, cmd.DishID())
	switch {
	case err == nil:
		if !existing.RestaurantID().IsEqual(cmd.RestaurantID()) {
			return ErrDishNotOwned
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// new dish
	default:
		return err
	}

	variants := make([]catalog.Variant, 0, len(cmd.Variants()))
	for _, v := range cmd.Variants() {
		variant, variantErr := catalog.NewVariant(v.Label, v.PriceModifier)
		if variantErr != nil {
			return variantErr
		}
		variants = append(variants, variant)
	}

	dish, err := catalog.NewDish(cmd.DishID(), cmd.RestaurantID(), cmd.Name(), cmd.BasePrice(), variants)
	if err != nil {
		return err
	}

	return h.dishRepo.Save(ctx, dish)
}
