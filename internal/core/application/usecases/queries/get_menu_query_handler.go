package queries

import (
	"context"

	"foodmarket/internal/core/ports"
)

// GetMenuQueryHandler retrieves restaurant menus through the dish catalog.
// Variant prices are resolved through the dish so the pricing rule, base
// price plus modifier floored at zero, stays in one place.
type GetMenuQueryHandler struct {
	dishRepo ports.DishRepository
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(dishRepo ports.DishRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{dishRepo: dishRepo}
}

// Handle fetches the restaurant's dishes with resolved variant prices.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuDishResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes, err := h.dishRepo.GetAllByRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}

	menu := make([]GetMenuDishResponse, 0, len(dishes))
	for _, dish := range dishes {
		resp := GetMenuDishResponse{
			ID:        dish.ID(),
			Name:      dish.Name(),
			BasePrice: dish.BasePrice(),
			Variants:  make([]GetMenuVariantResponse, 0, len(dish.Variants())),
		}

		for _, variant := range dish.Variants() {
			price, priceErr := dish.EffectivePrice(variant.Label())
			if priceErr != nil {
				return nil, priceErr
			}
			resp.Variants = append(resp.Variants, GetMenuVariantResponse{
				Label: variant.Label(),
				Price: price,
			})
		}

		menu = append(menu, resp)
	}

	return menu, nil
}
