package ports

import (
	"context"

	"foodmarket/internal/core/domain/model/catalog"
	"foodmarket/internal/core/domain/model/kernel"
)

// DishRepository defines the contract for the menu catalog. Carts and menu
// views read dishes; restaurants manage their own menu through Save.
type DishRepository interface {
	// Get retrieves a dish with its variants by identifier.
	// Returns an object-not-found error for unknown dishes.
	Get(ctx context.Context, id kernel.UUID) (catalog.Dish, error)

	// GetAllByRestaurant retrieves the restaurant's menu.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]catalog.Dish, error)

	// Save creates the dish or replaces its name, price and variants.
	Save(ctx context.Context, dish catalog.Dish) error
}
