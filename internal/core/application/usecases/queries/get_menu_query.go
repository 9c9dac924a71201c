package queries

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves a restaurant's menu with per-variant pricing.
type GetMenuQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a menu query for the restaurant.
func NewGetMenuQuery(restaurantID kernel.UUID) (GetMenuQuery, error) {
	q := GetMenuQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setRestaurantID(restaurantID); err != nil {
		return GetMenuQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu to fetch.
func (q GetMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q *GetMenuQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	q.restaurantID = restaurantID
	return nil
}

// GetMenuVariantResponse is one variant of a dish with its resolved price.
type GetMenuVariantResponse struct {
	Label string
	Price float64
}

// GetMenuDishResponse is one dish of the menu.
type GetMenuDishResponse struct {
	ID        kernel.UUID
	Name      string
	BasePrice float64
	Variants  []GetMenuVariantResponse
}
