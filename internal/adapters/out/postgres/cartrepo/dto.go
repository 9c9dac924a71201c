// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. Carts are keyed by customer; a save replaces the cart's
// lines wholesale with the aggregate's current state.
package cartrepo

import (
	"time"

	"foodmarket/internal/core/domain/model/cart"
	"foodmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// The customer identity is the primary key: each customer has at most one
// cart. RestaurantID is null for an empty cart.
type CartDTO struct {
	CustomerID   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt    time.Time

	Items []CartItemDTO `gorm:"foreignKey:CustomerID"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one merged cart line, identified by the
// (customer, dish, variant) triple.
type CartItemDTO struct {
	CustomerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	DishID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	VariantLabel string    `gorm:"type:varchar(64);primaryKey"`
	DishName     string
	Quantity     int
	UnitPrice    float64
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	var restaurantID *uuid.UUID
	if id := aggregate.RestaurantID(); id != nil {
		raw := id.Bytes()
		restaurantID = &raw
	}

	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			CustomerID:   aggregate.CustomerID().Bytes(),
			DishID:       item.DishID().Bytes(),
			VariantLabel: item.VariantLabel(),
			DishName:     item.DishName(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
		})
	}

	return CartDTO{
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: restaurantID,
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        items,
	}
}

// toDomain converts a database DTO to a cart aggregate.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		rID, restaurantErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if restaurantErr != nil {
			return nil, restaurantErr
		}

		restaurantID = &rID
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, row := range dto.Items {
		dishID, dishErr := kernel.UUIDFromBytes(row.DishID[:])
		if dishErr != nil {
			return nil, dishErr
		}

		item, itemErr := cart.RestoreItem(dishID, row.DishName, row.VariantLabel, row.Quantity, row.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(customerID, restaurantID, items, dto.UpdatedAt)
}
