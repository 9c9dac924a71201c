package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves the customer's cart view from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle fetches the cart row and its lines. A customer without a cart gets
// an empty view.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	resp := GetCartQueryResponse{
		Items: make([]GetCartItemResponse, 0),
	}

	var restaurantID *uuid.UUID
	var updatedAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			restaurant_id,
			updated_at
		FROM carts
		WHERE customer_id = ?
	`, query.CustomerID().Bytes()).Row()

	err := row.Scan(&restaurantID, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, nil
	}
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	if restaurantID != nil {
		rid, ridErr := kernel.UUIDFromBytes((*restaurantID)[:])
		if ridErr != nil {
			return GetCartQueryResponse{}, ridErr
		}
		resp.RestaurantID = &rid
	}
	if updatedAt.Valid {
		at := updatedAt.Time
		resp.UpdatedAt = &at
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dish_id,
			dish_name,
			variant_label,
			quantity,
			unit_price
		FROM cart_items
		WHERE customer_id = ?
		ORDER BY dish_name, variant_label
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetCartItemResponse
		var dishID uuid.UUID

		if err = rows.Scan(&dishID, &item.DishName, &item.VariantLabel, &item.Quantity, &item.UnitPrice); err != nil {
			return GetCartQueryResponse{}, err
		}

		if item.DishID, err = kernel.UUIDFromBytes(dishID[:]); err != nil {
			return GetCartQueryResponse{}, err
		}
		item.Subtotal = item.UnitPrice * float64(item.Quantity)

		resp.Items = append(resp.Items, item)
		resp.ItemCount += item.Quantity
		resp.Total += item.Subtotal
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return resp, nil
}
