package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order row and its line items.
// Returns an object-not-found error for unknown orders.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	var (
		id, customerID, restaurantID uuid.UUID
		partnerID                    *uuid.UUID
		eta                          sql.NullTime
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			delivery_partner_id,
			status,
			total_amount,
			delivery_address,
			estimated_delivery_time,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&restaurantID,
		&partnerID,
		&resp.Status,
		&resp.TotalAmount,
		&resp.DeliveryAddress,
		&eta,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if partnerID != nil {
		pid, pidErr := kernel.UUIDFromBytes((*partnerID)[:])
		if pidErr != nil {
			return GetOrderQueryResponse{}, pidErr
		}
		resp.DeliveryPartnerID = &pid
	}
	if eta.Valid {
		etaTime := eta.Time
		resp.EstimatedDeliveryTime = &etaTime
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dish_id,
			variant_label,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY dish_id, variant_label
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderItemResponse, 0)
	for rows.Next() {
		var item GetOrderItemResponse
		var dishID uuid.UUID

		if err = rows.Scan(&dishID, &item.VariantLabel, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}

		if item.DishID, err = kernel.UUIDFromBytes(dishID[:]); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
