package queries

import (
	"context"
	"database/sql"

	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves non-terminal orders for an actor.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle fetches orders not yet completed or rejected, scoped by the actor's
// role. Results are ordered newest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var scopeColumn string
	switch query.By().Role() {
	case actor.Customer:
		scopeColumn = "customer_id"
	case actor.Restaurant:
		scopeColumn = "restaurant_id"
	case actor.DeliveryPartner:
		scopeColumn = "delivery_partner_id"
	default:
		return nil, ErrRoleHasNoOrderView
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			status,
			total_amount,
			estimated_delivery_time,
			created_at
		FROM orders
		WHERE `+scopeColumn+` = ? AND status NOT IN (?, ?)
		ORDER BY created_at DESC
	`, query.By().ID().Bytes(), order.Completed.String(), order.Rejected.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id, restaurantID uuid.UUID
		var eta sql.NullTime

		if err = rows.Scan(&id, &restaurantID, &resp.Status, &resp.TotalAmount, &eta, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if eta.Valid {
			etaTime := eta.Time
			resp.EstimatedDeliveryTime = &etaTime
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
