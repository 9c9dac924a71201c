package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves order status history from the database.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle fetches the history entries ordered oldest first. An unknown order
// yields an empty history rather than an error; existence checks belong to
// the order query.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			occurred_at,
			note
		FROM order_status_changes
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]GetOrderHistoryQueryResponse, 0)
	for rows.Next() {
		var entry GetOrderHistoryQueryResponse

		if err = rows.Scan(&entry.Status, &entry.OccurredAt, &entry.Note); err != nil {
			return nil, err
		}

		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
