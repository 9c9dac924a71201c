package queries

import (
	"errors"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves the append-only status history of an order,
// ordered by occurrence time ascending. The entries always form a valid walk
// through the order state machine starting at pending.
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a history query for one order.
func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	q := GetOrderHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose history to fetch.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderHistoryQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// GetOrderHistoryQueryResponse is one status history entry.
type GetOrderHistoryQueryResponse struct {
	Status     string
	OccurredAt time.Time
	Note       string
}
