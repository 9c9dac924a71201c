// Package queries contains read-only operations for the CQRS architecture.
// Query handlers read the database directly and return plain response
// structs; they never load aggregates or modify state.
package queries

import (
	"errors"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s is %s\n", resp.ID, resp.Status)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// GetOrderItemResponse is one line item of an order response.
type GetOrderItemResponse struct {
	DishID       kernel.UUID
	VariantLabel string
	Quantity     int
	UnitPrice    float64
}

// GetOrderQueryResponse is the full order view returned to clients.
type GetOrderQueryResponse struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	RestaurantID          kernel.UUID
	DeliveryPartnerID     *kernel.UUID
	Status                string
	TotalAmount           float64
	DeliveryAddress       string
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Items                 []GetOrderItemResponse
}
