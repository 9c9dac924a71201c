package queries

import (
	"errors"
	"time"

	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
	ErrRoleHasNoOrderView = errors.New("role has no active orders view")
)

// GetActiveOrdersQuery retrieves the non-terminal orders visible to an
// actor: a customer sees the orders they placed, a restaurant the orders it
// fulfills and a delivery partner the orders it claimed.
//
// Example:
//
//	customer, _ := actor.NewActor(customerID, actor.Customer)
//	query, err := NewGetActiveOrdersQuery(customer)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := NewGetActiveOrdersQueryHandler(db).Handle(ctx, query)
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	by actor.Actor

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates an active orders query for the actor.
// Only customer, restaurant and delivery partner roles have an order view.
func NewGetActiveOrdersQuery(by actor.Actor) (GetActiveOrdersQuery, error) {
	q := GetActiveOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setBy(by); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// By returns the actor whose orders to fetch.
func (q GetActiveOrdersQuery) By() actor.Actor {
	return q.by
}

func (q *GetActiveOrdersQuery) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	q.by = by
	return nil
}

// GetActiveOrdersQueryResponse is one order summary in an actor's view.
type GetActiveOrdersQueryResponse struct {
	ID                    kernel.UUID
	RestaurantID          kernel.UUID
	Status                string
	TotalAmount           float64
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
}
