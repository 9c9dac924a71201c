package queries

import (
	"errors"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var ErrGetNearbyOrdersQueryIsNotConstructed = errors.New(
	"GetNearbyOrdersQuery must be created via NewGetNearbyOrdersQuery constructor",
)

// GetNearbyOrdersQuery retrieves the ready orders a delivery partner can
// claim, ranked by pickup proximity to the partner's last reported position.
//
// Example:
//
//	query, err := NewGetNearbyOrdersQuery(partnerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetNearbyOrdersQueryHandler(orderRepo, locationRepo, matcher)
//	offers, err := handler.Handle(ctx, query)
type GetNearbyOrdersQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNearbyOrdersQuery creates a nearby orders query for the partner.
func NewGetNearbyOrdersQuery(partnerID kernel.UUID) (GetNearbyOrdersQuery, error) {
	q := GetNearbyOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setPartnerID(partnerID); err != nil {
		return GetNearbyOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearbyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyOrdersQueryIsNotConstructed)
}

// PartnerID returns the delivery partner asking for orders.
func (q GetNearbyOrdersQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

func (q *GetNearbyOrdersQuery) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	q.partnerID = partnerID
	return nil
}

// GetNearbyOrdersQueryResponse is one claimable order offer.
type GetNearbyOrdersQueryResponse struct {
	OrderID      kernel.UUID
	RestaurantID kernel.UUID
	DistanceKm   float64
	TotalAmount  float64
	CreatedAt    time.Time
}
