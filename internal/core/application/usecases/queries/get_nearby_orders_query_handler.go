package queries

import (
	"context"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/core/ports"
)

// GetNearbyOrdersQueryHandler assembles the claimable order offers for a
// delivery partner. Unlike the other query handlers it does not read the
// database directly: it composes the order repository, the location
// repository and the proximity matcher, because the ranking logic lives in
// the domain and must not be duplicated in SQL.
//
// Orders whose restaurant has no stored location are silently excluded:
// without a pickup point there is no distance to rank by.
type GetNearbyOrdersQueryHandler struct {
	orderRepo    ports.OrderRepository
	locationRepo ports.LocationRepository
	matcher      services.AssignmentMatcher
}

// NewGetNearbyOrdersQueryHandler creates a handler for nearby order queries.
func NewGetNearbyOrdersQueryHandler(
	orderRepo ports.OrderRepository,
	locationRepo ports.LocationRepository,
	matcher services.AssignmentMatcher,
) GetNearbyOrdersQueryHandler {
	return GetNearbyOrdersQueryHandler{
		orderRepo:    orderRepo,
		locationRepo: locationRepo,
		matcher:      matcher,
	}
}

// Handle resolves the partner's last reported position, loads the ready
// unassigned orders with their restaurant pickup points and returns the
// matcher's ranking. A partner that never reported a position gets an
// object-not-found error: reporting a location is a precondition for
// receiving offers.
func (h GetNearbyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyOrdersQuery,
) ([]GetNearbyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partnerLocation, err := h.locationRepo.GetPartnerLocation(ctx, query.PartnerID())
	if err != nil {
		return nil, err
	}

	readyOrders, err := h.orderRepo.GetAllReadyUnassigned(ctx)
	if err != nil {
		return nil, err
	}
	if len(readyOrders) == 0 {
		return []GetNearbyOrdersQueryResponse{}, nil
	}

	restaurantIDs := make([]kernel.UUID, 0, len(readyOrders))
	for _, o := range readyOrders {
		restaurantIDs = append(restaurantIDs, o.RestaurantID())
	}

	pickups, err := h.locationRepo.GetRestaurantLocations(ctx, restaurantIDs)
	if err != nil {
		return nil, err
	}

	candidates := make([]services.PickupCandidate, 0, len(readyOrders))
	for _, o := range readyOrders {
		pickup, ok := pickups[o.RestaurantID()]
		if !ok {
			continue
		}

		candidate, candidateErr := services.NewPickupCandidate(o, pickup)
		if candidateErr != nil {
			return nil, candidateErr
		}
		candidates = append(candidates, candidate)
	}

	matches, err := h.matcher.Match(partnerLocation, candidates)
	if err != nil {
		return nil, err
	}

	offers := make([]GetNearbyOrdersQueryResponse, 0, len(matches))
	for _, match := range matches {
		offers = append(offers, GetNearbyOrdersQueryResponse{
			OrderID:      match.Order().ID(),
			RestaurantID: match.Order().RestaurantID(),
			DistanceKm:   match.DistanceKm(),
			TotalAmount:  match.Order().TotalAmount(),
			CreatedAt:    match.Order().CreatedAt(),
		})
	}

	return offers, nil
}
