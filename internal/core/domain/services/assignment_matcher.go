package services

import (
	"fmt"
	"sort"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/pkg/errs"
)

// DefaultMatchRadiusKm is the pickup search radius used when no explicit
// radius is configured. Orders whose restaurant is farther than this from
// the delivery partner are not offered.
const DefaultMatchRadiusKm = 10.0

// PickupCandidate pairs a ready order with its restaurant's pickup location.
// Candidates are assembled by the query layer; the matcher only ranks them.
type PickupCandidate struct {
	order  *order.Order
	pickup kernel.GeoPoint
}

// NewPickupCandidate creates a candidate from a validated order and pickup
// location. Restaurants without a resolvable location cannot produce
// candidates, which is how unreachable orders drop out of matching.
func NewPickupCandidate(o *order.Order, pickup kernel.GeoPoint) (PickupCandidate, error) {
	if err := o.Validate(); err != nil {
		return PickupCandidate{}, err
	}
	if err := pickup.Validate(); err != nil {
		return PickupCandidate{}, err
	}

	return PickupCandidate{order: o, pickup: pickup}, nil
}

// Order returns the candidate's order.
func (c PickupCandidate) Order() *order.Order {
	return c.order
}

// Pickup returns the restaurant's pickup location.
func (c PickupCandidate) Pickup() kernel.GeoPoint {
	return c.pickup
}

// Match is one ranked entry of a matching result: an order together with the
// great-circle distance from the delivery partner to its pickup point.
type Match struct {
	order      *order.Order
	distanceKm float64
}

// Order returns the matched order.
func (m Match) Order() *order.Order {
	return m.order
}

// DistanceKm returns the partner-to-pickup distance in kilometers.
func (m Match) DistanceKm() float64 {
	return m.distanceKm
}

// AssignmentMatcher is a domain service that ranks ready orders for a
// delivery partner by pickup proximity.
//
// Business rules:
//   - Only orders in ready status are offered; anything else is skipped
//   - Candidates beyond the matcher's radius are excluded
//   - Results are ordered nearest first; equal distances tie-break by
//     order creation time, oldest first, so waiting orders are not starved
//   - An empty result is a valid outcome, not an error
//
// The matcher proposes, it does not assign: claiming the order is a separate
// operation and may still fail if another partner wins the race.
//
// Example usage:
//
//	matcher := services.NewAssignmentMatcher()
//	matches, err := matcher.Match(partnerLocation, candidates)
//	if err != nil {
//	    return err
//	}
//	for _, m := range matches {
//	    fmt.Printf("%s at %.1f km\n", m.Order().ID(), m.DistanceKm())
//	}
type AssignmentMatcher struct {
	radiusKm float64
}

// NewAssignmentMatcher creates a matcher with the default radius.
func NewAssignmentMatcher() AssignmentMatcher {
	return AssignmentMatcher{radiusKm: DefaultMatchRadiusKm}
}

// NewAssignmentMatcherWithRadius creates a matcher with a custom radius in
// kilometers. The radius must be positive.
func NewAssignmentMatcherWithRadius(radiusKm float64) (AssignmentMatcher, error) {
	if radiusKm <= 0 {
		return AssignmentMatcher{}, errs.NewValueIsInvalidErrorWithCause("radius is invalid",
			fmt.Errorf("%f is not greater than 0", radiusKm))
	}
	return AssignmentMatcher{radiusKm: radiusKm}, nil
}

// RadiusKm returns the matcher's pickup search radius.
func (m AssignmentMatcher) RadiusKm() float64 {
	if m.radiusKm == 0 {
		return DefaultMatchRadiusKm
	}
	return m.radiusKm
}

// Match ranks the candidates for a delivery partner at the given location.
//
// Candidates whose order is not in ready status or already has a partner are
// skipped rather than rejected: the list may be slightly stale relative to
// the database and a concurrent claim must not fail the whole matching run.
func (m AssignmentMatcher) Match(partnerLocation kernel.GeoPoint, candidates []PickupCandidate) ([]Match, error) {
	if err := partnerLocation.Validate(); err != nil {
		return nil, err
	}

	radius := m.RadiusKm()
	matches := make([]Match, 0, len(candidates))

	for _, candidate := range candidates {
		if err := candidate.Order().Validate(); err != nil {
			return nil, err
		}
		if candidate.Order().Status() != order.Ready || candidate.Order().DeliveryPartner() != nil {
			continue
		}

		distance, err := partnerLocation.DistanceKm(candidate.Pickup())
		if err != nil {
			return nil, err
		}
		if distance > radius {
			continue
		}

		matches = append(matches, Match{
			order:      candidate.Order(),
			distanceKm: distance,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distanceKm != matches[j].distanceKm {
			return matches[i].distanceKm < matches[j].distanceKm
		}
		return matches[i].order.CreatedAt().Before(matches[j].order.CreatedAt())
	})

	return matches, nil
}
