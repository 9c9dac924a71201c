package order

import (
	"fmt"

	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a marketplace order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions (actor role in parentheses):
//
//	pending ──> confirmed ──> preparing ──> ready          (restaurant)
//	   │
//	   └──────> rejected                                   (restaurant)
//
//	ready ──> assigned ──> out_for_delivery ──> completed  (delivery partner)
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed at checkout.
	// Orders in this status are waiting for the restaurant to confirm or reject.
	Pending

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed

	// Preparing indicates the restaurant is preparing the order.
	Preparing

	// Ready indicates the order is ready for pickup and eligible for
	// delivery partner matching.
	Ready

	// Assigned indicates a delivery partner has claimed the order exclusively.
	Assigned

	// OutForDelivery indicates the assigned partner is en route to the customer.
	OutForDelivery

	// Completed indicates the order has been delivered.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Rejected indicates the restaurant declined the order.
	// This is a terminal state with no re-entry edge.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Ready:          "ready",
		Assigned:       "assigned",
		OutForDelivery: "out_for_delivery",
		Completed:      "completed",
		Rejected:       "rejected",
	}
}

// transitionEdge identifies one directed edge of the order state machine.
type transitionEdge struct {
	from Status
	to   Status
}

// getTransitionTable returns the legal edges of the state machine with the
// actor role required to trigger each one. A (from, to) pair absent from the
// table is an invalid transition regardless of actor, including
// current-state-to-itself and any edge out of a terminal state.
func getTransitionTable() map[transitionEdge]actor.Role {
	return map[transitionEdge]actor.Role{
		{from: Pending, to: Confirmed}:        actor.Restaurant,
		{from: Pending, to: Rejected}:         actor.Restaurant,
		{from: Confirmed, to: Preparing}:      actor.Restaurant,
		{from: Preparing, to: Ready}:          actor.Restaurant,
		{from: Ready, to: Assigned}:           actor.DeliveryPartner,
		{from: Assigned, to: OutForDelivery}:  actor.DeliveryPartner,
		{from: OutForDelivery, to: Completed}: actor.DeliveryPartner,
	}
}

// StatusFromString resolves a status from its stored string form.
// Unknown strings resolve to Unknown with an error so callers can surface
// corrupted persistence state instead of silently misrouting an order.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Preparing, Ready, Assigned,
// OutForDelivery, Completed, Rejected. Unknown (0) and any other values
// are invalid.
func (s Status) Validate() error {
	if s <= Unknown || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
//
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones (which render as "unknown").
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
// Completed and Rejected are the terminal states; orders are never deleted,
// they simply stop moving.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// CanTransitionTo reports whether the (s, target) edge exists in the
// transition table, independent of any actor.
func (s Status) CanTransitionTo(target Status) bool {
	_, ok := getTransitionTable()[transitionEdge{from: s, to: target}]
	return ok
}

// RequiredRole returns the actor role permitted to trigger the (s, target)
// transition. The second return value is false when the edge does not exist.
//
// Example:
//
//	role, ok := order.Pending.RequiredRole(order.Confirmed)
//	// role == actor.Restaurant, ok == true
//
//	_, ok = order.Pending.RequiredRole(order.Completed)
//	// ok == false: not a legal edge
func (s Status) RequiredRole(target Status) (actor.Role, bool) {
	role, ok := getTransitionTable()[transitionEdge{from: s, to: target}]
	return role, ok
}

// ValidateCanHavePartner validates the consistency between order status and
// delivery partner assignment. Enforces that only claimed orders carry a
// partner reference.
//
// Rules:
//   - Pending, Confirmed, Preparing, Ready and Rejected orders must not have a partner
//   - Assigned, OutForDelivery and Completed orders must have a partner
func (s Status) ValidateCanHavePartner(hasPartner bool) error {
	claimed := s == Assigned || s == OutForDelivery || s == Completed

	if hasPartner && !claimed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a delivery partner", s))
	}

	if !hasPartner && claimed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no delivery partner", s))
	}

	return nil
}
