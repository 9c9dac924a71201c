package order

import (
	"errors"
	"fmt"

	"foodmarket/internal/core/domain/model/actor"
)

var (
	// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrForbidden is the unwrap target for ForbiddenError.
	ErrForbidden = errors.New("actor is not allowed to perform this transition")

	// ErrClaimConflict indicates a ready -> assigned claim lost to a
	// concurrent claimant: another delivery partner already holds the order.
	// Callers must re-fetch their available-orders view instead of retrying
	// the same claim.
	ErrClaimConflict = errors.New("order is no longer available for claim")
)

// InvalidTransitionError reports a requested status change that is not an
// edge of the state machine, including current-state-to-itself requests and
// attempts to leave a terminal state.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// (from, to) pair.
func NewInvalidTransitionError(from Status, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Unwrap returns the sentinel ErrInvalidTransition for errors.Is classification.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenError reports a legal transition requested by an actor whose role
// or identity does not match the edge's requirements. The order status is
// left unchanged.
type ForbiddenError struct {
	From Status
	To   Status
	Role actor.Role
}

// NewForbiddenError creates a ForbiddenError for the (from, to) edge
// attempted by the given role.
func NewForbiddenError(from Status, to Status, role actor.Role) *ForbiddenError {
	return &ForbiddenError{From: from, To: to, Role: role}
}

// Error implements the error interface.
func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s actor cannot transition %s -> %s", ErrForbidden, e.Role, e.From, e.To)
}

// Unwrap returns the sentinel ErrForbidden for errors.Is classification.
func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
