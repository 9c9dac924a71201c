package actor

import (
	"fmt"

	"foodmarket/internal/pkg/errs"
)

// Role represents the kind of participant an authenticated identity acts as.
// It is a closed sum type: a session resolves to exactly one role, and the
// role decides which order state transitions the actor may trigger.
type Role int

const (
	// Unassigned represents an identity without a resolved marketplace role.
	// This value (0) helps catch uninitialized Role values; unassigned actors
	// are never authorized to trigger transitions.
	Unassigned Role = iota

	// Customer places orders and tracks their delivery.
	Customer

	// Restaurant manages menus and drives orders through the preparation states.
	Restaurant

	// DeliveryPartner claims ready orders and drives them to completion.
	DeliveryPartner
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unassigned:      "unassigned",
		Customer:        "customer",
		Restaurant:      "restaurant",
		DeliveryPartner: "delivery",
	}
}

// RoleFromString resolves a role from its stored string form.
// Unknown strings resolve to Unassigned with an error, so callers can treat
// malformed session metadata as an unauthorized actor rather than a crash.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != Unassigned {
			return role, nil
		}
	}
	return Unassigned, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is a resolvable marketplace role.
// Unassigned (0) and any other values are invalid.
func (r Role) Validate() error {
	switch r {
	case Customer, Restaurant, DeliveryPartner:
		return nil
	case Unassigned:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
}

// String returns the wire-format name of the role.
// This method implements the fmt.Stringer interface and is safe to call on
// any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unassigned"
}
