package actor

import (
	"errors"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when attempting to use an improperly
// initialized Actor. Actors must be created via the NewActor constructor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor is the authenticated identity attempting an operation.
// It pairs a stable identity (the auth collaborator's user id) with the role
// resolved for the session. Actor is an immutable value object; the zero
// value is invalid and fails validation.
//
// Example:
//
//	restaurant, err := actor.NewActor(restaurantID, actor.Restaurant)
//	if err != nil {
//	    return err
//	}
//	if err := order.TransitionTo(order.Confirmed, restaurant, time.Now()); err != nil {
//	    // actor not allowed to confirm this order
//	}
type Actor struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor from a validated identity and role.
// Returns an error if the identity is a zero UUID or the role is not a
// resolvable marketplace role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	a := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(a.setID(id), a.setRole(role)); err != nil {
		return Actor{}, err
	}

	return a, nil
}

// Validate checks if the Actor was properly constructed via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's resolved role.
func (a Actor) Role() Role {
	return a.role
}

// IsEqual compares two actors by identity and role.
func (a Actor) IsEqual(other Actor) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a.id.IsEqual(other.id) && a.role == other.role, nil
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
