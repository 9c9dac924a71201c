package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// DeliveryEstimate is the fixed duration added to the claim time to produce
// the order's estimated delivery time.
const DeliveryEstimate = 30 * time.Minute

// totalTolerance bounds the float drift accepted when verifying the stored
// total against the recomputed item sum on rehydration.
const totalTolerance = 0.005

// Order represents a customer order in the marketplace. It is the aggregate
// root that manages the order lifecycle from checkout through restaurant
// preparation, delivery partner claim and final delivery.
//
// Order follows these invariants:
//   - Identity, customer, restaurant, items and address are fixed at creation
//   - totalAmount always equals the sum of unitPrice x quantity over items
//   - status only changes through TransitionTo, following the state machine
//   - deliveryPartnerID is set exactly once, by the claim transition
//   - every status change appends a StatusChange history entry
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Orders are never deleted: Completed
// and Rejected are terminal resting states.
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	restaurantID      kernel.UUID
	deliveryPartnerID *kernel.UUID

	status          Status
	items           []LineItem
	totalAmount     float64
	deliveryAddress string

	estimatedDeliveryTime *time.Time
	createdAt             time.Time
	updatedAt             time.Time

	// statusLog holds history entries recorded in memory since construction
	// or rehydration, awaiting persistence.
	statusLog []StatusChange

	isConstructed bool
}

// NewOrder creates a new Order at checkout time. The order starts in Pending
// status with no delivery partner, and records the initial history entry.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the customer placing the order
//   - restaurantID: the restaurant the items belong to
//   - items: at least one line item, fixed for the order's lifetime
//   - deliveryAddress: free-text destination, must not be empty
//   - now: creation timestamp
//
// The total amount is derived from the items; it is stored redundantly for
// display but always equals the recomputed sum.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []LineItem,
	deliveryAddress string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setTimestamps(now),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumItems(o.items)

	change, err := NewStatusChange(o.id, Pending, now, "order placed")
	if err != nil {
		return nil, err
	}
	o.statusLog = append(o.statusLog, change)

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. All invariants are
// re-verified: the stored total must equal the recomputed item sum, and the
// partner assignment must be consistent with the status. No history entry is
// recorded; rehydration is not a status change.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryPartnerID *kernel.UUID,
	status Status,
	items []LineItem,
	totalAmount float64,
	deliveryAddress string,
	estimatedDeliveryTime *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		status.Validate(),
		status.ValidateCanHavePartner(deliveryPartnerID != nil),
	); err != nil {
		return nil, err
	}

	if math.Abs(totalAmount-sumItems(o.items)) > totalTolerance {
		return nil, errs.NewValueIsInvalidErrorWithCause("total amount is invalid",
			fmt.Errorf("stored total %f does not match item sum %f", totalAmount, sumItems(o.items)))
	}

	if deliveryPartnerID != nil {
		if err := deliveryPartnerID.Validate(); err != nil {
			return nil, err
		}
		partnerID := *deliveryPartnerID
		o.deliveryPartnerID = &partnerID
	}

	o.status = status
	o.totalAmount = totalAmount
	o.estimatedDeliveryTime = estimatedDeliveryTime
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through one
// of its factory methods. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identity.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant's identity.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryPartner returns the claiming delivery partner's identity.
// Returns nil until a partner claims the order.
func (o *Order) DeliveryPartner() *kernel.UUID {
	return o.deliveryPartnerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total, equal to the sum of unit price times
// quantity over all items.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// DeliveryAddress returns the free-text delivery destination.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// EstimatedDeliveryTime returns the expected delivery timestamp, or nil
// until a delivery partner claims the order.
func (o *Order) EstimatedDeliveryTime() *time.Time {
	return o.estimatedDeliveryTime
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// StatusLog returns a copy of the history entries recorded in memory since
// construction or rehydration. Repositories persist these entries in the
// same transaction as the order row.
func (o *Order) StatusLog() []StatusChange {
	log := make([]StatusChange, len(o.statusLog))
	copy(log, o.statusLog)
	return log
}

// TransitionTo moves the order to the target status on behalf of the given
// actor, enforcing the full state machine contract:
//
//   - the (current, target) pair must be an edge of the transition table,
//     otherwise *InvalidTransitionError is returned (this includes requesting
//     the current status again and any edge out of a terminal state);
//   - the actor's role must match the edge's required role, and for
//     restaurant edges the actor must own the order's restaurant, for
//     partner follow-up edges the actor must be the assigned partner,
//     otherwise *ForbiddenError is returned;
//   - the ready -> assigned claim additionally requires no partner to be
//     assigned yet, otherwise ErrClaimConflict is returned. On a successful
//     claim the actor becomes the assigned partner and the estimated
//     delivery time is set to now + DeliveryEstimate.
//
// On success the status is updated, updatedAt advances and a StatusChange
// entry is appended to the in-memory status log. On any failure the order
// is left unchanged.
//
// Note: the in-memory claim check cannot see concurrent claimants. The
// authoritative check is the repository's conditional update; a lost race
// surfaces as ErrClaimConflict from persistence.
func (o *Order) TransitionTo(target Status, by actor.Actor, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := by.Validate(); err != nil {
		return err
	}

	requiredRole, ok := o.status.RequiredRole(target)
	if !ok {
		return NewInvalidTransitionError(o.status, target)
	}

	if by.Role() != requiredRole {
		return NewForbiddenError(o.status, target, by.Role())
	}

	isClaim := o.status == Ready && target == Assigned

	switch {
	case requiredRole == actor.Restaurant:
		if !by.ID().IsEqual(o.restaurantID) {
			return NewForbiddenError(o.status, target, by.Role())
		}

	case isClaim:
		if o.deliveryPartnerID != nil {
			return ErrClaimConflict
		}

	default:
		// Partner follow-up edges: only the assigned partner may proceed.
		if o.deliveryPartnerID == nil || !by.ID().IsEqual(*o.deliveryPartnerID) {
			return NewForbiddenError(o.status, target, by.Role())
		}
	}

	change, err := NewStatusChange(o.id, target, now, "")
	if err != nil {
		return err
	}

	if isClaim {
		partnerID := by.ID()
		eta := now.Add(DeliveryEstimate)
		o.deliveryPartnerID = &partnerID
		o.estimatedDeliveryTime = &eta
	}

	o.status = target
	o.updatedAt = now
	o.statusLog = append(o.statusLog, change)

	return nil
}

// Claim is the ready -> assigned transition: the delivery partner takes
// exclusive ownership of the order. Shorthand for TransitionTo(Assigned, ...).
func (o *Order) Claim(by actor.Actor, now time.Time) error {
	return o.TransitionTo(Assigned, by, now)
}

func sumItems(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setTimestamps(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	o.createdAt = now
	o.updatedAt = now
	return nil
}
