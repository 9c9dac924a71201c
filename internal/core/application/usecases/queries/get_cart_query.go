package queries

import (
	"errors"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart view. A customer without a cart
// gets an empty view rather than an error.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart query for the customer.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	q := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerID(customerID); err != nil {
		return GetCartQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identity.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCartQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	q.customerID = customerID
	return nil
}

// GetCartItemResponse is one cart line in the cart view.
type GetCartItemResponse struct {
	DishID       kernel.UUID
	DishName     string
	VariantLabel string
	Quantity     int
	UnitPrice    float64
	Subtotal     float64
}

// GetCartQueryResponse is the cart view returned to clients.
type GetCartQueryResponse struct {
	RestaurantID *kernel.UUID
	Items        []GetCartItemResponse
	ItemCount    int
	Total        float64
	UpdatedAt    *time.Time
}
