package ports

import (
	"context"

	"foodmarket/internal/core/domain/model/cart"
	"foodmarket/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Each customer has at most one cart, keyed by the customer identity.
type CartRepository interface {
	// Get retrieves the customer's cart. Returns an object-not-found error
	// when the customer has no cart yet.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save upserts the cart, replacing its lines with the aggregate's
	// current state. Saving an empty cart keeps the row with no lines.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Delete removes the customer's cart entirely. Deleting an absent cart
	// is a no-op.
	Delete(ctx context.Context, customerID kernel.UUID) error
}
