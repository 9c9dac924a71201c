package ports

import (
	"context"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage together with its
	// recorded status history entries.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and appends
	// any newly recorded status history entries.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Claim persists a delivery partner claim with a conditional update:
	// the order row is only written if it is still in ready status with no
	// partner assigned. When the condition no longer holds, meaning another
	// partner won the race, order.ErrClaimConflict is returned and nothing
	// is written. The aggregate must already carry the claim result
	// (assigned status, partner and estimated delivery time).
	Claim(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllReadyUnassigned retrieves orders in ready status with no
	// delivery partner. These are the candidates offered to partners for
	// claiming.
	GetAllReadyUnassigned(ctx context.Context) ([]*order.Order, error)

	// GetAllPendingBefore retrieves orders still in pending status created
	// at or before the cutoff. Used by the stale order sweep.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// GetStatusHistory retrieves the persisted status history of an order,
	// ordered by occurrence time ascending.
	GetStatusHistory(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error)
}
