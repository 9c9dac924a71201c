package cartrepo

import (
	"context"
	"errors"

	"foodmarket/internal/core/domain/model/cart"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the customer's cart with its lines.
func (r *GormCartRepository) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the cart row and replaces its lines with the aggregate's
// current state. Lines are deleted and re-inserted rather than diffed; carts
// are small and the replace keeps merge semantics entirely in the aggregate.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"restaurant_id", "updated_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Where("customer_id = ?", dto.CustomerID).
		Delete(&CartItemDTO{}).Error
	if err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err = r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)
	return nil
}

// Delete removes the customer's cart and its lines. Deleting an absent cart
// is a no-op.
func (r *GormCartRepository) Delete(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Delete(&CartItemDTO{}).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Delete(&CartDTO{}).Error
}
