package orderrepo

import (
	"context"
	"errors"
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database together with its lines and the
// initial status history entry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.appendStatusLog(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database and appends any status
// history entries recorded since the aggregate was loaded. Order lines are
// immutable and never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Omit(clause.Associations).
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.appendStatusLog(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Claim persists a delivery partner claim with a conditional update. The row
// is only written while it is still in ready status with no partner assigned;
// when another partner already won the race, zero rows match and
// order.ErrClaimConflict is returned without writing anything.
func (r *GormOrderRepository) Claim(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND delivery_partner_id IS NULL", dto.ID, order.Ready.String()).
		Updates(map[string]any{
			"delivery_partner_id":     dto.DeliveryPartnerID,
			"status":                  dto.Status,
			"estimated_delivery_time": dto.EstimatedDeliveryTime,
			"updated_at":              dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return order.ErrClaimConflict
	}

	if err := r.appendStatusLog(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllReadyUnassigned retrieves orders in ready status with no delivery
// partner, oldest first.
func (r *GormOrderRepository) GetAllReadyUnassigned(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status = ? AND delivery_partner_id IS NULL", order.Ready.String()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllPendingBefore retrieves orders still in pending status created at or
// before the cutoff, oldest first.
func (r *GormOrderRepository) GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status = ? AND created_at <= ?", order.Pending.String(), cutoff).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetStatusHistory retrieves the persisted status history of an order,
// ordered by occurrence time ascending.
func (r *GormOrderRepository) GetStatusHistory(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("occurred_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, changeErr := historyToDomain(dto)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, change)
	}

	return history, nil
}

// appendStatusLog inserts the aggregate's in-memory history entries recorded
// since construction or rehydration.
func (r *GormOrderRepository) appendStatusLog(ctx context.Context, aggregate *order.Order) error {
	rows := statusLogFromDomain(aggregate)
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
