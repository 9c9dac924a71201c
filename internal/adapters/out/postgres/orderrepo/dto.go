// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and the
// orders, order_items and order_status_changes tables.
package orderrepo

import (
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and delivery partner assignment for the claim-candidate
// and stale-order queries.
type OrderDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID          uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryPartnerID     *uuid.UUID `gorm:"type:uuid;index"`
	Status                string     `gorm:"type:varchar(32);index"`
	TotalAmount           float64
	DeliveryAddress       string
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one immutable order line. Lines are written once
// at checkout and never updated; the (order, dish, variant) triple is the
// primary key.
type OrderItemDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	DishID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	VariantLabel string    `gorm:"type:varchar(64);primaryKey"`
	Quantity     int
	UnitPrice    float64
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO represents one append-only status history entry.
// Rows are inserted alongside the order write that caused them and never
// updated or deleted.
type StatusChangeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Status     string    `gorm:"type:varchar(32)"`
	OccurredAt time.Time
	Note       string
}

// TableName specifies the database table name for status history entries.
func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

// fromDomain converts an order aggregate to its database representation,
// including the order lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.DeliveryPartner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:      aggregate.ID().Bytes(),
			DishID:       item.DishID().Bytes(),
			VariantLabel: item.VariantLabel(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		CustomerID:            aggregate.CustomerID().Bytes(),
		RestaurantID:          aggregate.RestaurantID().Bytes(),
		DeliveryPartnerID:     partnerID,
		Status:                aggregate.Status().String(),
		TotalAmount:           aggregate.TotalAmount(),
		DeliveryAddress:       aggregate.DeliveryAddress(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		Items:                 items,
	}
}

// statusLogFromDomain converts the aggregate's in-memory history entries,
// the ones recorded since construction or rehydration, to history rows.
func statusLogFromDomain(aggregate *order.Order) []StatusChangeDTO {
	log := aggregate.StatusLog()
	rows := make([]StatusChangeDTO, 0, len(log))
	for _, change := range log {
		rows = append(rows, StatusChangeDTO{
			ID:         uuid.New(),
			OrderID:    change.OrderID().Bytes(),
			Status:     change.Status().String(),
			OccurredAt: change.OccurredAt(),
			Note:       change.Note(),
		})
	}
	return rows
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which re-verifies
// the total amount and partner assignment invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.DeliveryPartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.DeliveryPartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}

		partnerID = &pID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, row := range dto.Items {
		dishID, dishErr := kernel.UUIDFromBytes(row.DishID[:])
		if dishErr != nil {
			return nil, dishErr
		}

		item, itemErr := order.NewLineItem(dishID, row.Quantity, row.UnitPrice, row.VariantLabel)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		partnerID,
		status,
		items,
		dto.TotalAmount,
		dto.DeliveryAddress,
		dto.EstimatedDeliveryTime,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

// historyToDomain converts a history row to its domain value object.
func historyToDomain(dto StatusChangeDTO) (order.StatusChange, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusChange{}, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return order.StatusChange{}, err
	}

	return order.NewStatusChange(orderID, status, dto.OccurredAt, dto.Note)
}
