package commands

import (
	"context"
	"time"

	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/ports"
)

// ClaimOrderCommandHandler handles the exclusive claim of ready orders by
// delivery partners.
//
// Claiming is optimistic: the aggregate applies the claim in memory and the
// repository persists it with a conditional update that only succeeds while
// the order is still ready and unassigned. When two partners race for the
// same order, exactly one commit wins; the loser gets order.ErrClaimConflict
// and should refresh its list of available orders.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the claim. On success the partner owns the order, the
// estimated delivery time is set and the assigned event is published.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	partner, err := actor.NewActor(cmd.PartnerID(), actor.DeliveryPartner)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = aggregate.Claim(partner, now); err != nil {
		return err
	}

	if err = orderRepo.Claim(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ports.OrderEvent{
		OrderID:    aggregate.ID(),
		Status:     aggregate.Status(),
		OccurredAt: now,
	})

	return nil
}
