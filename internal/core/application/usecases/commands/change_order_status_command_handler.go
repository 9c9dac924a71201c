package commands

import (
	"context"
	"time"

	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions other
// than the delivery partner claim, which has its own handler because of its
// race semantics.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order, applies the transition through the aggregate and
// persists the result together with the new history entry. Domain errors
// (order.ErrInvalidTransition, order.ErrForbidden) pass through unchanged so
// the transport layer can map them to proper response codes. The event is
// published only after a successful commit.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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
	if err = aggregate.TransitionTo(cmd.Target(), cmd.By(), now); err != nil {
		return err
	}

	if cmd.Target() == order.Assigned {
		err = orderRepo.Claim(ctx, aggregate)
	} else {
		err = orderRepo.Update(ctx, aggregate)
	}
	if err != nil {
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
