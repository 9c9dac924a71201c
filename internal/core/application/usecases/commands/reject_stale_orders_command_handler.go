package commands

import (
	"context"
	"time"

	"foodmarket/internal/core/domain/model/actor"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/ports"
)

// RejectStaleOrdersCommandHandler auto-rejects pending orders whose
// restaurant never confirmed them. The rejection is applied on the
// restaurant's behalf: the same transition the restaurant would trigger,
// with the same history entry, so the customer sees a normal rejection.
type RejectStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewRejectStaleOrdersCommandHandler creates a handler for the stale order sweep.
func NewRejectStaleOrdersCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) RejectStaleOrdersCommandHandler {
	return RejectStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle rejects every order pending longer than the command's max age and
// returns the number of orders rejected. All rejections commit in one
// transaction; events are published after the commit.
func (h *RejectStaleOrdersCommandHandler) Handle(ctx context.Context, cmd RejectStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	now := time.Now()
	stale, err := orderRepo.GetAllPendingBefore(ctx, now.Add(-cmd.MaxPendingAge()))
	if err != nil {
		return 0, err
	}

	events := make([]ports.OrderEvent, 0, len(stale))
	for _, aggregate := range stale {
		restaurant, actorErr := actor.NewActor(aggregate.RestaurantID(), actor.Restaurant)
		if actorErr != nil {
			return 0, actorErr
		}

		if err = aggregate.TransitionTo(order.Rejected, restaurant, now); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}

		events = append(events, ports.OrderEvent{
			OrderID:    aggregate.ID(),
			Status:     order.Rejected,
			OccurredAt: now,
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, event := range events {
		h.publisher.Publish(event)
	}

	return len(events), nil
}
